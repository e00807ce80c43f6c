package service

import (
	"context"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/models"
)

const (
	// unsetBuildValue marks build metadata the linker did not provide.
	unsetBuildValue = "N/A"
	devVersion      = "dev"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService resolves the reported version once: the configured
// override wins, then the linked build version, then "dev".
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" || version == unsetBuildValue {
		version = devVersion
	}

	logger.Info().
		Str("version", version).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("app info resolved")

	return &appInfoService{
		buildInfo: models.NewAppBuildInfo(version, buildInfo.BuildDate(), buildInfo.BuildCommit()),
	}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return s.buildInfo
}
