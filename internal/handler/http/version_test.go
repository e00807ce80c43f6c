package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/service"
	"github.com/MKhiriev/go-market-keeper/models"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.2")

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.4.2", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestGetServerVersion_LinkedBuildVersion(t *testing.T) {
	tests := []struct {
		name      string
		app       config.App
		buildInfo models.AppBuildInfo
		want      string
	}{
		{
			name:      "linked version",
			buildInfo: models.NewAppBuildInfo("v1.9.0", "2026-10-01", "abc1234"),
			want:      "v1.9.0",
		},
		{
			name:      "configured override",
			app:       config.App{Version: "v1.9.1-hotfix"},
			buildInfo: models.NewAppBuildInfo("v1.9.0", "2026-10-01", "abc1234"),
			want:      "v1.9.1-hotfix",
		},
		{
			name:      "unlinked build",
			buildInfo: models.NewAppBuildInfo("N/A", "N/A", "N/A"),
			want:      "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := &service.Services{AppInfoService: service.NewAppInfoService(tt.app, tt.buildInfo, logger.Nop())}
			h := NewHandler(services, testConfig(), logger.Nop())

			rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.want, rr.Body.String())
		})
	}
}
