package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-market-keeper/internal/config"
	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/mock"
	"github.com/MKhiriev/go-market-keeper/internal/service"
)

// testMocks bundles the service mocks behind a test handler.
type testMocks struct {
	auth       *mock.MockAuthService
	gate       *mock.MockAccessGate
	uploads    *mock.MockUploadService
	products   *mock.MockProductService
	categories *mock.MockCategoryService
	appInfo    *mock.MockAppInfoService
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{RequestTimeout: 5 * time.Second},
		Upload: config.Upload{
			MaxFileSize:       1 << 20,
			MaxFiles:          3,
			AllowedMediaTypes: []string{"image/png", "image/jpeg"},
		},
	}
}

func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		auth:       mock.NewMockAuthService(ctrl),
		gate:       mock.NewMockAccessGate(ctrl),
		uploads:    mock.NewMockUploadService(ctrl),
		products:   mock.NewMockProductService(ctrl),
		categories: mock.NewMockCategoryService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:     m.auth,
		AccessGate:      m.gate,
		UploadService:   m.uploads,
		ProductService:  m.products,
		CategoryService: m.categories,
		AppInfoService:  m.appInfo,
	}

	return NewHandler(services, testConfig(), logger.Nop()), m
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// admit makes the gate accept the "Bearer good" header for adminID.
func (m *testMocks) admit(adminID int64) {
	m.gate.EXPECT().Authorize(gomock.Any(), "Bearer good").Return(adminID, nil).AnyTimes()
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer good")
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Error
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	cfg := testConfig()
	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, cfg.Upload, h.upload)
	assert.Equal(t, cfg.Server, h.server)
	assert.True(t, h.development)
	assert.NotNil(t, h.validator)
}

func TestNewHandler_Production(t *testing.T) {
	cfg := testConfig()
	cfg.App.Environment = config.EnvironmentProduction

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.False(t, h.development)
}
