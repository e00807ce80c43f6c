package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

type httpMarketAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPMarketAdapter returns a resty based [MarketAdapter] for the server
// at baseURL. A missing scheme defaults to http.
func NewHTTPMarketAdapter(baseURL string, timeout time.Duration, logger *logger.Logger) (MarketAdapter, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetTimeout(timeout)

	return &httpMarketAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMarketAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpMarketAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login posts credentials to POST /api/auth/login. The token is taken from
// the Authorization response header.
func (h *httpMarketAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpMarketAdapter.Login").Str("expires_at", loginResp.ExpiresAt).Msg("token received")
	return loginResp, nil
}

func (h *httpMarketAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	var me models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&me).
		Get("/api/auth/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}

	return me, mapHTTPError(resp)
}

// Upload posts files as the multipart field "files" to POST /api/uploads.
func (h *httpMarketAdapter) Upload(ctx context.Context, files ...UploadFile) (models.UploadBatchResponse, error) {
	fields := make([]*resty.MultipartField, 0, len(files))
	for _, f := range files {
		fields = append(fields, &resty.MultipartField{
			Param:       "files",
			FileName:    f.Name,
			ContentType: f.MediaType,
			Reader:      bytes.NewReader(f.Content),
		})
	}

	resp, err := h.authedRequest(ctx).
		SetMultipartFields(fields...).
		Post("/api/uploads")
	if err != nil {
		return models.UploadBatchResponse{}, fmt.Errorf("upload request: %w", err)
	}

	var batch models.UploadBatchResponse
	switch resp.StatusCode() {
	case http.StatusCreated, http.StatusMultiStatus, http.StatusUnprocessableEntity:
		if err = json.Unmarshal(resp.Body(), &batch); err != nil {
			return models.UploadBatchResponse{}, fmt.Errorf("decode upload response: %w", err)
		}
	default:
		return models.UploadBatchResponse{}, mapHTTPError(resp)
	}

	switch resp.StatusCode() {
	case http.StatusMultiStatus:
		return batch, fmt.Errorf("%w: %d of %d failed", ErrPartialUpload, batch.Failed, len(files))
	case http.StatusUnprocessableEntity:
		return batch, fmt.Errorf("%w: every file was rejected", ErrUnprocessable)
	}
	return batch, nil
}

func (h *httpMarketAdapter) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var product models.Product

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&product).
		Post("/api/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}

	return product, mapHTTPError(resp)
}

func (h *httpMarketAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := map[string]string{}
	if filter.CategoryID != nil {
		query["category_id"] = strconv.FormatInt(*filter.CategoryID, 10)
	}
	if filter.Limit > 0 {
		query["limit"] = strconv.FormatUint(filter.Limit, 10)
	}
	if filter.Offset > 0 {
		query["offset"] = strconv.FormatUint(filter.Offset, 10)
	}

	var products []models.Product
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(&products).
		Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}

	return products, mapHTTPError(resp)
}

func (h *httpMarketAdapter) DeleteProduct(ctx context.Context, productID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(productID, 10)).
		Delete("/api/products/{id}")
	if err != nil {
		return fmt.Errorf("delete product request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpMarketAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
