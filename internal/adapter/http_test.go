// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *httpMarketAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPMarketAdapter(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpMarketAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://market.example.com/ ", want: "https://market.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "root", Password: "secret"}, creds)

		w.Header().Set("Authorization", "Bearer header.payload.sig")
		utils.WriteJSON(w, models.LoginResponse{Token: "header.payload.sig", ExpiresAt: "2026-10-16T12:00:00Z"}, http.StatusOK)
	})

	resp, err := a.Login(context.Background(), models.Credentials{Username: "root", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", resp.Token)
	assert.Equal(t, "header.payload.sig", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "invalid username/password", http.StatusUnauthorized)
	})

	_, err := a.Login(context.Background(), models.Credentials{Username: "root", Password: "nope"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid username/password")
	assert.Empty(t, a.Token())
}

func TestMe_SendsToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		utils.WriteJSON(w, models.MeResponse{AdminID: 3}, http.StatusOK)
	})
	a.SetToken("  tok ")

	me, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), me.AdminID)
}

func TestUpload(t *testing.T) {
	var gotNames, gotTypes []string
	handler := func(status int, resp models.UploadBatchResponse) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			gotNames, gotTypes = nil, nil
			for _, fh := range r.MultipartForm.File["files"] {
				gotNames = append(gotNames, fh.Filename)
				gotTypes = append(gotTypes, fh.Header.Get("Content-Type"))
				f, err := fh.Open()
				if !assert.NoError(t, err) {
					continue
				}
				content, _ := io.ReadAll(f)
				f.Close()
				assert.NotEmpty(t, content)
			}
			utils.WriteJSON(w, resp, status)
		}
	}
	files := []UploadFile{
		{Name: "a.png", MediaType: "image/png", Content: []byte("png")},
		{Name: "b.jpg", MediaType: "image/jpeg", Content: []byte("jpg")},
	}

	t.Run("all registered", func(t *testing.T) {
		a := newTestAdapter(t, handler(http.StatusCreated, models.UploadBatchResponse{Succeeded: 2}))

		resp, err := a.Upload(context.Background(), files...)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Succeeded)
		assert.Equal(t, []string{"a.png", "b.jpg"}, gotNames)
		assert.Equal(t, []string{"image/png", "image/jpeg"}, gotTypes)
	})

	t.Run("partial", func(t *testing.T) {
		a := newTestAdapter(t, handler(http.StatusMultiStatus, models.UploadBatchResponse{Succeeded: 1, Failed: 1}))

		resp, err := a.Upload(context.Background(), files...)

		assert.ErrorIs(t, err, ErrPartialUpload)
		assert.Equal(t, 1, resp.Failed)
	})

	t.Run("all failed", func(t *testing.T) {
		a := newTestAdapter(t, handler(http.StatusUnprocessableEntity, models.UploadBatchResponse{Failed: 2}))

		resp, err := a.Upload(context.Background(), files...)

		assert.ErrorIs(t, err, ErrUnprocessable)
		assert.Equal(t, 2, resp.Failed)
	})

	t.Run("unauthorized", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		})

		_, err := a.Upload(context.Background(), files...)

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestCreateProduct(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		var input models.ProductInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		utils.WriteJSON(w, models.Product{ProductID: 9, Name: input.Name, PriceCents: input.PriceCents}, http.StatusCreated)
	})

	product, err := a.CreateProduct(context.Background(), models.ProductInput{Name: "Lamp", PriceCents: 100})

	require.NoError(t, err)
	assert.Equal(t, int64(9), product.ProductID)
}

func TestListProducts_Query(t *testing.T) {
	categoryID := int64(4)
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", r.URL.Query().Get("category_id"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("offset"))
		utils.WriteJSON(w, []models.Product{{ProductID: 1}, {ProductID: 2}}, http.StatusOK)
	})

	products, err := a.ListProducts(context.Background(), models.ProductFilter{CategoryID: &categoryID, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "missing", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/products/7", r.URL.Path)
				w.WriteHeader(tt.status)
			})

			err := a.DeleteProduct(context.Background(), 7)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
