package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := productFilterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), productID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := h.decodeAndValidate(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", product.ProductID))
	utils.WriteJSON(w, product, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ProductInput
	if err = h.decodeAndValidate(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), productID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProductService.DeleteProduct(r.Context(), productID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productFilterFromQuery reads category_id, limit and offset.
func productFilterFromQuery(r *http.Request) (models.ProductFilter, error) {
	var filter models.ProductFilter
	query := r.URL.Query()

	if raw := query.Get("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			return filter, fmt.Errorf("%w: category_id=%q", ErrInvalidQuery, raw)
		}
		filter.CategoryID = &categoryID
	}

	for name, dst := range map[string]*uint64{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: %s=%q", ErrInvalidQuery, name, raw)
		}
		*dst = value
	}

	return filter, nil
}
