package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryInput
	if err := h.decodeAndValidate(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/categories/%d", category.CategoryID))
	utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CategoryInput
	if err = h.decodeAndValidate(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.RenameCategory(r.Context(), categoryID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(r.Context(), categoryID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
