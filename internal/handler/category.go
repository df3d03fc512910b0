package handler

import (
	"net/http"

	"github.com/brinto-swe/event-management-system/internal/handler/dto"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const categoriesPath = "/categories/"

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CategoryRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.categoryService.Create(c.Request.Context(), middleware.PrincipalFrom(c), req.ToInput()); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, categoriesPath, "Category created successfully!")
}

func (h *Handler) EditCategoryForm(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *Handler) UpdateCategory(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.categoryService.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.ToInput()); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, categoriesPath, "Category updated successfully!")
}

func (h *Handler) DeleteCategoryConfirm(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	impact, err := h.categoryService.DeletePreview(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeletionImpactResponse(impact))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteRequest
	if !bind(c, &req) {
		return
	}
	if !req.Confirm {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{"confirm": "Deletion must be confirmed."},
		})
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, categoriesPath, "Category deleted successfully!")
}
