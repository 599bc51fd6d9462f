package handlers

import (
	"net/http"

	"newsportal/internal/logger"
	"newsportal/internal/models"
	"newsportal/internal/services"
	helpers "newsportal/internal/utils/helpres"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create godoc
// @Summary Создать категорию
// @Tags category
// @Accept json
// @Produce json
// @Param input body models.CreateCategoryRequest true "Данные категории"
// @Success 201 {object} models.Category
// @Failure 409 {object} helpers.Response
// @Router /rpc/category.create [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.categoryService.Create(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("Категория создана", zap.Int("category_id", c.ID), zap.String("slug", c.Slug))
	helpers.JSON(w, http.StatusCreated, c)
}

// List godoc
// @Summary Все категории по алфавиту
// @Tags category
// @Produce json
// @Success 200 {array} models.Category
// @Router /rpc/category.list [post]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.categoryService.List(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Категория по ID
// @Tags category
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID категории"
// @Success 200 {object} models.Category
// @Router /rpc/category.getById [post]
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.categoryService.GetByID(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// GetBySlug godoc
// @Summary Категория по slug (точное совпадение)
// @Tags category
// @Accept json
// @Produce json
// @Param input body models.SlugRequest true "Slug категории"
// @Success 200 {object} models.Category
// @Router /rpc/category.getBySlug [post]
func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	var req models.SlugRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.categoryService.GetBySlug(r.Context(), req.Slug)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Update godoc
// @Summary Частичное обновление категории
// @Tags category
// @Accept json
// @Produce json
// @Param input body models.UpdateCategoryRequest true "Изменяемые поля"
// @Success 200 {object} models.Category
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /rpc/category.update [post]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.categoryService.Update(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary Удалить категорию (блокируется при наличии новостей)
// @Tags category
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID категории"
// @Success 200 {object} deleteResult
// @Router /rpc/category.delete [post]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	ok, err := h.categoryService.Delete(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, deleteResult{Deleted: ok})
}
