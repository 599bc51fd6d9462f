package handlers

import (
	"net/http"

	"newsportal/internal/logger"
	"newsportal/internal/models"
	"newsportal/internal/services"
	helpers "newsportal/internal/utils/helpres"

	"go.uber.org/zap"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// Create godoc
// @Summary Создать новость
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.CreateNewsRequest true "Данные новости"
// @Success 201 {object} models.News
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /rpc/news.create [post]
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNewsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	n, err := h.newsService.Create(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("Новость создана", zap.Int("news_id", n.ID), zap.String("slug", n.Slug))
	helpers.JSON(w, http.StatusCreated, n)
}

// List godoc
// @Summary Опубликованные новости (свежие выше)
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.Pagination false "Пагинация"
// @Success 200 {object} models.ListResponse[models.News]
// @Router /rpc/news.list [post]
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	var p models.Pagination
	if err := decodeBody(r, &p); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	p.Normalize()

	items, total, err := h.newsService.ListPublished(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.News]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
}

// ListAll godoc
// @Summary Все новости независимо от статуса (админская выборка)
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.Pagination false "Пагинация"
// @Success 200 {object} models.ListResponse[models.News]
// @Router /rpc/news.listAll [post]
func (h *NewsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	var p models.Pagination
	if err := decodeBody(r, &p); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	p.Normalize()

	items, total, err := h.newsService.ListAll(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.News]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
}

// GetByID godoc
// @Summary Новость по ID (+1 просмотр)
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID новости"
// @Success 200 {object} models.News
// @Router /rpc/news.getById [post]
func (h *NewsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	n, err := h.newsService.GetByID(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, n)
}

// GetBySlug godoc
// @Summary Новость по slug (+1 просмотр)
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.SlugRequest true "Slug новости"
// @Success 200 {object} models.News
// @Router /rpc/news.getBySlug [post]
func (h *NewsHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	var req models.SlugRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	n, err := h.newsService.GetBySlug(r.Context(), req.Slug)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, n)
}

// ListByCategory godoc
// @Summary Опубликованные новости категории (по id или slug)
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.NewsByCategoryRequest true "Фильтр и пагинация"
// @Success 200 {object} models.ListResponse[models.News]
// @Router /rpc/news.listByCategory [post]
func (h *NewsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	var req models.NewsByCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	req.Normalize()

	items, total, err := h.newsService.ListByCategory(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.News]{
		Items:  items,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

// Featured godoc
// @Summary Самые просматриваемые опубликованные новости
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.FeaturedNewsRequest false "Лимит (по умолчанию 5)"
// @Success 200 {array} models.News
// @Router /rpc/news.featured [post]
func (h *NewsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	var req models.FeaturedNewsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	items, err := h.newsService.Featured(r.Context(), req.Limit)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// Update godoc
// @Summary Частичное обновление новости
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.UpdateNewsRequest true "Изменяемые поля"
// @Success 200 {object} models.News
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /rpc/news.update [post]
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateNewsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	n, err := h.newsService.Update(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, n)
}

// Delete godoc
// @Summary Удалить новость вместе с её комментариями
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID новости"
// @Success 200 {object} deleteResult
// @Router /rpc/news.delete [post]
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	ok, err := h.newsService.Delete(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, deleteResult{Deleted: ok})
}

// Search godoc
// @Summary Поиск по заголовку и тексту опубликованных новостей
// @Tags news
// @Accept json
// @Produce json
// @Param input body models.SearchNewsRequest true "Запрос, фильтр, пагинация"
// @Success 200 {object} models.ListResponse[models.News]
// @Router /rpc/news.search [post]
func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchNewsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	req.Normalize()

	items, total, err := h.newsService.Search(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.News]{
		Items:  items,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}
