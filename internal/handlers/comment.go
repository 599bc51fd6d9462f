package handlers

import (
	"net/http"

	"newsportal/internal/logger"
	"newsportal/internal/models"
	"newsportal/internal/services"
	helpers "newsportal/internal/utils/helpres"

	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create godoc
// @Summary Создать комментарий (всегда в статусе pending)
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.CreateCommentRequest true "Данные комментария"
// @Success 201 {object} models.Comment
// @Failure 404 {object} helpers.Response
// @Router /rpc/comment.create [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.commentService.Create(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("Комментарий создан", zap.Int("comment_id", c.ID), zap.Int("news_id", c.NewsID))
	helpers.JSON(w, http.StatusCreated, c)
}

// ListByNews godoc
// @Summary Одобренные комментарии новости с профилем автора
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.CommentsByNewsRequest true "ID новости и пагинация"
// @Success 200 {object} models.ListResponse[models.CommentWithAuthor]
// @Router /rpc/comment.listByNews [post]
func (h *CommentHandler) ListByNews(w http.ResponseWriter, r *http.Request) {
	var req models.CommentsByNewsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	req.Normalize()

	items, total, err := h.commentService.ListByNews(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.CommentWithAuthor]{
		Items:  items,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

// ListAll godoc
// @Summary Все комментарии для модерации (pending первыми)
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.Pagination false "Пагинация"
// @Success 200 {object} models.ListResponse[models.CommentModeration]
// @Router /rpc/comment.listAll [post]
func (h *CommentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	var p models.Pagination
	if err := decodeBody(r, &p); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	p.Normalize()

	items, total, err := h.commentService.ListAll(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.CommentModeration]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
}

// ListPending godoc
// @Summary Комментарии в ожидании модерации (с email автора)
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.Pagination false "Пагинация"
// @Success 200 {object} models.ListResponse[models.CommentModeration]
// @Router /rpc/comment.listPending [post]
func (h *CommentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	var p models.Pagination
	if err := decodeBody(r, &p); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	p.Normalize()

	items, total, err := h.commentService.ListPending(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.CommentModeration]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
}

// Update godoc
// @Summary Частичное обновление комментария
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.UpdateCommentRequest true "Изменяемые поля"
// @Success 200 {object} models.Comment
// @Failure 404 {object} helpers.Response
// @Router /rpc/comment.update [post]
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.commentService.Update(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Moderate godoc
// @Summary Модерация: approved или rejected
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.ModerateCommentRequest true "ID и новый статус"
// @Success 200 {object} models.Comment
// @Failure 404 {object} helpers.Response
// @Router /rpc/comment.moderate [post]
func (h *CommentHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req models.ModerateCommentRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	c, err := h.commentService.Moderate(r.Context(), req.ID, req.Status)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}

// Delete godoc
// @Summary Удалить комментарий
// @Tags comment
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID комментария"
// @Success 200 {object} deleteResult
// @Router /rpc/comment.delete [post]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	ok, err := h.commentService.Delete(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, deleteResult{Deleted: ok})
}
