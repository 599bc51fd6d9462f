package handlers

import (
	"net/http"

	"newsportal/internal/logger"
	"newsportal/internal/models"
	"newsportal/internal/services"
	helpers "newsportal/internal/utils/helpres"

	"go.uber.org/zap"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create godoc
// @Summary Создать пользователя
// @Tags user
// @Accept json
// @Produce json
// @Param input body models.CreateUserRequest true "Данные пользователя"
// @Success 201 {object} models.User
// @Failure 400 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /rpc/user.create [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("Пользователь создан", zap.Int("user_id", user.ID))
	helpers.JSON(w, http.StatusCreated, user)
}

// List godoc
// @Summary Список пользователей
// @Tags user
// @Accept json
// @Produce json
// @Param input body models.Pagination false "Пагинация"
// @Success 200 {object} models.ListResponse[models.User]
// @Router /rpc/user.list [post]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var p models.Pagination
	if err := decodeBody(r, &p); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	p.Normalize()

	users, total, err := h.userService.List(r.Context(), p)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, models.ListResponse[*models.User]{
		Items:  users,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	})
}

// GetByID godoc
// @Summary Пользователь по ID
// @Tags user
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID пользователя"
// @Success 200 {object} models.User
// @Router /rpc/user.getById [post]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	// Отсутствие пользователя — это null, а не ошибка
	user, err := h.userService.GetByID(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// Update godoc
// @Summary Частичное обновление пользователя
// @Tags user
// @Accept json
// @Produce json
// @Param input body models.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} models.User
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /rpc/user.update [post]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	user, err := h.userService.Update(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// Delete godoc
// @Summary Мягкое удаление пользователя
// @Tags user
// @Accept json
// @Produce json
// @Param input body models.IDRequest true "ID пользователя"
// @Success 200 {object} deleteResult
// @Router /rpc/user.delete [post]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.IDRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	ok, err := h.userService.Delete(r.Context(), req.ID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, deleteResult{Deleted: ok})
}

// Login godoc
// @Summary Проверка учётных данных
// @Tags user
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Email и пароль"
// @Success 200 {object} models.User
// @Router /rpc/user.login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	// Несовпадение учётных данных — это null, а не ошибка
	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}
