package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"newsportal/internal/apperrors"
	"newsportal/internal/logger"
	helpers "newsportal/internal/utils/helpres"
	"newsportal/internal/validate"

	"go.uber.org/zap"
)

// decodeBody читает JSON-тело процедуры и прогоняет его через validate-теги.
// Пустое тело равнозначно {} — у процедур-списков все поля опциональны.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.Validationf("невалидный JSON: %v", err)
	}
	return validate.Struct(dst)
}

// respondError отдаёт ошибку с HTTP-статусом по её классу;
// неклассифицированные ошибки БД логируются и уходят как 500.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithCtx(ctx).Error("Необработанная ошибка хранилища", zap.Error(err))
		helpers.Error(w, status, "внутренняя ошибка сервера")
		return
	}
	helpers.Error(w, status, err.Error())
}

// deleteResult — ответ процедур удаления: существовала ли строка.
type deleteResult struct {
	Deleted bool `json:"deleted"`
}
