package middleware

import (
	"net/http"
	"newsportal/internal/reqctx"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID кладёт идентификатор запроса в контекст и в заголовок ответа.
// Если клиент прислал свой X-Request-Id — используем его.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set(HeaderRequestID, rid)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
