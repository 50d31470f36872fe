package identity

import (
	"net/http"
	"strconv"
	"strings"

	"orderservice/internal/entities"
	"orderservice/internal/pkg/identity"
)

const (
	headerIdentityID    = "X-Identity-Id"
	headerIdentityAdmin = "X-Identity-Admin"
)

// Middleware доверяет заголовкам шлюза: аутентификация происходит на
// периметре, сюда приходит уже проверенный identity id.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller := entities.Caller{
				ID: strings.TrimSpace(r.Header.Get(headerIdentityID)),
			}

			if admin, err := strconv.ParseBool(r.Header.Get(headerIdentityAdmin)); err == nil {
				caller.Admin = admin
			}

			next.ServeHTTP(w, r.WithContext(identity.WithCaller(r.Context(), caller)))
		})
	}
}
