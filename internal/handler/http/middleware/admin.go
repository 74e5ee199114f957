package middleware

import (
	"net/http"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/auth"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromRequest(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}

	return user.Role(role), nil
}

// AdminOnly restricts a route to administrators.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromRequest(r)
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin restricts a route to managers and administrators.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromRequest(r)
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleAdmin && role != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
