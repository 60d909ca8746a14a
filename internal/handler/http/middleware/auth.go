package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clinicops/clinic-backend-go/internal/handler/http/response"
)

type employeeIDKey struct{}
type roleKey struct{}

// AuthRequired rejects requests without a valid access token. SSE tokens are
// refused here; they are only good for the event stream. On success the
// employee id and role from the claims are stored on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}

			employeeID, _ := claims["employee_id"].(string)
			if employeeID == "" {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}
			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), employeeIDKey{}, employeeID)
			ctx = context.WithValue(ctx, roleKey{}, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmployeeID returns the authenticated employee id, or "" outside AuthRequired.
func EmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(employeeIDKey{}).(string)
	return id
}

// Role returns the authenticated employee's role, or "" outside AuthRequired.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleKey{}).(string)
	return role
}
