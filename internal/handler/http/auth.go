package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clinicops/clinic-backend-go/internal/domain/auth"
	"github.com/clinicops/clinic-backend-go/internal/handler/http/middleware"
	"github.com/clinicops/clinic-backend-go/internal/handler/http/response"
	"github.com/clinicops/clinic-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	SSEToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SSEToken issues a short-lived token so browsers can open the event stream;
// EventSource cannot set an Authorization header, so the stream endpoint
// accepts this token as a query parameter instead.
func (h *authHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r.Context())
	if employeeID == "" {
		response.Unauthorized(w, "Invalid or missing token")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(employeeID)
	if err != nil {
		slog.Error("Failed to generate SSE token", "error", err)
		response.InternalServerError(w, "Failed to generate token")
		return
	}

	response.Success(w, map[string]interface{}{
		"sse_token":  token,
		"expires_in": expiresIn,
	})
}
