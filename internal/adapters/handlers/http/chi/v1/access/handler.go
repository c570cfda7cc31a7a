package access

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// HandlerV1 is the handler for v1 access routes
type HandlerV1 struct {
	accessService port.AccessService
	logger        *slog.Logger
}

// NewAccessHandlerV1 creates HandlerV1
func NewAccessHandlerV1(service port.AccessService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		accessService: service,
		logger:        logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{hash}/grant", h.GrantAccessV1)
	router.Post("/{hash}/revoke", h.RevokeAccessV1)
	router.Get("/{hash}/check", h.CheckAccessV1)

	return router
}
