package event

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

// HandlerV1 is the handler for v1 event routes
type HandlerV1 struct {
	eventLogService port.EventLogService
	logger          *slog.Logger
}

// NewEventHandlerV1 creates HandlerV1
func NewEventHandlerV1(service port.EventLogService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		eventLogService: service,
		logger:          logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.QueryEventsV1)

	return router
}
