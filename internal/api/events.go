package api

import (
	"log/slog"
	"net/http"

	"github.com/MikeSquared-Agency/Peminatan/internal/hermes"
)

// publish sends an event when hermes is configured. A failed publish is logged
// and never fails the request.
func publish(r *http.Request, h hermes.Client, logger *slog.Logger, subject string, event any) {
	if h == nil {
		return
	}
	if err := h.Publish(r.Context(), subject, event); err != nil {
		eventsPublished.WithLabelValues("error").Inc()
		logger.Warn("failed to publish event", "subject", subject, "error", err)
		return
	}
	eventsPublished.WithLabelValues("ok").Inc()
}
