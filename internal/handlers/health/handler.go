package health

import (
	"net/http"
	"taskly/infras/postgres"
	"taskly/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.Health)
}

// Health reports service liveness.
// @Summary Health check
// @Description Report whether the API and its database are reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Todo API is running!"
// @Failure 503 {object} response.Message
// @Router / [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: read database unreachable")

		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: write database unreachable")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "Todo API is running!")
}
