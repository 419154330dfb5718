package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("http")

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogging(logger))
	r.Use(CORS(corsAllowedOrigins))
	r.Use(recoverPanic(logger))

	r.Get("/healthz", handler.Healthz)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/profiles", handler.ListProfiles)
		r.Route("/seasons/{season}", func(r chi.Router) {
			r.Get("/scores", handler.ListSeasonScores)
			r.Post("/scores", handler.ScoreSeasonCustom)
			r.Get("/games/{gameID}/scores", handler.GetGameScores)
			r.Get("/weeks/{week}/teams/{team}/scores", handler.GetTeamWeekScores)
		})
	})

	return RequestTracing(r)
}
