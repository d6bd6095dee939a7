package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/careline/medichat/internal/handler/chat"
	middlewarePkg "github.com/careline/medichat/internal/middleware"
	"github.com/careline/medichat/internal/service/dialog"
	"github.com/careline/medichat/pkg/utils"
)

// NewRouter wires HTTP routes to the dialog engine.
func NewRouter(engine *dialog.Engine) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	chatHandler.New(engine).RegisterRoutes(r)

	return r
}
