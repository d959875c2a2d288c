package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/quizforge-lambda/docs"
	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizforge-lambda/internal/status"
	"github.com/saulo-duarte/quizforge-lambda/internal/web"
)

type RouterConfig struct {
	AIQuizHandler      *aiquiz.Handler
	StatusHandler      *status.Handler
	WebHandler         *web.Handler
	CORSAllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CORSAllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		status.Routes(r, cfg.StatusHandler)
		aiquiz.Routes(r, cfg.AIQuizHandler)
	})

	web.Routes(r, cfg.WebHandler)

	return r
}
