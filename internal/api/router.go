package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/inotebook/server/internal/api/handlers"
	"github.com/inotebook/server/internal/api/middleware"
	"github.com/inotebook/server/internal/config"
	"github.com/inotebook/server/internal/service"
	"github.com/inotebook/server/internal/validation"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	validate := validation.New()
	authHandler := handlers.NewAuthHandler(services.Auth, validate, cfg)
	notesHandler := handlers.NewNotesHandler(services.Note, validate)

	session := middleware.Session(services.Token)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/createuser", authHandler.CreateUser)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password/{token}", authHandler.ResetPassword)
			r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("pong"))
			})

			r.Group(func(r chi.Router) {
				r.Use(session)
				r.Post("/getuser", authHandler.GetUser)
			})
		})

		r.Route("/notes", func(r chi.Router) {
			r.Use(session)
			r.Get("/fetchallnotes", notesHandler.FetchAll)
			r.Post("/addnote", notesHandler.Add)
			r.Put("/updatenote/{id}", notesHandler.Update)
			r.Delete("/deletenote/{id}", notesHandler.Delete)
		})
	})

	return r
}
