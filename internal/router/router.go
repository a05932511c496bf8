// Package router wires handlers and middleware into the HTTP routing tree.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/Ifrah-c/personal-note-app/internal/handlers"
	"github.com/Ifrah-c/personal-note-app/internal/jwt"
	"github.com/Ifrah-c/personal-note-app/internal/middlewares"
	"github.com/Ifrah-c/personal-note-app/internal/services"
	"github.com/Ifrah-c/personal-note-app/internal/views"
)

// New builds the application router. swaggerURL points the UI at the
// generated API document.
func New(
	authService *services.AuthService,
	noteService *services.NoteService,
	tokens *jwt.JWT,
	sessions middlewares.SessionReader,
	renderer *views.Renderer,
	log *zap.SugaredLogger,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	withSession := middlewares.SessionMiddleware(tokens, sessions)

	r.Group(func(r chi.Router) {
		r.Use(withSession)

		r.Get("/", handlers.NewIndexHandler())

		r.Get("/signup", handlers.NewSignupPageHandler(renderer))
		r.Post("/signup", handlers.NewSignupHandler(authService, renderer))
		r.Get("/login", handlers.NewLoginPageHandler(renderer))
		r.Post("/login", handlers.NewLoginHandler(authService, tokens, renderer))
		r.Get("/logout", handlers.NewLogoutHandler(authService, tokens))

		r.Get("/dashboard", handlers.NewDashboardHandler(noteService, renderer))
		r.Get("/add", handlers.NewAddNotePageHandler(renderer))
		r.Post("/add", handlers.NewAddNoteHandler(noteService, renderer))
		r.Get("/edit/{noteID:[0-9]+}", handlers.NewEditNotePageHandler(noteService, renderer))
		r.Post("/edit/{noteID:[0-9]+}", handlers.NewEditNoteHandler(noteService, renderer))
		r.Get("/delete/{noteID:[0-9]+}", handlers.NewDeleteNoteHandler(noteService, renderer))
	})

	r.NotFound(withSession(handlers.NewNotFoundHandler(renderer)).ServeHTTP)

	return r
}
