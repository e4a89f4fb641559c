package rest

import (
	"net/http"

	"github.com/dmitrijs2005/langgpt/internal/logging"
)

// NewRouter wires all endpoints and wraps them with CORS and request logging.
func NewRouter(users UserService, translations TranslationService, logger logging.Logger, allowedOrigins string) http.Handler {
	mux := http.NewServeMux()

	authHandler := NewAuthHandler(users, logger)
	translationHandler := NewTranslationHandler(translations, logger)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /token", authHandler.Token)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /api/me", RequireUser(users, authHandler.Me))

	mux.HandleFunc("POST /translate", RequireUser(users, translationHandler.Translate))
	mux.HandleFunc("GET /history", RequireUser(users, translationHandler.History))

	return CORS(allowedOrigins, WithLogging(logger, mux))
}
