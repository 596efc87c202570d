package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wege-go/internal/middleware"
)

// Logging creates request logging middleware for the API
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger, gameAttrs)
}

// gameAttrs tags the log line with the game addressed by the route
func gameAttrs(r *http.Request) []slog.Attr {
	if id, ok := mux.Vars(r)["id"]; ok {
		return []slog.Attr{slog.String("game_id", id)}
	}
	return nil
}
