package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/domino14/jumble_solver/internal/jumbleserver"
)

func writeError(w http.ResponseWriter, status int, err string) {
	w.WriteHeader(status)
	w.Write([]byte(err))
}

// plainTextHandler answers /solve?letters=...&unique=1 with one word per
// line.
func plainTextHandler(js *jumbleserver.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		query := r.URL.Query()
		letters := query.Get("letters")
		unique := query.Get("unique") == "1" || query.Get("unique") == "true"

		words, err := js.Solve(r.Context(), letters, unique)
		switch {
		case errors.Is(err, jumbleserver.ErrNoLetters), errors.Is(err, jumbleserver.ErrQueryTooLarge):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeWords(w, words)
	})
}

func writeWords(w http.ResponseWriter, words []string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	var s strings.Builder
	for _, word := range words {
		s.WriteString(word)
		s.WriteString("\n")
	}
	w.Write([]byte(s.String()))
}
