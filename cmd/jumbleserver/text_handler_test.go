package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/jumble_solver/internal/jumbleserver"
	"github.com/domino14/jumble_solver/internal/solver"
	"github.com/domino14/jumble_solver/internal/wordindex"
)

func testHandler() http.Handler {
	idx := wordindex.Build([]string{"a", "aa", "ab"})
	js := &jumbleserver.Server{Solver: solver.NewExhaustive(idx), MaxLetters: 5}
	return middleware(zerolog.Nop()).Then(plainTextHandler(js))
}

type handlertestpair struct {
	url    string
	status int
	body   string
}

var handlerTests = []handlertestpair{
	{"/solve?letters=aab", http.StatusOK, "a\nab\na\nab\naa\n"},
	{"/solve?letters=aab&unique=1", http.StatusOK, "a\nab\naa\n"},
	{"/solve?letters=zz", http.StatusOK, ""},
	{"/solve", http.StatusBadRequest, "letters required"},
	{"/solve?letters=abcdef", http.StatusBadRequest, "query too complex"},
}

func TestPlainTextHandler(t *testing.T) {
	h := testHandler()
	for _, tc := range handlerTests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.url, nil))
		assert.Equal(t, tc.status, rec.Code, tc.url)
		assert.Equal(t, tc.body, rec.Body.String(), tc.url)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/solve?letters=ab", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
