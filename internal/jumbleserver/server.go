// Package jumbleserver owns a loaded dictionary and solver and answers
// solve requests for the command line tool and the HTTP server.
package jumbleserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/jumble_solver/config"
	"github.com/domino14/jumble_solver/internal/indexcache"
	"github.com/domino14/jumble_solver/internal/model"
	"github.com/domino14/jumble_solver/internal/solver"
)

var (
	ErrNoLetters     = errors.New("letters required")
	ErrQueryTooLarge = errors.New("query too complex")
)

type Server struct {
	Solver solver.Solver
	// MaxLetters rejects longer jumbles when positive.
	MaxLetters int
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Debug().Msgf("%s took %s", name, elapsed)
}

// New loads (or indexes) the dictionary, trains the letter models if any
// training files are configured, and picks the matching solver.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	defer timeTrack(time.Now(), "initialize")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idx, err := indexcache.LoadOrBuild(ctx, cfg.DictionaryPath, indexcache.Options{
		Dir:      cfg.CacheDir,
		Disabled: cfg.CacheDisable,
	})
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}

	var slv solver.Solver
	if len(cfg.TrainingPaths) == 0 {
		slv = solver.NewExhaustive(idx)
	} else {
		pm, sm, err := model.NewTrained(cfg.TrainingPaths)
		if err != nil {
			return nil, fmt.Errorf("training models: %w", err)
		}
		bf := solver.NewBestFirst(idx, pm, sm)
		bf.Threshold = cfg.Threshold
		slv = bf
	}
	log.Info().Int("words", idx.Len()).Int("training-files", len(cfg.TrainingPaths)).
		Str("solver", fmt.Sprintf("%T", slv)).Msg("jumble-server-initialized")

	return &Server{Solver: slv, MaxLetters: cfg.MaxLetters}, nil
}

// Solve solves one jumble. With unique set, repeated words are dropped,
// keeping the first occurrence.
func (s *Server) Solve(ctx context.Context, letters string, unique bool) ([]string, error) {
	defer timeTrack(time.Now(), "solve")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if letters == "" {
		return nil, ErrNoLetters
	}
	if s.MaxLetters > 0 && len([]rune(letters)) > s.MaxLetters {
		return nil, ErrQueryTooLarge
	}
	words := s.Solver.Solve(letters)
	if unique {
		words = lo.Uniq(words)
	}
	log.Debug().Str("letters", letters).Int("found", len(words)).Msg("solve-finished")
	return words, nil
}
