// Command jumble prints the words that can be made from a jumble.
//
//	jumble [flags] <dictionary> <letters> [training files...]
//
// With no training files every subset of the letters is tried. With one or
// more, the letter models are trained on them and only the likeliest
// orderings are tried.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/jumble_solver/config"
	"github.com/domino14/jumble_solver/internal/jumbleserver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	if cfg.DictionaryPath == "" || cfg.Letters == "" {
		fmt.Fprintln(os.Stderr, "usage: jumble [flags] <dictionary> <letters> [training files...]")
		os.Exit(2)
	}
	log.Debug().Interface("config", cfg).Msg("input")

	ctx := context.Background()
	s, err := jumbleserver.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	words, err := s.Solve(ctx, cfg.Letters, cfg.Unique)
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := printWords(os.Stdout, words); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// printWords writes one word per line.
func printWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		bw.WriteString(word)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
