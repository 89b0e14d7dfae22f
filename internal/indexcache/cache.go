// Package indexcache persists a word index in a SQLite file next to the
// dictionary it came from, so the dictionary does not have to be re-indexed
// on every run.
//
// A cache file is trusted only if it was built from a dictionary with the
// same file name and the same contents (an xxhash of the file).
package indexcache

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	// sqlite3 driver is used for the cache files.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/domino14/jumble_solver/internal/wordindex"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	// Suffix is appended to the dictionary file name to name its cache.
	Suffix = "-wordlist.db"

	metaFingerprint = "fingerprint"
	metaSource      = "source"
)

// ErrCacheMiss means there is no usable cache for the dictionary.
var ErrCacheMiss = errors.New("index cache miss")

// Options control where caches live. The zero value caches beside the
// dictionary.
type Options struct {
	Dir      string
	Disabled bool
}

// PathFor returns the cache file for a dictionary.
func PathFor(dictPath, dir string) string {
	if dir == "" {
		return dictPath + Suffix
	}
	return filepath.Join(dir, filepath.Base(dictPath)+Suffix)
}

// Fingerprint hashes the contents of the file at path.
func Fingerprint(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()
	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("hashing dictionary: %w", err)
	}
	return h.Sum64(), nil
}

// LoadOrBuild returns the index for the dictionary at dictPath, from its
// cache when the cache is current, otherwise by indexing the dictionary and
// then writing a fresh cache. Failing to read or write the cache is not
// fatal; failing to read the dictionary is.
func LoadOrBuild(ctx context.Context, dictPath string, opts Options) (*wordindex.WordIndex, error) {
	if opts.Disabled {
		return wordindex.BuildFromFile(dictPath)
	}
	fp, err := Fingerprint(dictPath)
	if err != nil {
		return nil, err
	}
	cachePath := PathFor(dictPath, opts.Dir)
	idx, err := Load(ctx, cachePath, dictPath, fp)
	if err == nil {
		log.Debug().Str("cache", cachePath).Int("words", idx.Len()).Msg("cache-hit")
		return idx, nil
	}
	if errors.Is(err, ErrCacheMiss) {
		log.Debug().Str("cache", cachePath).Msg("cache-miss")
	} else {
		log.Warn().Err(err).Str("cache", cachePath).Msg("cache-unreadable")
	}

	idx, err = wordindex.BuildFromFile(dictPath)
	if err != nil {
		return nil, err
	}
	if err := Store(ctx, cachePath, dictPath, fp, idx); err != nil {
		log.Warn().Err(err).Str("cache", cachePath).Msg("cache-write-failed")
	}
	return idx, nil
}

// Load reads the index stored at cachePath. It returns ErrCacheMiss if the
// file does not exist or was built from something else.
func Load(ctx context.Context, cachePath, dictPath string, fingerprint uint64) (*wordindex.WordIndex, error) {
	if _, err := os.Stat(cachePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	db, err := sql.Open("sqlite3", cachePath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	meta, err := readMeta(ctx, db)
	if err != nil {
		return nil, err
	}
	if meta[metaFingerprint] != strconv.FormatUint(fingerprint, 16) ||
		meta[metaSource] != filepath.Base(dictPath) {
		log.Info().Str("cache", cachePath).Msg("stale-cache")
		return nil, ErrCacheMiss
	}

	rows, err := db.QueryContext(ctx, `SELECT word FROM words ORDER BY signature, word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return wordindex.Build(words), nil
}

func readMeta(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM cache_meta`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	meta := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		meta[k] = v
	}
	return meta, rows.Err()
}

// Store writes idx to cachePath, replacing any existing cache. The file is
// built under a temporary name and renamed into place when complete.
func Store(ctx context.Context, cachePath, dictPath string, fingerprint uint64, idx *wordindex.WordIndex) error {
	tmpPath := cachePath + ".tmp"
	if err := os.Remove(tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := write(ctx, tmpPath, dictPath, fingerprint, idx); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, cachePath); err != nil {
		return err
	}
	log.Debug().Str("cache", cachePath).Int("words", idx.Len()).Msg("cache-written")
	return nil
}

func write(ctx context.Context, path, dictPath string, fingerprint uint64, idx *wordindex.WordIndex) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateUp(db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (signature, word) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	err = idx.ForEach(func(sig string, words []string) error {
		for _, w := range words {
			if _, err := stmt.ExecContext(ctx, sig, w); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing words: %w", err)
	}

	meta := map[string]string{
		metaFingerprint: strconv.FormatUint(fingerprint, 16),
		metaSource:      filepath.Base(dictPath),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO cache_meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	// m.Close would also close db, which the caller still owns.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating cache schema: %w", err)
	}
	return nil
}
