// Package wordindex maps letter signatures (alphagrams) to the dictionary
// words that share them.
package wordindex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/jumble_solver/internal/common"
	"github.com/domino14/jumble_solver/internal/corpus"
)

// debugDumpLimit is how many signatures String prints.
const debugDumpLimit = 50

// WordIndex is built once and is read-only afterwards, so it is safe to
// share between goroutines.
type WordIndex struct {
	words map[string]map[string]struct{}
	size  int
}

// Build indexes every word under its signature. Duplicate words collapse;
// distinct spellings sharing a signature are all kept.
func Build(words []string) *WordIndex {
	wi := &WordIndex{words: make(map[string]map[string]struct{})}
	for _, w := range words {
		wi.add(w)
	}
	return wi
}

// BuildFromFile indexes every whitespace-separated token of a dictionary
// file.
func BuildFromFile(path string) (*WordIndex, error) {
	wi := &WordIndex{words: make(map[string]map[string]struct{})}
	err := corpus.ForEachFileWord([]string{path}, wi.add)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", wi.size).
		Int("signatures", len(wi.words)).Msg("index-built")
	return wi, nil
}

func (wi *WordIndex) add(word string) {
	sig := common.Signature(word)
	set, ok := wi.words[sig]
	if !ok {
		set = make(map[string]struct{})
		wi.words[sig] = set
	}
	if _, dup := set[word]; !dup {
		set[word] = struct{}{}
		wi.size++
	}
}

// Lookup returns the words whose signature equals the signature of letters,
// sorted. It does exact multiset matching only.
func (wi *WordIndex) Lookup(letters string) ([]string, bool) {
	set, ok := wi.words[common.Signature(letters)]
	if !ok {
		return nil, false
	}
	words := lo.Keys(set)
	sort.Strings(words)
	return words, true
}

// IsAnagram reports whether all of letters can be rearranged into a word.
func (wi *WordIndex) IsAnagram(letters string) bool {
	_, ok := wi.words[common.Signature(letters)]
	return ok
}

// ExactMatch checks whether ordered, read literally, is a dictionary word
// (ignoring case). The word is returned in its dictionary casing.
func (wi *WordIndex) ExactMatch(ordered string) (string, bool) {
	words, ok := wi.Lookup(ordered)
	if !ok {
		return ordered, false
	}
	lower := strings.ToLower(ordered)
	for _, w := range words {
		if strings.ToLower(w) == lower {
			return w, true
		}
	}
	return ordered, false
}

// Len is the number of distinct words indexed.
func (wi *WordIndex) Len() int {
	return wi.size
}

// Signatures returns every signature in the index, sorted.
func (wi *WordIndex) Signatures() []string {
	sigs := lo.Keys(wi.words)
	sort.Strings(sigs)
	return sigs
}

// ForEach visits each signature in sorted order, stopping at the first
// error.
func (wi *WordIndex) ForEach(fn func(signature string, words []string) error) error {
	for _, sig := range wi.Signatures() {
		words, _ := wi.Lookup(sig)
		if err := fn(sig, words); err != nil {
			return err
		}
	}
	return nil
}

func (wi *WordIndex) String() string {
	var sb strings.Builder
	for i, sig := range wi.Signatures() {
		if i == debugDumpLimit {
			break
		}
		words, _ := wi.Lookup(sig)
		fmt.Fprintf(&sb, "%s\n\t%v\n", sig, words)
	}
	return sb.String()
}
