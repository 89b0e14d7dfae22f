// Package common holds the letter-level helpers shared by the index, the
// letter models and the solvers.
package common

import "strings"

// NumLetters is the size of the alphabet we index: a through z.
const NumLetters = 26

// Letter is a letter code: 0 for 'a' through 25 for 'z'. Boundary is the
// extra code used for the start and end of a word.
type Letter uint8

// Boundary marks a word boundary. It sorts after every real letter.
const Boundary Letter = NumLetters

// LetterIndex returns the code for r if it is an ASCII letter in either
// case. Anything else is not a letter for our purposes.
func LetterIndex(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	}
	return 0, false
}

// Counts tallies the letters in s, ignoring everything that is not a letter.
func Counts(s string) [NumLetters]int {
	var counts [NumLetters]int
	for _, r := range s {
		if idx, ok := LetterIndex(r); ok {
			counts[idx]++
		}
	}
	return counts
}

// Signature returns the alphagram of s: its letters, lowercased, in
// alphabetical order. Non-letters are dropped, so "Tea-2" and "ATE" share
// the signature "aet".
func Signature(s string) string {
	counts := Counts(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for i, c := range counts {
		for j := 0; j < c; j++ {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

// Encode converts a string of lowercase letters into letter codes. Other
// characters are skipped.
func Encode(s string) []Letter {
	letters := make([]Letter, 0, len(s))
	for _, r := range s {
		if idx, ok := LetterIndex(r); ok {
			letters = append(letters, Letter(idx))
		}
	}
	return letters
}

// Decode is the inverse of Encode. Boundary codes are dropped.
func Decode(letters []Letter) string {
	var sb strings.Builder
	sb.Grow(len(letters))
	for _, l := range letters {
		if l < Boundary {
			sb.WriteByte(byte('a' + l))
		}
	}
	return sb.String()
}

// IsSubSignature reports whether every letter of sub is available in sig,
// counting multiplicity.
func IsSubSignature(sub, sig string) bool {
	have := Counts(sig)
	for i, c := range Counts(sub) {
		if c > have[i] {
			return false
		}
	}
	return true
}
