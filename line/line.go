// Package line decides how each line of a chord chart should be treated.
package line

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/chordshift/chord"
)

type Kind uint8

const (
	// song structure such as "Verse 2:"; never transposed
	StructuralLabel Kind = iota
	// lyrics with [..] chords; only bracket interiors are transposed
	LyricWithInlineChords
	// every token is a chord
	ChordOnly
	PlainLyric
)

var kindNames = map[Kind]string{
	StructuralLabel:       "label",
	LyricWithInlineChords: "inline",
	ChordOnly:             "chords",
	PlainLyric:            "lyric",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Transposable reports whether lines of this kind carry chords.
func (k Kind) Transposable() bool {
	return k == LyricWithInlineChords || k == ChordOnly
}

var labelRegex = regexp.MustCompile(
	`(?i)^(verse|chorus|intro|outro|bridge|pre-chorus|interlude|solo|instrumental|capo|key|tuning)(\s*\d+)?\s*:?$`)

type Line struct {
	Text string
	Kind Kind
}

func IsStructuralLabel(s string) bool {
	return labelRegex.MatchString(strings.TrimSpace(s))
}

// HasBracketPair reports whether s has a '[' with a ']' somewhere after it.
func HasBracketPair(s string) bool {
	open := strings.IndexByte(s, '[')
	return open >= 0 && strings.IndexByte(s[open+1:], ']') >= 0
}

func isChordOnly(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !chord.IsChord(f) {
			return false
		}
	}
	return true
}

// Classify looks at a single line; neighbouring lines never affect the
// result.
func Classify(s string) Kind {
	switch {
	case IsStructuralLabel(s):
		return StructuralLabel
	case HasBracketPair(s):
		return LyricWithInlineChords
	case isChordOnly(s):
		return ChordOnly
	default:
		return PlainLyric
	}
}

// Split breaks text on "\n" and classifies every line. Joining the Text
// fields with "\n" gives back text.
func Split(text string) []Line {
	parts := strings.Split(text, "\n")
	res := make([]Line, 0, len(parts))
	for _, p := range parts {
		res = append(res, Line{Text: p, Kind: Classify(p)})
	}
	return res
}

// Tokens splits s into alternating runs of whitespace and non-whitespace.
// strings.Join(Tokens(s), "") == s.
func Tokens(s string) []string {
	var res []string
	start := 0
	inSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i > start && space != inSpace {
			res = append(res, s[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}

// IsSpaceRun reports whether tok is a whitespace run produced by Tokens.
func IsSpaceRun(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return tok != "" && unicode.IsSpace(r)
}
