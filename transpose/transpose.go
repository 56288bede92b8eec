// Package transpose shifts every chord in a lyrics-and-chords chart by a
// number of semitones and leaves everything else exactly as written.
//
// Transpose is a pure function and may be called from any number of
// goroutines.
package transpose

import (
	"strings"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/line"
	"github.com/jsphweid/chordshift/util"
)

func Transpose(text string, semitones int) string {
	if util.Mod(semitones, constants.Semitones) == 0 {
		return text
	}

	lines := line.Split(text)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Line(l, semitones)
	}
	return strings.Join(out, "\n")
}

// Line transposes one already classified line.
func Line(l line.Line, semitones int) string {
	switch l.Kind {
	case line.ChordOnly:
		return tokens(l.Text, semitones)
	case line.LyricWithInlineChords:
		return brackets(l.Text, semitones)
	default:
		return l.Text
	}
}

// tokens transposes every non-space token, keeping whitespace runs so
// chords stay in their columns as far as their new widths allow.
func tokens(s string, semitones int) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, tok := range line.Tokens(s) {
		if line.IsSpaceRun(tok) {
			sb.WriteString(tok)
			continue
		}
		sb.WriteString(chord.TransposeToken(tok, semitones))
	}
	return sb.String()
}

// brackets transposes the inside of every [...] pair and copies the rest.
func brackets(s string, semitones int) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for {
		open := strings.IndexByte(s, '[')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open+1:], ']')
		if end < 0 {
			break
		}
		end += open + 1
		sb.WriteString(s[:open+1])
		sb.WriteString(tokens(s[open+1:end], semitones))
		sb.WriteByte(']')
		s = s[end+1:]
	}
	sb.WriteString(s)
	return sb.String()
}
