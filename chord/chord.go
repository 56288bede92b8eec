package chord

import (
	"strings"

	"github.com/jsphweid/chordshift/pitch"
)

// qualityPieces is the closed vocabulary a chord suffix may be built from.
var qualityPieces = []string{
	"m/maj7", "m/Maj7",
	"maj7", "sus2", "sus4", "add9",
	"maj", "min", "dim", "aug", "sus", "add",
	"m7", "11", "13",
	"m", "7", "6", "9",
}

const Decoration = "*"

type Chord struct {
	Root    pitch.Note
	Quality string
	// nil unless written as a slash chord
	Bass       *pitch.Note
	Decoration string
}

// Parse decomposes token into a chord. The second result is false when the
// token is not a chord; that is an ordinary outcome for lyric words.
func Parse(token string) (Chord, bool) {
	root, n, ok := pitch.ParseNote(token)
	if !ok {
		return Chord{}, false
	}
	c := Chord{Root: root}
	if !parseQuality(token[n:], &c) {
		return Chord{}, false
	}
	return c, true
}

func IsChord(token string) bool {
	_, ok := Parse(token)
	return ok
}

// parseQuality finds the shortest run of vocabulary pieces at the start of
// rest that leaves a valid tail. Positions reachable by whole pieces are
// marked left to right, so each token is scanned once per piece.
func parseQuality(rest string, c *Chord) bool {
	reachable := make([]bool, len(rest)+1)
	reachable[0] = true
	for i := 0; i <= len(rest); i++ {
		if !reachable[i] {
			continue
		}
		if parseTail(rest[i:], c) {
			c.Quality = rest[:i]
			return true
		}
		for _, piece := range qualityPieces {
			if strings.HasPrefix(rest[i:], piece) {
				reachable[i+len(piece)] = true
			}
		}
	}
	return false
}

// parseTail accepts ("/" root)? "*"?
func parseTail(tail string, c *Chord) bool {
	c.Bass = nil
	c.Decoration = ""
	if strings.HasSuffix(tail, Decoration) {
		c.Decoration = Decoration
		tail = strings.TrimSuffix(tail, Decoration)
	}
	if tail == "" {
		return true
	}
	if tail[0] != '/' {
		return false
	}
	bass, n, ok := pitch.ParseNote(tail[1:])
	if !ok || n != len(tail)-1 {
		return false
	}
	c.Bass = &bass
	return true
}

// Transpose shifts root and bass by the same offset. Each note keeps the
// spelling it was written with; quality and decoration are untouched.
func (c Chord) Transpose(semitones int) Chord {
	res := c
	res.Root = c.Root.Transpose(semitones)
	if c.Bass != nil {
		bass := c.Bass.Transpose(semitones)
		res.Bass = &bass
	}
	return res
}

func (c Chord) String() string {
	var sb strings.Builder
	sb.WriteString(c.Root.String())
	sb.WriteString(c.Quality)
	if c.Bass != nil {
		sb.WriteByte('/')
		sb.WriteString(c.Bass.String())
	}
	sb.WriteString(c.Decoration)
	return sb.String()
}

// TransposeToken returns token shifted by semitones, or token itself when
// it is not a chord.
func TransposeToken(token string, semitones int) string {
	c, ok := Parse(token)
	if !ok {
		return token
	}
	return c.Transpose(semitones).String()
}
