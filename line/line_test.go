package line

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		line string
		want Kind
	}{
		{"Chorus:", StructuralLabel},
		{"  verse 2:  ", StructuralLabel},
		{"Pre-Chorus", StructuralLabel},
		{"INTRO 1", StructuralLabel},
		{"Capo 3", StructuralLabel},
		{"Tuning:", StructuralLabel},
		{"Bridge [C]", LyricWithInlineChords},
		{"word [Am] word", LyricWithInlineChords},
		{"[C]  [G]", LyricWithInlineChords},
		{"[]", LyricWithInlineChords},
		{"C   G   Am  F", ChordOnly},
		{"\tD/F#  Bb*\r", ChordOnly},
		{"A", ChordOnly},
		{"Am I dreaming", PlainLyric},
		{"C G Am F and then", PlainLyric},
		{"", PlainLyric},
		{"    ", PlainLyric},
		{"Key: G", PlainLyric},
		{"] C [", PlainLyric},
		{"[C", PlainLyric},
		{"Verses of love", PlainLyric},
	}

	for _, c := range cases {
		t.Run(c.line, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.line))
		})
	}
}

func TestSplitKeepsEveryLine(t *testing.T) {
	text := "Verse 1:\nC  G\nHello [Am]there\n\nbye\n"
	lines := Split(text)

	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.Text)
	}

	assert := assert.New(t)
	assert.Equal(text, strings.Join(texts, "\n"))
	assert.Equal([]Kind{StructuralLabel, ChordOnly, LyricWithInlineChords, PlainLyric, PlainLyric, PlainLyric},
		kinds(lines))
}

func kinds(lines []Line) []Kind {
	var res []Kind
	for _, l := range lines {
		res = append(res, l.Kind)
	}
	return res
}

func TestTokensRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"C",
		"C   G   Am  F",
		"  leading and trailing  ",
		"tabs\tand nbsp",
		"\xff\xfe broken",
	}
	for _, c := range cases {
		assert.Equal(t, c, strings.Join(Tokens(c), ""))
	}

	assert.Equal(t, []string{"C", "   ", "G", " ", "Am"}, Tokens("C   G Am"))
	assert.Equal(t, []string{" ", "x", " "}, Tokens(" x "))
}

func TestIsSpaceRun(t *testing.T) {
	assert.True(t, IsSpaceRun("  "))
	assert.True(t, IsSpaceRun("\t"))
	assert.False(t, IsSpaceRun("C"))
	assert.False(t, IsSpaceRun(""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "chords", ChordOnly.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.True(t, ChordOnly.Transposable())
	assert.False(t, StructuralLabel.Transposable())
}
