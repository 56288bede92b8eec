package pitch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNote(t *testing.T) {
	cases := []struct {
		letter     byte
		accidental byte
		want       Class
	}{
		{'C', 0, 0},
		{'C', '#', 1},
		{'D', 'b', 1},
		{'B', 0, 11},
		{'B', 'b', 10},
		{'A', '#', 10},
		{'C', 'b', 11},
		{'B', '#', 0},
		{'E', '#', 5},
	}

	for _, c := range cases {
		got, err := FromNote(c.letter, c.accidental)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%c%c", c.letter, c.accidental)
	}
}

func TestFromNoteRejectsUnknownLetters(t *testing.T) {
	for _, letter := range []byte{'H', 'a', 'c', '1', ' '} {
		_, err := FromNote(letter, 0)
		assert.True(t, errors.Is(err, ErrUnknownLetter))
	}
}

func TestNameUsesTableForSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C#", Class(1).Name(Sharp))
	assert.Equal("Db", Class(1).Name(Flat))
	assert.Equal("Bb", Class(10).Name(Flat))
	assert.Equal("A#", Class(10).Name(Sharp))
	assert.Equal("E", Class(4).Name(Flat))
}

func TestTransposeWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Class(11), Class(0).Transpose(-1))
	assert.Equal(Class(0), Class(10).Transpose(2))
	assert.Equal(Class(3), Class(3).Transpose(120))
	assert.Equal(Class(2), Class(3).Transpose(-13))
	assert.Equal(Class(0), Class(5).Transpose(int(^uint(0)>>1)))
}

func TestSpellingOf(t *testing.T) {
	assert.Equal(t, Flat, SpellingOf('b'))
	assert.Equal(t, Sharp, SpellingOf('#'))
	assert.Equal(t, Sharp, SpellingOf(0))
}

func TestParseNote(t *testing.T) {
	n, used, ok := ParseNote("Bbm7")
	require.True(t, ok)
	assert.Equal(t, 2, used)
	assert.Equal(t, Note{Class: 10, Spelling: Flat}, n)

	n, used, ok = ParseNote("G/B")
	require.True(t, ok)
	assert.Equal(t, 1, used)
	assert.Equal(t, "G", n.String())

	_, _, ok = ParseNote("am")
	assert.False(t, ok)
	_, _, ok = ParseNote("")
	assert.False(t, ok)
}

func TestNoteTransposeKeepsSpelling(t *testing.T) {
	n := Note{Class: 10, Spelling: Flat}
	assert.Equal(t, "B", n.Transpose(1).String())
	assert.Equal(t, "Ab", n.Transpose(-2).String())
	assert.Equal(t, "C", n.Transpose(2).String())
}
