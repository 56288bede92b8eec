// Package pitch maps note names to the twelve chromatic pitch classes and
// back again.
package pitch

import (
	"errors"
	"fmt"

	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/util"
)

var ErrUnknownLetter = errors.New("unknown note letter")

// Class is a position in the chromatic scale, C=0 through B=11.
type Class uint8

type Spelling uint8

const (
	Sharp Spelling = iota
	Flat
)

var sharpNames = [constants.Semitones]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [constants.Semitones]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// natural pitch class of each letter A through G
var letterClasses = [7]Class{9, 11, 0, 2, 4, 5, 7}

func IsLetter(b byte) bool {
	return b >= 'A' && b <= 'G'
}

func IsAccidental(b byte) bool {
	return b == '#' || b == 'b'
}

// SpellingOf picks the table a note is rendered with. Only an explicit
// flat keeps flat spelling.
func SpellingOf(accidental byte) Spelling {
	if accidental == 'b' {
		return Flat
	}
	return Sharp
}

// FromNote converts a letter and optional accidental (0 for none) into a
// pitch class.
func FromNote(letter byte, accidental byte) (Class, error) {
	if !IsLetter(letter) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, letter)
	}
	pc := int(letterClasses[letter-'A'])
	switch accidental {
	case '#':
		pc++
	case 'b':
		pc--
	}
	return Class(util.Mod(pc, constants.Semitones)), nil
}

func (c Class) Transpose(semitones int) Class {
	shift := util.Mod(semitones, constants.Semitones)
	return Class((int(c) + shift) % constants.Semitones)
}

func (c Class) Name(s Spelling) string {
	if s == Flat {
		return flatNames[c%constants.Semitones]
	}
	return sharpNames[c%constants.Semitones]
}

func (s Spelling) String() string {
	if s == Flat {
		return "flat"
	}
	return "sharp"
}

// Note is a pitch class together with how it was written.
type Note struct {
	Class    Class
	Spelling Spelling
}

// ParseNote reads a note from the start of s and reports how many bytes it
// used. It returns false when s does not begin with a note letter.
func ParseNote(s string) (Note, int, bool) {
	if len(s) == 0 || !IsLetter(s[0]) {
		return Note{}, 0, false
	}
	var accidental byte
	n := 1
	if len(s) > 1 && IsAccidental(s[1]) {
		accidental = s[1]
		n = 2
	}
	pc, err := FromNote(s[0], accidental)
	if err != nil {
		return Note{}, 0, false
	}
	return Note{Class: pc, Spelling: SpellingOf(accidental)}, n, true
}

func (n Note) Transpose(semitones int) Note {
	return Note{Class: n.Class.Transpose(semitones), Spelling: n.Spelling}
}

func (n Note) String() string {
	return n.Class.Name(n.Spelling)
}
