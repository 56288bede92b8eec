// Package song keeps a song's stored chart at offset 0 while it is viewed
// and edited at any other offset.
package song

import (
	"github.com/google/uuid"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/transpose"
)

func New(title, artist, lyricsWithChords string) model.Song {
	return model.Song{
		ID:               uuid.New().String(),
		Title:            title,
		Artist:           artist,
		LyricsWithChords: lyricsWithChords,
		ScrollSpeed:      constants.DefaultScrollSpeed,
	}
}

// View is the chart as it should be displayed at the song's current offset.
func View(s model.Song) string {
	return transpose.Transpose(s.LyricsWithChords, s.Transpose)
}

// Step moves the displayed offset. The offset is never wrapped so the
// count shown to the player stays what they clicked.
func Step(s model.Song, delta int) model.Song {
	s.Transpose += delta
	return s
}

// ApplyEdit stores text that was edited while displayed at s.Transpose,
// moving it back to offset 0 first.
func ApplyEdit(s model.Song, edited string) model.Song {
	s.LyricsWithChords = transpose.Transpose(edited, -s.Transpose)
	return s
}
