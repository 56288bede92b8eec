package model

// Song is the stored form of a chart. LyricsWithChords is always kept at
// offset 0; Transpose is the offset currently shown.
type Song struct {
	ID               string `json:"id" yaml:"id"`
	Title            string `json:"title" yaml:"title"`
	Artist           string `json:"artist" yaml:"artist"`
	LyricsWithChords string `json:"lyricsWithChords" yaml:"lyricsWithChords"`
	Transpose        int    `json:"transpose" yaml:"transpose"`
	ScrollSpeed      int    `json:"scrollSpeed" yaml:"scrollSpeed"`
}
