package model

type TransposeRequestBody struct {
	Text      string `json:"text"`
	Semitones int    `json:"semitones"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type ClassifyRequestBody struct {
	Text string `json:"text"`
}

type ClassifiedLine struct {
	Line         string `json:"line"`
	Kind         string `json:"kind"`
	Transposable bool   `json:"transposable"`
}

type SongViewRequestBody struct {
	Song Song `json:"song"`
}

type SongEditRequestBody struct {
	Song Song   `json:"song"`
	Text string `json:"text"`
}

type SongResponse struct {
	Song Song `json:"song"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
