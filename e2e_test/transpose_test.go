//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/chordshift/cmd"
	"github.com/jsphweid/chordshift/config"
	"github.com/jsphweid/chordshift/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	server = httptest.NewServer(cmd.NewRouter(config.Default(), zap.NewNop()))

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func createTransposeReqBody(text string, semitones int) io.Reader {
	data, err := json.Marshal(model.TransposeRequestBody{Text: text, Semitones: semitones})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func transposeE2E(t *testing.T, text string, semitones int) string {
	resp, err := http.Post(server.URL+"/transpose", "application/json", createTransposeReqBody(text, semitones))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get(cmd.RequestIDHeader))

	var res model.TextResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	return res.Text
}

func TestFullChartE2E(t *testing.T) {
	chart := "Intro:\nG   D/F#   Em   C\n\nVerse 1:\n[G]Amazing [G7]grace how [C]sweet the [G]sound\nAm I dreaming"
	want := "Intro:\nA   E/G#   F#m   D\n\nVerse 1:\n[A]Amazing [A7]grace how [D]sweet the [A]sound\nAm I dreaming"

	assert.Equal(t, want, transposeE2E(t, chart, 2))
}

func TestRoundTripE2E(t *testing.T) {
	chart := "C   G#m   F/A\n[D#]la [A#sus4]la"
	for n := -12; n <= 12; n++ {
		up := transposeE2E(t, chart, n)
		assert.Equal(t, chart, transposeE2E(t, up, -n))
	}
}

func TestFlatChartE2E(t *testing.T) {
	assert.Equal(t, "Db  Gb  G#", transposeE2E(t, "Bb  Eb  F", 3))
}
