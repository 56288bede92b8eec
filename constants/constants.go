package constants

import "time"

// Semitones in an octave; every pitch calculation is taken modulo this.
const Semitones = 12

const DefaultScrollSpeed = 20

const DefaultPort = "8080"

const DefaultAllowOrigins = "*"

const DefaultLogLevel = "info"

const DefaultDebounce = 250 * time.Millisecond

const MaxRequestBytes = 1 << 20

const EnvPrefix = "CHORDSHIFT_"
