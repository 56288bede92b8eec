package main

import "github.com/jsphweid/chordshift/cmd"

func main() {
	cmd.Execute()
}
