// Command emojiscan finds emoji in text.
//
// Text is taken from the command line arguments or, if there are none, from
// standard input:
//
//	emojiscan detect "Hello 😀 World"
//	echo "I love 😀!" | emojiscan replace --prefix="<" --suffix=">"
//
// Matches are written as JSON or YAML. Settings may be read from a YAML
// configuration file (--config); command line flags take precedence.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
