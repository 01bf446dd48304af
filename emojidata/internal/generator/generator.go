/*
Package for a generator for the emoji pattern source.

Content

Generator for the ordered list of emoji sequences the pattern matcher is
compiled from. The list is derived from the name table: every key of the
table becomes a pattern, longer sequences preceding shorter ones.

The pattern source is generated from a companion file: "map.json".


Usage

The generator has two options, a "verbose" flag and a flag to use the alias
table of github.com/enescakir/emoji instead of "map.json".

   generator [-v] [-aliases]

This creates a file "patterns.json" in the current directory. It is designed
to be called from the "emojidata" directory.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"runtime"
	"text/template"
	"time"

	"github.com/npillmayer/emodetect/emojidata"
)

var logger = log.New(os.Stderr, "emoji pattern generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Load the emoji name table: map.json
func loadNameTable(aliases bool) (emojidata.Names, error) {
	if aliases {
		if verbose {
			logger.Printf("using alias table")
		}
		return emojidata.AliasNames(), nil
	}
	if verbose {
		logger.Printf("reading map.json")
	}
	defer timeTrack(time.Now(), "loading map.json")
	f, err := os.Open("map.json")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return emojidata.LoadNames(f)
}

// --- Templates --------------------------------------------------------

var templatePatterns = `[{{$i:=0}}{{range .}}{{if notfirst $i}},{{end}}{{$i = inc $i}}
  "{{.}}"{{end}}
]
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"notfirst": func(i int) bool {
		return i > 0
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	doAliases := flag.Bool("aliases", false, "derive patterns from alias table")
	flag.Parse()
	verbose = *doVerbose
	names, err := loadNameTable(*doAliases)
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d emoji names\n", len(names))
	}
	keys := emojidata.PatternsFromNames(names)
	f, ioerr := os.Create("patterns.json")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	t := makeTemplate("Emoji patterns", templatePatterns)
	checkFatal(t.Execute(w, keys))
	checkFatal(w.Flush())
	if verbose {
		logger.Printf("wrote %d patterns\n", len(keys))
	}
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
