// Command allele-count-show displays the allele count graph in a persistent
// gnuplot window. gnuplot must be on PATH; without it the process panics at
// start-up and exits non-zero.
package main

import (
	"flag"
	"log"

	"github.com/Arafatk/glot"

	allelegraph "github.com/HamletTheHamster/allele-count-graph"
)

func main() {

	var input string
	flag.StringVar(&input, "input-json", "", "path to the allele count dataset (JSON, or CSV/TSV by extension)")
	flag.Parse()

	counts, err := allelegraph.Load(input)
	if err != nil {
		log.Fatalln(err)
	}

	script, err := allelegraph.GnuplotScript(counts)
	if err != nil {
		log.Fatalln(err)
	}

	gp, err := glot.NewPlot(2, true, false)
	if err != nil {
		log.Fatalln(err)
	}
	defer gp.Close()

	// one program, so every setting is in place before the single plot command
	if err := gp.Cmd("%s", script); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Showing %d samples\n", len(counts))
}
