// Command allele-count-graph plots paired allele counts by genotype.
//
// Without -input-json the built-in six sample example is plotted. To look at
// the chart in a gnuplot window instead, use allele-count-show.
package main

import (
	"flag"
	"log"
	"os"

	allelegraph "github.com/HamletTheHamster/allele-count-graph"
)

type options struct {
	input  string
	save   bool
	output string
}

func main() {

	opts, err := flags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Fatalln(err)
	}
}

func flags(
	args []string,
) (
	options, error,
) {

	opts := options{output: allelegraph.OutputName}

	fs := flag.NewFlagSet("allele-count-graph", flag.ContinueOnError)
	fs.StringVar(&opts.input, "input-json", "", "path to the allele count dataset (JSON, or CSV/TSV by extension)")
	fs.BoolVar(&opts.save, "save-plot", false, "save the plot to "+allelegraph.OutputName)

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	return opts, nil
}

// run loads, renders and, if asked, saves one chart.
func run(opts options) error {
	counts, err := allelegraph.Load(opts.input)
	if err != nil {
		return err
	}
	if opts.input == "" {
		log.Printf("No input given, using %d example samples\n", len(counts))
	} else {
		log.Printf("Read %d samples from %s\n", len(counts), opts.input)
	}

	chart, err := allelegraph.Render(counts)
	if err != nil {
		return err
	}

	if !opts.save {
		return nil
	}

	if err := chart.Save(opts.output); err != nil {
		return err
	}
	log.Printf("Wrote %s (%d samples, %d dpi)\n", opts.output, chart.Pairs, allelegraph.DPI)

	return nil
}
