package allelegraph

import (
	"errors"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestGnuplotScript(t *testing.T) {
	script, err := GnuplotScript(ExampleData)
	if err != nil {
		t.Fatal(err)
	}

	plot := strings.Index(script, "\nplot ")
	if plot < 0 {
		t.Fatalf("no plot command in\n%s", script)
	}

	// settings must precede the one plot command, which nothing replots
	for _, set := range []string{
		`set title "Allele Counts by Genotype"`,
		`set xlabel "Genotype"`,
		`set ylabel "Allele Count"`,
		"set xrange [-1:5]",
		"set yrange [0:72]",
	} {
		if i := strings.Index(script, set); i < 0 || i > plot {
			t.Errorf("%q missing or after the plot command", set)
		}
	}
	if strings.Count(script, "plot ") != 1 || strings.Contains(script, "replot") {
		t.Error("expected exactly one plot command")
	}

	// three curves per genotype in its colour: segments and two marker sets
	for _, col := range []string{"#0000ff", "#ffa500", "#ff0000"} {
		if n := strings.Count(script, `lc rgb "`+col+`"`); n != 3 {
			t.Errorf("%s: got %d curves, expected 3", col, n)
		}
		if !strings.Contains(script, `textcolor rgb "`+col+`"`) {
			t.Errorf("%s: no genotype label", col)
		}
	}

	// only the two allele entries are titled
	if n := strings.Count(script, `" title "`); n != 2 {
		t.Errorf("got %d titled curves, expected 2", n)
	}
	if n := strings.Count(script, "notitle"); n != 3*len(Genotypes) {
		t.Errorf("got %d untitled curves, expected %d", n, 3*len(Genotypes))
	}

	// one inline block per curve reading '-'
	if blocks, curves := strings.Count(script, "\ne\n"), strings.Count(script, "'-'"); blocks != curves {
		t.Errorf("got %d data blocks for %d inline curves", blocks, curves)
	}
	if !strings.Contains(script, "-0.5 2\n0.5 4\n\n") {
		t.Error("missing the segment of sample 1")
	}
}

func TestGnuplotScriptErrors(t *testing.T) {
	d := Dataset{"1": {Genotype: "hom", Allele1Count: 1, Allele2Count: 1}}
	if _, err := GnuplotScript(d); !errors.Is(err, ErrUnknownGenotype) {
		t.Errorf("got %v, expected %v", err, ErrUnknownGenotype)
	}
	if _, err := GnuplotScript(Dataset{}); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("got %v, expected %v", err, ErrEmptyDataset)
	}
}

// glot panics at init without gnuplot on PATH, so only allele-count-show may import it.
func TestGlotImportedOnlyByShow(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	more, err := filepath.Glob("cmd/allele-count-graph/*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, path := range append(files, more...) {
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatal(err)
		}
		for _, imp := range f.Imports {
			if p, _ := strconv.Unquote(imp.Path.Value); p == "github.com/Arafatk/glot" {
				t.Errorf("%s imports %s", path, p)
			}
		}
	}
}
