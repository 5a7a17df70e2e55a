package main

import (
	"os"
	"path/filepath"
	"testing"

	allelegraph "github.com/HamletTheHamster/allele-count-graph"
)

func TestFlags(t *testing.T) {
	opts, err := flags([]string{"-input-json", "counts.json", "-save-plot"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.input != "counts.json" || !opts.save || opts.output != allelegraph.OutputName {
		t.Errorf("unexpected options %+v", opts)
	}

	opts, err = flags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.input != "" || opts.save {
		t.Errorf("unexpected defaults %+v", opts)
	}

	if _, err := flags([]string{"-show"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	for _, v := range []struct {
		input string
		save  bool
	}{
		{"", true},
		{"../../testdata/counts.json", true},
		{"../../testdata/counts.tsv", false},
	} {
		out := filepath.Join(dir, filepath.Base(v.input)+".png")
		if err := run(options{input: v.input, save: v.save, output: out}); err != nil {
			t.Fatalf("%q: %v", v.input, err)
		}

		_, err := os.Stat(out)
		if v.save && err != nil {
			t.Errorf("%q: expected %s to be written: %v", v.input, out, err)
		}
		if !v.save && err == nil {
			t.Errorf("%q: %s written without -save-plot", v.input, out)
		}
	}

	if err := run(options{input: filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("expected an error for a missing input")
	}
}
