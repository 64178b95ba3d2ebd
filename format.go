package main

import (
	"fmt"
	"io"
	"os"

	jsoniterator "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"intervalmerge/interval"
)

// stdoutIsTerminal gates the colored verdicts so that piped output stays
// free of escape codes.
var stdoutIsTerminal = term.IsTerminal(int(os.Stdout.Fd()))

// outcome is the reportable result of a single scenario.
type outcome struct {
	Scenario string              `json:"scenario"`
	Pass     bool                `json:"pass"`
	Input    []interval.Interval `json:"input"`
	Merged   []interval.Interval `json:"merged"`
	Expected []interval.Interval `json:"expected"`
}

// printIntervals writes ivs to out, one interval per line.
func printIntervals(out io.Writer, ivs []interval.Interval) error {
	for _, iv := range ivs {
		_, err := fmt.Fprintln(out, iv)
		if err != nil {
			return errors.Wrap(err, "writing interval")
		}
	}

	return nil
}

// printOutcome writes the text report for one scenario: a verdict line,
// followed by the input, merged and expected collections when verbose is
// set. Failures always get the full picture.
func printOutcome(out io.Writer, res outcome, verbose, colored bool) error {
	_, err := fmt.Fprintf(out, "%s %s\n", verdictFor(res.Pass, colored), res.Scenario)
	if err != nil {
		return errors.Wrap(err, "writing verdict")
	}

	if res.Pass && !verbose {
		return nil
	}

	for _, block := range []struct {
		label string
		ivs   []interval.Interval
	}{
		{"input", res.Input},
		{"merged", res.Merged},
		{"expected", res.Expected},
	} {
		_, err := fmt.Fprintf(out, "  %s:\n", block.label)
		if err != nil {
			return errors.Wrap(err, "writing label")
		}

		for _, iv := range block.ivs {
			_, err := fmt.Fprintf(out, "    %s\n", iv)
			if err != nil {
				return errors.Wrap(err, "writing interval")
			}
		}
	}

	return nil
}

// writeOutcome writes res to out as a single JSON document.
func writeOutcome(out io.Writer, res outcome) error {
	err := jsoniterator.NewEncoder(out).Encode(res)
	if err != nil {
		return errors.Wrapf(err, "encoding scenario %q", res.Scenario)
	}

	return nil
}

// verdictFor renders the pass/fail tag, colored when stdout is a terminal.
func verdictFor(pass, colored bool) string {
	if !colored {
		if pass {
			return "PASS"
		}

		return "FAIL"
	}

	if pass {
		return "\x1b[32mPASS\x1b[0m"
	}

	return "\x1b[31mFAIL\x1b[0m"
}
