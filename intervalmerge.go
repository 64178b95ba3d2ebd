// Intervalmerge demonstrates merging of closed integer intervals. It runs
// a fixed suite of merge scenarios, prints each result next to the
// expected collection and exits non-zero if any scenario comes out wrong.
//
// With -stress it instead pushes random collections through the merger,
// cross-checking every result against an independently built interval set
// and reporting merge latency quantiles.
//
// Diagnostic messages will be written to stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
)

func main() {
	verbose := flag.Bool("verbose", false, "print input, merged and expected collections for every scenario")
	jsonOut := flag.Bool("json", false, "write scenario results as JSON documents instead of text")
	run := flag.String("run", "", "only run scenarios whose name contains this substring")
	stressN := flag.Int("stress", 0, "merge this many random collections instead of running the scenario suite")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of goroutines used by -stress")
	seed := flag.Int64("seed", 1, "base seed for the random collections used by -stress")
	prof := flag.Bool("profile", false, "write a CPU profile to the system temp directory")

	flag.Parse()

	if *stressN < 0 {
		fmt.Fprintf(flag.CommandLine.Output(), "Stress count must not be negative\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *workers < 1 {
		fmt.Fprintf(flag.CommandLine.Output(), "Need at least one worker\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *prof {
		defer profile.Start(profile.ProfilePath(os.TempDir())).Stop()
	}

	if *stressN > 0 {
		err := stress(os.Stdout, *stressN, *workers, *seed)
		if err != nil {
			log.Fatalf("stress run failed: %s", err)
		}

		return
	}

	ran := 0
	failed := 0

	for _, sc := range scenarios {
		if !strings.Contains(sc.name, *run) {
			continue
		}
		ran++

		res, err := runScenario(sc)
		if err != nil {
			log.Fatalf("can't run scenario %q: %s", sc.name, err)
		}

		if !res.Pass {
			failed++
		}

		if *jsonOut {
			err = writeOutcome(os.Stdout, res)
		} else {
			err = printOutcome(os.Stdout, res, *verbose, stdoutIsTerminal)
		}
		if err != nil {
			log.Fatalf("can't report scenario %q: %s", sc.name, err)
		}
	}

	if !*jsonOut {
		fmt.Printf("%d scenarios, %d failed\n", ran, failed)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
