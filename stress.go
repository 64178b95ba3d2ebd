package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apoorvam/goterminal"
	tdigest "github.com/caio/go-tdigest"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"intervalmerge/interval"
)

// stress merges n random collections and cross-checks every result
// against an incrementally built Set. The work is striped across the
// given number of workers, each with its own deterministically derived
// seed, so runs are reproducible for a fixed worker count. Merge latency
// quantiles are reported at the end.
func stress(out io.Writer, n, workers int, seed int64) error {
	// Compression 100 keeps the digest around 8KB for 1e6 samples
	// while staying accurate at the tails.
	td, err := tdigest.New(tdigest.Compression(100))
	if err != nil {
		return errors.Wrap(err, "building digest")
	}

	var (
		mu   sync.Mutex // guards td
		done int64
	)

	start := time.Now()

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w

		eg.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(w)))

			for i := w; i < n; i += workers {
				input := randomCollection(rng)

				t0 := time.Now()
				merged, err := interval.Merge(input)
				elapsed := time.Since(t0)

				if err != nil {
					return errors.Wrapf(err, "merging collection %d", i)
				}

				err = checkMerged(input, merged)
				if err != nil {
					return errors.Wrapf(err, "collection %d (%v)", i, input)
				}

				mu.Lock()
				err = td.Add(float64(elapsed))
				mu.Unlock()
				if err != nil {
					return errors.Wrap(err, "recording sample")
				}

				atomic.AddInt64(&done, 1)
			}

			return nil
		})
	}

	finished := make(chan error, 1)
	go func() { finished <- eg.Wait() }()

	var progress *goterminal.Writer
	if stdoutIsTerminal {
		progress = goterminal.New(os.Stdout)
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-finished:
			if progress != nil {
				progress.Clear()
			}
			if err != nil {
				return err
			}

			elapsed := time.Since(start)

			_, err = fmt.Fprintf(out, "%d collections in %v (%.0f/s)\n",
				n, elapsed.Round(time.Millisecond), float64(n)/elapsed.Seconds())
			if err != nil {
				return errors.Wrap(err, "writing summary")
			}

			_, err = fmt.Fprintf(out, "merge latency: q50=%v q99=%v q999=%v\n",
				time.Duration(td.Quantile(0.5)),
				time.Duration(td.Quantile(0.99)),
				time.Duration(td.Quantile(0.999)))
			if err != nil {
				return errors.Wrap(err, "writing quantiles")
			}

			return nil

		case <-ticker.C:
			if progress == nil {
				continue
			}

			progress.Clear()
			fmt.Fprintf(progress, "%d/%d collections", atomic.LoadInt64(&done), n)
			progress.Print()
		}
	}
}

// randomCollection produces 1 to 64 intervals over a small domain so that
// duplicates, nestings and touching bounds come up often.
func randomCollection(rng *rand.Rand) []interval.Interval {
	n := rng.Intn(64) + 1

	ivs := make([]interval.Interval, 0, n)
	for len(ivs) < n {
		min := rng.Intn(2000) - 1000
		iv := interval.Interval{Min: min, Max: min + rng.Intn(40)}
		ivs = append(ivs, iv)

		// Occasionally duplicate what we just added.
		if rng.Intn(8) == 0 && len(ivs) < n {
			ivs = append(ivs, iv)
		}
	}

	return ivs
}

// checkMerged cross-checks merged against input: the result has to agree
// with an interval set fed the same input, no two results may share a
// point, and the collection must not have grown.
func checkMerged(input, merged []interval.Interval) error {
	set := interval.NewSet()
	for _, iv := range input {
		err := set.Add(iv)
		if err != nil {
			return errors.Wrap(err, "feeding set")
		}
	}

	if !equalSets(merged, set.Slice()) {
		return errors.Errorf("merge and set disagree: %v vs %v", merged, set.Slice())
	}

	for i := range merged {
		for j := i + 1; j < len(merged); j++ {
			if merged[i].Overlaps(merged[j]) {
				return errors.Errorf("results %v and %v share points", merged[i], merged[j])
			}
		}
	}

	if len(merged) > len(input) {
		return errors.Errorf("merge grew the collection from %d to %d", len(input), len(merged))
	}

	return nil
}
