package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"intervalmerge/interval"
)

func TestRandomCollection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		ivs := randomCollection(rng)
		require.NotEmpty(t, ivs)
		require.LessOrEqual(t, len(ivs), 64)

		for _, iv := range ivs {
			require.True(t, iv.WellFormed(), "collection %d holds inverted interval %v", i, iv)
		}
	}

	// The same seed replays the same collections.
	a := randomCollection(rand.New(rand.NewSource(7)))
	b := randomCollection(rand.New(rand.NewSource(7)))
	require.Equal(t, a, b)
}

func TestCheckMerged(t *testing.T) {
	input := []interval.Interval{{Min: 25, Max: 30}, {Min: 2, Max: 19}, {Min: 14, Max: 23}, {Min: 4, Max: 8}}

	merged, err := interval.Merge(input)
	require.NoError(t, err)
	require.NoError(t, checkMerged(input, merged))

	// A result that kept an overlapping pair has to be flagged.
	err = checkMerged(input, input)
	require.Error(t, err)

	// Losing coverage has to be flagged too.
	err = checkMerged(input, []interval.Interval{{Min: 2, Max: 23}})
	require.Error(t, err)
}

func TestStress(t *testing.T) {
	var buf bytes.Buffer

	err := stress(&buf, 200, 4, 1)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.Contains(out, "200 collections in"), "missing summary in %q", out)
	require.True(t, strings.Contains(out, "merge latency: q50="), "missing quantiles in %q", out)
}

func TestStress_SingleWorker(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, stress(&buf, 50, 1, 99))
}
