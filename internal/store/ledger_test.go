package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cube-planet/internal/sims/planet"
)

func openTemp(t *testing.T) *Ledger {
	t.Helper()
	ledger, err := Open(filepath.Join(t.TempDir(), "runs", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	ledger := openTemp(t)

	params := planet.DefaultConfig().Params
	params.BaselineMaterial = planet.MaterialIgneous
	result := planet.RunResult{
		Seed:       7,
		Size:       8,
		Ticks:      12,
		Start:      planet.Totals{Water: 10},
		End:        planet.Totals{Water: 9, Gas: 0.5},
		PeakMolten: 3.25,
	}

	id, err := ledger.Record(ctx, "sweep", params, result)
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = ledger.Record(ctx, "other", params, planet.RunResult{Seed: 8, Err: "boom"})
	require.NoError(t, err)

	count, err := ledger.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	entries, err := ledger.List(ctx, "sweep")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	got := entries[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "sweep", got.Label)
	assert.Equal(t, planet.MaterialIgneous, got.Params.BaselineMaterial)
	assert.Equal(t, result.Seed, got.Result.Seed)
	assert.InDelta(t, 3.25, got.Result.PeakMolten, 1e-9)
	assert.InDelta(t, -0.5, got.Result.WaterBalance(), 1e-9)

	all, err := ledger.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBestSkipsFailedRuns(t *testing.T) {
	ctx := context.Background()
	ledger := openTemp(t)
	params := planet.DefaultConfig().Params

	runs := []planet.RunResult{
		{Seed: 1, Start: planet.Totals{Water: 10}, End: planet.Totals{Water: 4}},
		{Seed: 2, Start: planet.Totals{Water: 10}, End: planet.Totals{Water: 10.2}},
		{Seed: 3, Err: "aborted"},
	}
	for _, r := range runs {
		_, err := ledger.Record(ctx, "balance", params, r)
		require.NoError(t, err)
	}

	best, ok, err := ledger.Best(ctx, "balance")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), best.Result.Seed)

	_, ok, err = ledger.Best(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Record(context.Background(), "", planet.DefaultConfig().Params, planet.RunResult{Seed: 1})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()
	count, err := second.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
