package metrics_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiepath/internal/metrics"
	"github.com/katalvlaran/tiepath/tiepath"
)

func TestObserve_Solved(t *testing.T) {
	r := metrics.NewRecorder()
	res := tiepath.Result{MinCost: 7036, Tiles: 45, Stats: tiepath.Stats{Settled: 300, Ties: 4, Pushed: 500}}
	r.Observe(res, nil, 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SolvesTotal.WithLabelValues(metrics.OutcomeSolved)))
	assert.Equal(t, 300.0, testutil.ToFloat64(r.StatesSettled))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.TiesCaptured))
	assert.Equal(t, 500.0, testutil.ToFloat64(r.FrontierPushes))
	assert.Equal(t, 45.0, testutil.ToFloat64(r.OptimalTiles))
	assert.Equal(t, 7036.0, testutil.ToFloat64(r.MinCost))
}

func TestObserve_Failures(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(tiepath.Result{}, fmt.Errorf("%w: goal", tiepath.ErrNoPath), time.Millisecond)
	r.Observe(tiepath.Result{}, errors.New("boom"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SolvesTotal.WithLabelValues(metrics.OutcomeNoPath)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SolvesTotal.WithLabelValues(metrics.OutcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.StatesSettled))
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(tiepath.Result{MinCost: 5, Tiles: 6}, nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "tiepath.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)
	assert.True(t, strings.Contains(body, "tiepath_optimal_tiles 6"), body)
	assert.Contains(t, body, `tiepath_solves_total{outcome="solved"} 1`)

	n, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
