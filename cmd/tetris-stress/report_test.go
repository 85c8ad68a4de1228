package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestHistogram(t *testing.T) {
	h := newHistogram()
	assert.Empty(t, h.buckets())

	for _, lines := range []int{3, 0, 3, 12} {
		h.add(lines)
	}
	assert.Equal(t, []Bucket{{0, 1}, {3, 2}, {12, 1}}, h.buckets())
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:       time.Second,
		Seed:           9,
		Width:          10,
		Height:         20,
		MaxMoves:       4,
		TotalUpdates:   12345,
		LinesHistogram: []Bucket{{Lines: 2, Games: 5}},
		Commands:       []session.CommandStats{{Command: session.Drop, ExecutionCount: 7, Applied: 7}},
	}
	r.recordGame(session.State{Score: 1200, Lines: 4})
	r.recordGame(session.State{Score: 300, Lines: 1})
	r.MemStatsEnd.HeapAlloc = 2048

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Board:** 10x20")
	assert.Contains(t, out, "**Total Updates:** 12,345")
	assert.Contains(t, out, "**Finished Games:** 2")
	assert.Contains(t, out, "**Best Score:** 1,200")
	assert.Contains(t, out, "**Total Lines:** 5")
	assert.Contains(t, out, "| 2 | 5 |")
	assert.Contains(t, out, "| Drop | 7 | 7 | 0 |")
	assert.Contains(t, out, "delta: +2.0 kB")
	assert.NotContains(t, out, "GC Pause Durations")
}

func TestAutoplayerFinishesGames(t *testing.T) {
	sess, err := session.New(func() (*tetris.Game, error) {
		return tetris.NewGame(6, 8, tetris.WithSource(tetris.NewBagSource(3)))
	}, session.WithQueueSize(5))
	require.NoError(t, err)
	defer sess.Stop()

	player := newAutoplayer(3, 4)
	ctx := context.Background()

	games := 0
	for range 5000 {
		require.NoError(t, player.submit(ctx, sess))
		sess.Tick()
		if sess.State().Over {
			games++
			sess.Apply(session.Restart)
		}
	}

	assert.Positive(t, games)
	assert.Positive(t, sess.Stats().For(session.Drop).ExecutionCount)
}
