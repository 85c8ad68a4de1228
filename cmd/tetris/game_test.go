package main

import (
	"context"
	"testing"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWindowSize(t *testing.T) {
	w, h := windowSize(10, 20, 30)
	assert.Equal(t, 40*2+300+panelWidth, w)
	assert.Equal(t, 40*2+600, h)
}

func TestCellColor(t *testing.T) {
	for _, typ := range tetris.Types() {
		assert.Equal(t, uint8(255), cellColor(typ).A, typ.String())
	}
	assert.Panics(t, func() { cellColor(tetris.Empty) })
}

func TestSubmitAfterGameOver(t *testing.T) {
	calls := 0
	sess, err := session.New(func() (*tetris.Game, error) {
		calls++
		if calls == 1 {
			return tetris.NewGame(1, 1)
		}
		return tetris.NewGame(10, 20, tetris.WithSource(tetris.NewSequenceSource(tetris.O)))
	}, session.WithQueueSize(4))
	require.NoError(t, err)
	defer sess.Stop()
	require.True(t, sess.State().Over)

	g := &Game{ctx: context.Background(), session: sess, logger: zap.NewNop().Sugar()}

	cmds := make([]session.Command, 100)
	for i := range cmds {
		cmds[i] = session.MoveLeft
	}
	g.submit(cmds)

	require.True(t, sess.Apply(session.Restart))
	sess.Tick()

	st := sess.State()
	assert.Equal(t, 4, st.Active.X)
	assert.Equal(t, 1, st.Active.Y)
	assert.Zero(t, sess.Stats().For(session.MoveLeft).ExecutionCount)
}
