package main

import (
	"context"
	"math/rand/v2"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/session"
)

var policyCommands = []session.Command{
	session.MoveLeft,
	session.MoveRight,
	session.RotateCW,
	session.RotateCCW,
	session.Drop,
}

// autoplayer submits a random burst of commands before every tick.
type autoplayer struct {
	rng      *rand.Rand
	maxMoves int
}

func newAutoplayer(seed uint64, maxMoves int) *autoplayer {
	return &autoplayer{
		rng:      rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d)),
		maxMoves: maxMoves,
	}
}

func (a *autoplayer) submit(ctx context.Context, s *session.Session) error {
	n := a.rng.IntN(a.maxMoves + 1)
	for range n {
		if err := s.Submit(ctx, policyCommands[a.rng.IntN(len(policyCommands))]); err != nil {
			return err
		}
	}
	return nil
}

// histogram counts finished games by lines cleared.
type histogram struct {
	counts  *intmap.Map[int, int]
	maxKey  int
	samples int
}

func newHistogram() *histogram {
	return &histogram{counts: intmap.New[int, int](64)}
}

func (h *histogram) add(lines int) {
	n, _ := h.counts.Get(lines)
	h.counts.Put(lines, n+1)
	h.maxKey = max(h.maxKey, lines)
	h.samples++
}

type Bucket struct {
	Lines int
	Games int
}

// buckets returns the non-empty buckets in ascending order of lines.
func (h *histogram) buckets() []Bucket {
	var out []Bucket
	if h.samples == 0 {
		return out
	}
	for lines := 0; lines <= h.maxKey; lines++ {
		if n, ok := h.counts.Get(lines); ok {
			out = append(out, Bucket{Lines: lines, Games: n})
		}
	}
	return out
}
