package tetris

import "math/rand/v2"

// PieceSource decides which tetromino spawns next.
type PieceSource interface {
	// Next consumes and returns the next type.
	Next() Type
	// Peek returns the type Next would return without consuming it.
	Peek() Type
}

// BagSource deals pieces from shuffled bags of all seven types.
type BagSource struct {
	rng *rand.Rand
	bag []Type
}

// NewBagSource returns a 7-bag source. Equal seeds produce equal sequences.
func NewBagSource(seed uint64) *BagSource {
	return &BagSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *BagSource) refill() {
	b.bag = Types()
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})
}

func (b *BagSource) Next() Type {
	t := b.Peek()
	b.bag = b.bag[1:]
	return t
}

func (b *BagSource) Peek() Type {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

// SequenceSource repeats a fixed list of types. Useful for replays and tests.
type SequenceSource struct {
	types []Type
	pos   int
}

// NewSequenceSource panics if types is empty or holds an invalid type.
func NewSequenceSource(types ...Type) *SequenceSource {
	if len(types) == 0 {
		panic("tetris: empty piece sequence")
	}
	for _, t := range types {
		MustLookup(t)
	}
	return &SequenceSource{types: types}
}

func (s *SequenceSource) Next() Type {
	t := s.types[s.pos]
	s.pos = (s.pos + 1) % len(s.types)
	return t
}

func (s *SequenceSource) Peek() Type {
	return s.types[s.pos]
}
