package piece

import "math/rand/v2"

// Bag hands out tetrominoes in shuffled sets of seven, so every kind shows
// up exactly once per set.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag returns a bag whose order is fully determined by seed.
func NewBag(seed uint64) *Bag {
	return &Bag{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *Bag) refill() {
	set := make([]Kind, len(Kinds))
	copy(set, Kinds)
	b.rng.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})
	b.queue = append(b.queue, set...)
}

// Next removes and returns the next tetromino.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// Peek returns the tetromino Next will return without consuming it.
func (b *Bag) Peek() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	return b.queue[0]
}
