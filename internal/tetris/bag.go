package tetris

import "math/rand"

// Bag is the 7-bag randomizer: a queue of upcoming kinds refilled with a
// shuffled set of all seven kinds whenever it runs empty.
//
// The queue is consumed from its end. Pop refills as soon as the last kind
// is taken, so Peek always has a kind to show.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a filled bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		rng:   rng,
		queue: make([]Kind, 0, NumKinds),
	}
	b.refill()
	return b
}

// refill appends one of each kind in a uniformly random order.
func (b *Bag) refill() {
	set := [NumKinds]Kind{I, O, J, L, S, Z, T}
	b.rng.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})
	b.queue = append(b.queue, set[:]...)
}

// Pop removes and returns the next kind.
func (b *Bag) Pop() Kind {
	last := len(b.queue) - 1
	k := b.queue[last]
	b.queue = b.queue[:last]
	if len(b.queue) == 0 {
		b.refill()
	}
	return k
}

// Peek returns the next kind without consuming it.
func (b *Bag) Peek() Kind {
	return b.queue[len(b.queue)-1]
}

// Len returns how many kinds remain before the next refill.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Reset discards the remaining kinds and starts a fresh bag.
func (b *Bag) Reset() {
	b.queue = b.queue[:0]
	b.refill()
}
