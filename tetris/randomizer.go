package tetris

import "math/rand/v2"

// Randomizer supplies the sequence of kinds that will spawn.
type Randomizer interface {
	Next() Kind
}

type uniformRandomizer struct {
	rng *rand.Rand
}

// NewRandom returns a randomizer that picks each kind with equal probability.
func NewRandom(seed uint64) Randomizer {
	return &uniformRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *uniformRandomizer) Next() Kind {
	return Kinds[r.rng.IntN(KindCount)]
}

type bagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBag returns a randomizer that deals all seven kinds in shuffled order
// before reshuffling.
func NewBag(seed uint64) Randomizer {
	return &bagRandomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *bagRandomizer) Next() Kind {
	if len(r.bag) == 0 {
		r.bag = append(r.bag[:0], Kinds[:]...)
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	k := r.bag[0]
	r.bag = r.bag[1:]
	return k
}

type sequenceRandomizer struct {
	kinds []Kind
	next  int
}

// NewSequence returns a randomizer that cycles through kinds in order.
// It panics if kinds is empty.
func NewSequence(kinds ...Kind) Randomizer {
	if len(kinds) == 0 {
		panic("tetris: sequence randomizer needs at least one kind")
	}
	return &sequenceRandomizer{kinds: kinds}
}

func (r *sequenceRandomizer) Next() Kind {
	k := r.kinds[r.next]
	r.next = (r.next + 1) % len(r.kinds)
	return k
}
