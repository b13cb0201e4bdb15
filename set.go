package go_bloom

import (
	"fmt"
	"math"

	"github.com/datnguyenzzz/nogodb/lib/go-bloom/bits"
)

// bloomSet pairs a config with the bit store it owns. Derived sets (the
// implication set of BoundedBy, the keys projection of a map) reuse this type
// over a read-only reader store, which makes every query operation available
// on them while mutations fail with ErrImmutable.
type bloomSet[E any] struct {
	config     *BloomConfig[E]
	bits       bits.IBitStore
	publicBits bits.IBitStore
}

func newBloomSet[E any](bs bits.IBitStore, config *BloomConfig[E]) *bloomSet[E] {
	return &bloomSet[E]{config: config, bits: bs, publicBits: bs.ImmutableView()}
}

func (s *bloomSet[E]) Config() *BloomConfig[E] {
	return s.config
}

func (s *bloomSet[E]) Bits() bits.IBitStore {
	return s.publicBits
}

func (s *bloomSet[E]) MightContain(e E) bool {
	return mightContain(s.config, s.bits, e)
}

func (s *bloomSet[E]) MightContainAll(elems []E) bool {
	return mightContainAll(s.config, s.bits, elems)
}

func (s *bloomSet[E]) Add(e E) (bool, error) {
	if !s.IsMutable() {
		return false, fmt.Errorf("%w: add", ErrImmutable)
	}
	code := s.config.Hasher().Hash(e)
	mutated := false
	for i := 0; i < s.config.HashCount(); i++ {
		prev, err := s.bits.GetThenSetBit(code.IntValue(), true)
		if err != nil {
			return false, err
		}
		if !prev {
			mutated = true
		}
	}
	return mutated, nil
}

func (s *bloomSet[E]) AddAll(elems []E) (bool, error) {
	if elems == nil {
		return false, fmt.Errorf("%w: nil elements", ErrInvalidArgument)
	}
	if !s.IsMutable() {
		return false, fmt.Errorf("%w: add all", ErrImmutable)
	}
	mutated := false
	for _, e := range elems {
		changed, err := s.Add(e)
		if err != nil {
			return mutated, err
		}
		if changed {
			mutated = true
		}
	}
	return mutated, nil
}

func (s *bloomSet[E]) AddAllSet(other IBloomSet[E]) (bool, error) {
	if err := checkCompatibleSets[E](s, other); err != nil {
		return false, err
	}
	if !s.IsMutable() {
		return false, fmt.Errorf("%w: add all", ErrImmutable)
	}
	if s.bits.Contains(other.Bits()) {
		return false, nil
	}
	if err := s.bits.OrWith(other.Bits()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *bloomSet[E]) Clear() error {
	if !s.IsMutable() {
		return fmt.Errorf("%w: clear", ErrImmutable)
	}
	return s.bits.ClearWithZeros()
}

func (s *bloomSet[E]) IsEmpty() bool {
	return s.bits.IsAllZeros()
}

func (s *bloomSet[E]) IsFull() bool {
	return s.bits.IsAllOnes()
}

func (s *bloomSet[E]) ContainsAll(other IBloomSet[E]) (bool, error) {
	if err := checkCompatibleSets[E](s, other); err != nil {
		return false, err
	}
	return s.bits.Contains(other.Bits()), nil
}

func (s *bloomSet[E]) BoundedBy(other IBloomSet[E]) (IBloomSet[E], error) {
	if err := checkCompatibleSets[E](s, other); err != nil {
		return nil, err
	}
	return boundedBy[E](s.config, s.bits, other.Bits()), nil
}

func (s *bloomSet[E]) FalsePositiveProbability() float64 {
	return falsePositiveProbability(s.config, s.bits)
}

func (s *bloomSet[E]) IsMutable() bool {
	return s.bits.IsMutable()
}

func (s *bloomSet[E]) ImmutableView() IBloomSet[E] {
	return newBloomSet(s.bits.ImmutableView(), s.config)
}

func (s *bloomSet[E]) ImmutableCopy() IBloomSet[E] {
	return newBloomSet(s.bits.ImmutableCopy(), s.config)
}

func (s *bloomSet[E]) MutableCopy() IBloomSet[E] {
	return newBloomSet(s.bits.MutableCopy(), s.config)
}

func (s *bloomSet[E]) Equals(other IBloomSet[E]) bool {
	return equalSets[E](s, other)
}

func (s *bloomSet[E]) Hash() uint64 {
	return s.bits.Hash()
}

var _ IBloomSet[int] = (*bloomSet[int])(nil)

// Shared query core, keyed off a config and a bit store so the map
// projections implement identical semantics over their derived bits.

func mightContain[E any](config *BloomConfig[E], bs bits.IBitStore, e E) bool {
	code := config.Hasher().Hash(e)
	for i := 0; i < config.HashCount(); i++ {
		if !bs.GetBit(code.IntValue()) {
			return false
		}
	}
	return true
}

func mightContainAll[E any](config *BloomConfig[E], bs bits.IBitStore, elems []E) bool {
	for _, e := range elems {
		if !mightContain(config, bs, e) {
			return false
		}
	}
	return true
}

func falsePositiveProbability[E any](config *BloomConfig[E], bs bits.IBitStore) float64 {
	return math.Pow(float64(bs.OnesCount())/float64(bs.Size()), float64(config.HashCount()))
}

// boundedBy builds the live implication set: bit i holds iff a bit set here
// is also set there.
func boundedBy[E any](config *BloomConfig[E], these, those bits.IBitStore) IBloomSet[E] {
	derived := bits.NewReader(these.Size(), func(i int) bool {
		return !these.GetBit(i) || those.GetBit(i)
	})
	return &bloomSet[E]{config: config, bits: derived, publicBits: derived}
}

func equalSets[E any](a, b IBloomSet[E]) bool {
	if b == nil {
		return false
	}
	if !a.Config().Equals(b.Config()) {
		return false
	}
	return a.Bits().Equals(b.Bits())
}
