package lattice

import (
	"cmp"
	"fmt"
)

// ordered is the total order [bottom, top] with min as meet and max as join.
type ordered[V cmp.Ordered] struct {
	top    V
	bottom V
}

// NewOrdered builds the totally ordered lattice over [bottom, top].
func NewOrdered[V cmp.Ordered](top, bottom V) (ILattice[V], error) {
	if top < bottom {
		return nil, fmt.Errorf("%w: top %v below bottom %v", ErrInvalidBound, top, bottom)
	}
	return &ordered[V]{top: top, bottom: bottom}, nil
}

func (l *ordered[V]) Top() V {
	return l.top
}

func (l *ordered[V]) Bottom() V {
	return l.bottom
}

func (l *ordered[V]) IsBoundedAbove() bool {
	return true
}

func (l *ordered[V]) IsBoundedBelow() bool {
	return true
}

func (l *ordered[V]) Meet(a, b V) V {
	return min(a, b)
}

func (l *ordered[V]) Join(a, b V) V {
	return max(a, b)
}

func (l *ordered[V]) Contains(v V) bool {
	return l.bottom <= v && v <= l.top
}

func (l *ordered[V]) IsOrdered(a, b V) bool {
	return a <= b
}

func (l *ordered[V]) Equality() EquRel[V] {
	return func(a, b V) bool { return a == b }
}

func (l *ordered[V]) BoundedAbove(u V) (ILattice[V], error) {
	if u >= l.top {
		return l, nil
	}
	if u < l.bottom {
		return nil, fmt.Errorf("%w: upper bound %v below bottom %v", ErrInvalidBound, u, l.bottom)
	}
	return &ordered[V]{top: u, bottom: l.bottom}, nil
}

func (l *ordered[V]) Equals(other ILattice[V]) bool {
	o, ok := other.(*ordered[V])
	return ok && l.top == o.top && l.bottom == o.bottom
}

func (l *ordered[V]) String() string {
	return fmt.Sprintf("[%v, %v]", l.bottom, l.top)
}

var _ ILattice[int] = (*ordered[int])(nil)
