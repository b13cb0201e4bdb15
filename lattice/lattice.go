package lattice

import "errors"

var ErrInvalidBound = errors.New("bound outside lattice")

// EquRel is an equivalence relation over V.
type EquRel[V comparable] func(a, b V) bool

// ILattice is a partially ordered value space with greatest-lower-bound and
// least-upper-bound operations. Implementations must keep Equality consistent
// with Go value equality when they are used to back equatable structures.
type ILattice[V comparable] interface {
	Top() V
	Bottom() V
	IsBoundedAbove() bool
	IsBoundedBelow() bool

	// Meet is the greatest lower bound of a and b.
	Meet(a, b V) V
	// Join is the least upper bound of a and b.
	Join(a, b V) V

	Contains(v V) bool
	// IsOrdered reports a <= b in the lattice order.
	IsOrdered(a, b V) bool
	Equality() EquRel[V]

	// BoundedAbove derives the sub-lattice capped at u. The receiver itself
	// is returned when the cap does not narrow it, including a cap above the
	// top. Fails with ErrInvalidBound when u lies below the bottom.
	BoundedAbove(u V) (ILattice[V], error)

	Equals(other ILattice[V]) bool
}
