package go_bloom

import "fmt"

// Pairwise compatibility assertions. Operations consuming a second structure
// call these before touching any state, so failed calls leave both sides
// unchanged.

func checkCompatibleSets[E any](a, b IBloomSet[E]) error {
	if b == nil {
		return fmt.Errorf("%w: nil set", ErrInvalidArgument)
	}
	return checkCompatibleConfigs(a.Config(), b.Config())
}

func checkCompatibleMaps[K any, V comparable](a, b IBloomMap[K, V]) error {
	if b == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidArgument)
	}
	if err := checkCompatibleConfigs(a.Config(), b.Config()); err != nil {
		return err
	}
	if !a.Lattice().Equals(b.Lattice()) {
		return fmt.Errorf("%w: incompatible map, lattices were not equal", ErrInvalidArgument)
	}
	return nil
}

func checkCompatibleConfigs[E any](ac, bc *BloomConfig[E]) error {
	if ac.HashCount() != bc.HashCount() {
		return fmt.Errorf("%w: incompatible hashCount %d, expected %d", ErrInvalidArgument, bc.HashCount(), ac.HashCount())
	}
	if !ac.Hasher().Equals(bc.Hasher()) {
		return fmt.Errorf("%w: incompatible set, hashers were not equal", ErrInvalidArgument)
	}
	return nil
}
