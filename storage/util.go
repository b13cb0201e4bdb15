package storage

import "hash/maphash"

// storeSeed keeps Hash stable across stores within a process, which is all
// the Equals/Hash contract promises.
var storeSeed = maphash.MakeSeed()

func equalStores[V comparable](a, b IStore[V]) bool {
	if b == nil || a.Size() != b.Size() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

func hashStore[V comparable](s IStore[V]) uint64 {
	h := maphash.Comparable(storeSeed, s.Size())
	for i := 0; i < s.Size(); i++ {
		h = h*31 + maphash.Comparable(storeSeed, s.Get(i))
	}
	return h
}
