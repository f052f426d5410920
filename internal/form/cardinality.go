package form

// UsableSize returns the number of index-aligned entries that can be built
// from a group's parallel lists: the length of the shortest list, or 0 when
// there are no lists or any list is empty.
func UsableSize[E any](lists ...[]E) int {
	if len(lists) == 0 {
		return 0
	}
	size := len(lists[0])
	for _, l := range lists[1:] {
		if len(l) < size {
			size = len(l)
		}
	}
	return size
}

// NeedsGrowth reports whether a group showing current instances must grow to
// hold a collection of size elements. Groups never shrink.
func NeedsGrowth(current, size int) bool {
	return size > current
}

// IsStale reports whether more instances are shown than can be committed.
func IsStale(current, usable int) bool {
	return current > usable
}
