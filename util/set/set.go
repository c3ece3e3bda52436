package set

// Set of comparable elements. Read operations are nil-safe
type Set[K comparable] map[K]struct{}

func New[K comparable](elems ...K) Set[K] {
	ret := make(Set[K], len(elems))
	for _, el := range elems {
		ret[el] = struct{}{}
	}
	return ret
}

// Insert adds elements and returns number of elements which were not in the set before
func (s Set[K]) Insert(elems ...K) int {
	added := 0
	for _, el := range elems {
		if _, already := s[el]; !already {
			s[el] = struct{}{}
			added++
		}
	}
	return added
}

func (s Set[K]) Remove(elems ...K) {
	for _, el := range elems {
		delete(s, el)
	}
}

func (s Set[K]) Contains(el K) bool {
	_, contains := s[el]
	return contains
}
