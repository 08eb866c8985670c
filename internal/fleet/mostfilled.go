package fleet

// MostFilled resolves the "most filled" representative for one instance
// type from its empty-slot histogram (empty-slot count -> host count).
//
// Most filled means the smallest number of empty slots that is still
// greater than zero: completely full hosts (key 0) have no room and are
// excluded. The result is (host count at that key, that key).
//
// When no key is greater than zero, either because every host of the type
// is full or because the type has no hosts at all, the result is (0, 0).
// That pair is a defined sentinel, not an error.
func MostFilled(histogram map[int]int) (hostCount, emptySlots int) {
	min := 0
	for k := range histogram {
		if k <= 0 {
			continue
		}
		if min == 0 || k < min {
			min = k
		}
	}
	if min == 0 {
		return 0, 0
	}
	return histogram[min], min
}
