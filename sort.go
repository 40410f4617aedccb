package ksuid

import (
	"bytes"
	"slices"
)

// Compare orders ids by their 160-bit value, which is also their
// generation order.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Sort sorts ids in ascending generation order.
func Sort(ids []ID) {
	slices.SortFunc(ids, ID.Compare)
}

// IsSorted reports whether ids are in ascending generation order.
func IsSorted(ids []ID) bool {
	return slices.IsSortedFunc(ids, ID.Compare)
}

// Next returns the id one value above, wrapping from Max to Min.
// Useful as an exclusive range boundary.
func (id ID) Next() ID {
	for i := ByteLength - 1; i >= 0; i-- {
		id[i]++
		if id[i] != 0 {
			break
		}
	}
	return id
}

// Prev returns the id one value below, wrapping from Min to Max.
func (id ID) Prev() ID {
	for i := ByteLength - 1; i >= 0; i-- {
		id[i]--
		if id[i] != 0xFF {
			break
		}
	}
	return id
}
