package unsafer

import (
	"unsafe"
)

// SliceToBytes interprets an arbitrary input slice as a byte slice, ready to be
// handed to glBufferData. An empty input yields a nil slice.
//
// Note that the returned slice points to the same underlying data in memory. It
// does not make a copy.
func SliceToBytes[T any](input []T) []byte {
	if len(input) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(input[0])) * len(input)
	return unsafe.Slice((*byte)(unsafe.Pointer(&input[0])), size)
}
