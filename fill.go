package hstring

import "unsafe"

// fill sets every byte of b to c, doubling the initialized prefix each round.
func fill(b []byte, c byte) {
	l := len(b)
	if l == 0 {
		return
	}
	b[0] = c
	for j := 1; j < l; j *= 2 {
		copy(b[j:], b[:j])
	}
}

// aliasOffset returns the offset of b inside buf, or -1 when b does not lie
// entirely within buf.
func aliasOffset(buf, b []byte) int {
	if len(b) == 0 || len(buf) == 0 {
		return -1
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if p < start || p+uintptr(len(b)) > start+uintptr(len(buf)) {
		return -1
	}
	return int(p - start)
}
