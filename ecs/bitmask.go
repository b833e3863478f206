package ecs

import "math/bits"

// bitmask256 represents a set of up to 256 type indices. Each bit corresponds
// to a registered component (or tag) type; a set bit means the type is present.
type bitmask256 [4]uint64

// with returns a copy of the mask with the given bit enabled.
func (m bitmask256) with(bit uint8) bitmask256 {
	m[bit>>6] |= uint64(1) << (bit & 63)
	return m
}

// without returns a copy of the mask with the given bit cleared.
func (m bitmask256) without(bit uint8) bitmask256 {
	m[bit>>6] &^= uint64(1) << (bit & 63)
	return m
}

// has checks if a specific bit is set in the mask.
func (m bitmask256) has(bit uint8) bool {
	return m[bit>>6]&(uint64(1)<<(bit&63)) != 0
}

// contains checks if all the bits set in sub are also set in m.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// intersects checks if m has any bit in common with o.
func (m bitmask256) intersects(o bitmask256) bool {
	return (m[0]&o[0])|(m[1]&o[1])|(m[2]&o[2])|(m[3]&o[3]) != 0
}

func (m bitmask256) or(o bitmask256) bitmask256 {
	return bitmask256{m[0] | o[0], m[1] | o[1], m[2] | o[2], m[3] | o[3]}
}

func (m bitmask256) and(o bitmask256) bitmask256 {
	return bitmask256{m[0] & o[0], m[1] & o[1], m[2] & o[2], m[3] & o[3]}
}

func (m bitmask256) andNot(o bitmask256) bitmask256 {
	return bitmask256{m[0] &^ o[0], m[1] &^ o[1], m[2] &^ o[2], m[3] &^ o[3]}
}

func (m bitmask256) isZero() bool {
	return m[0]|m[1]|m[2]|m[3] == 0
}

// count returns the number of set bits.
func (m bitmask256) count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

// rank returns the number of set bits strictly below bit. For a bit that is
// set, this is its position in the ascending enumeration of the mask.
func (m bitmask256) rank(bit uint8) int {
	word := int(bit >> 6)
	n := 0
	for i := 0; i < word; i++ {
		n += bits.OnesCount64(m[i])
	}
	return n + bits.OnesCount64(m[word]&(uint64(1)<<(bit&63)-1))
}

// each calls fn for every set bit in ascending order until fn returns false.
func (m bitmask256) each(fn func(bit uint8) bool) {
	for word := 0; word < len(m); word++ {
		w := m[word]
		for w != 0 {
			offset := bits.TrailingZeros64(w)
			if !fn(uint8(word<<6 | offset)) {
				return
			}
			w &= w - 1
		}
	}
}
