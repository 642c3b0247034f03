// Package permute derives the deterministic, password-keyed
// permutation of [0, 65536) described in spec.md §4.1: a stable
// non-cryptographic hash of the password is combined with a shift
// index into a 32-bit seed, which drives an MT19937-seeded
// Fisher-Yates shuffle of the identity sequence.
package permute

import (
	"github.com/spaolacci/murmur3"
)

// Size is the domain and range of every permutation this package
// produces: one slot per bit of a 65,536-bit codeword.
const Size = 65536

// Seed reduces password and shift to the 32-bit seed that drives the
// MT19937 engine backing New. It mirrors the original codec's
// `hasher(password) + shift`, truncated to 32 bits, substituting a
// named, versioned hash (murmur3) for C++'s implementation-defined
// std::hash<std::string> (see DESIGN.md).
func Seed(password string, shift byte) uint32 {
	h := murmur3.Sum32([]byte(password))
	return h + uint32(shift)
}

// New builds the permutation O[shift] of [0, Size) keyed by
// (password, shift): seed an MT19937 generator from Seed, then
// Fisher-Yates shuffle the identity sequence from the last index down
// to 1, drawing each swap partner from [0, i].
func New(password string, shift byte) []uint16 {
	o := make([]uint16, Size)
	for i := range o {
		o[i] = uint16(i)
	}
	rng := newMT19937(Seed(password, shift))
	for i := Size - 1; i > 0; i-- {
		j := rng.uniform(uint32(i))
		o[i], o[j] = o[j], o[i]
	}
	return o
}
