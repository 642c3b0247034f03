// Package stego is the public surface of the 65,536-bit keyed
// permutation codeword codec (spec.md §6): EncodeToBits scatters a
// short payload into a fixed-size codeword robust to a lossy
// downscale/threshold/upscale round trip, and DecodeToBytes recovers
// the payload from a vector of per-slot probabilities produced by that
// round trip. Both collapse every failure to a nil return, mirroring
// how package crypt's Check collapses an unregistered hash prefix to a
// single sentinel at the boundary while its concrete hash packages
// keep typed errors internally (see codec for those).
package stego

import "github.com/sergeymakinen/go-stegocodec/codec"

// EncodeToBits encodes data under password into a 65,536-byte buffer,
// one byte per bit (0 or 1). Returns nil if len(data) exceeds 1023
// bytes.
func EncodeToBits(data []byte, password string) []byte {
	buf, err := codec.Encode(data, password)
	if err != nil {
		return nil
	}
	return buf
}

// DecodeToBytes recovers the payload password encoded into probs, a
// vector of exactly 65,536 real-valued probabilities. Returns nil if
// probs has the wrong length or decoding otherwise fails.
func DecodeToBytes(probs []float64, password string) []byte {
	data, err := codec.Decode(probs, password)
	if err != nil {
		return nil
	}
	return data
}
