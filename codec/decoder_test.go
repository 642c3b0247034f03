package codec

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sergeymakinen/go-stegocodec/internal/slotset"
)

// newFakeState builds a decodeState whose free-slot list visits
// probs[0], probs[1], ... in order, for exercising decodeBit in
// isolation from the permutation and framing layers.
func newFakeState(t *testing.T, probs []float64) *decodeState {
	t.Helper()
	ids := make([]uint16, len(probs))
	for i := range ids {
		ids[i] = uint16(i)
	}
	return &decodeState{
		probs:    probs,
		cursor:   slotset.New(ids).Cursor(),
		occupied: make(map[uint16]struct{}),
	}
}

func TestDecodeSurvivesSparseBitFlips(t *testing.T) {
	data := make([]byte, MaxPayloadLen)
	for i := range data {
		data[i] = 0xFF
	}
	buf, err := Encode(data, "password")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	floats := toFloats(buf)
	rng := rand.New(rand.NewSource(1))
	flips := len(floats) / 100 // up to 1% of slots
	for i := 0; i < flips; i++ {
		idx := rng.Intn(len(floats))
		if floats[idx] > 0 {
			floats[idx] = 0
		} else {
			floats[idx] = 1
		}
	}

	got, err := Decode(floats, "password")
	if err != nil {
		t.Fatalf("Decode() error after bit flips = %v", err)
	}
	if !cmp.Equal(got, data) {
		t.Errorf("Decode() after flipping %d slots did not recover the original payload", flips)
	}
}

func TestModeBreaksTiesBySmallestKey(t *testing.T) {
	counts := map[uint16]int{5: 3, 2: 3, 9: 1}
	value, count := mode(counts)
	if value != 2 || count != 3 {
		t.Errorf("mode(%v) = (%d, %d); want (2, 3)", counts, value, count)
	}
}

func TestModeEmpty(t *testing.T) {
	value, count := mode(map[uint16]int{})
	if value != 0 || count != 0 {
		t.Errorf("mode(empty) = (%d, %d); want (0, 0)", value, count)
	}
}

func TestDecodeBitMajority(t *testing.T) {
	probs := []float64{1, 1, 1, 1, 1, 1, 1, -1, -1}
	s := newFakeState(t, probs)
	bit, consumed := s.decodeBit(len(probs), true)
	if bit != 1 || consumed != len(probs) {
		t.Errorf("decodeBit() = (%d, %d); want (1, %d)", bit, consumed, len(probs))
	}
}

func TestDecodeBitSigmoidFallback(t *testing.T) {
	// 4 vs 5 out of 9 is short of the 0.7 majority threshold, so the
	// sigmoid-mean fallback decides. All raw values are 0 or 1, whose
	// sigmoids both exceed 0.5 on average, biasing the fallback to 1.
	probs := []float64{1, 1, 1, 1, 0, 0, 0, 0, 0}
	s := newFakeState(t, probs)
	bit, consumed := s.decodeBit(len(probs), true)
	if consumed != len(probs) {
		t.Fatalf("decodeBit() consumed = %d; want %d", consumed, len(probs))
	}
	if bit != 1 {
		t.Errorf("decodeBit() = %d; want 1 (sigmoid bias)", bit)
	}
}

func TestDecodeBitExhaustion(t *testing.T) {
	probs := []float64{1, 1}
	s := newFakeState(t, probs)
	_, consumed := s.decodeBit(5, false)
	if consumed != 2 {
		t.Errorf("decodeBit() consumed = %d; want 2", consumed)
	}
}
