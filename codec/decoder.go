package codec

import (
	"math"
	"sort"

	"github.com/sergeymakinen/go-stegocodec/internal/bitfield"
	"github.com/sergeymakinen/go-stegocodec/internal/permute"
	"github.com/sergeymakinen/go-stegocodec/internal/slotset"
)

// decodeState tracks the active free-slot cursor and the occupied-slot
// set accumulated while reading the header and shift fields, matching
// the mutable reader state the original codec's decode closure holds
// over decode_bit calls.
type decodeState struct {
	probs    []float64
	cursor   *slotset.Cursor
	occupied map[uint16]struct{}
}

// decodeBit implements spec.md §4.7's soft-decision bit reader: consume
// up to n slots from the active cursor, take a majority vote if one
// side reaches majorityThreshold of the votes, otherwise fall back to
// the mean of sigmoid(prob) compared against 0.5. consumed reports how
// many slots were actually available, which is less than n only when
// the free-slot list ran out.
func (d *decodeState) decodeBit(n int, record bool) (bit byte, consumed int) {
	ones, zeros := 0, 0
	var sum float64
	for consumed = 0; consumed < n && !d.cursor.Done(); consumed++ {
		slot := d.cursor.Value()
		if record {
			d.occupied[slot] = struct{}{}
		}
		prob := d.probs[slot]
		if prob > 0 {
			ones++
		} else {
			zeros++
		}
		sum += sigmoid(prob)
		d.cursor.Next()
	}
	if consumed == 0 {
		return 0, 0
	}
	threshold := int(math.Ceil(majorityThreshold * float64(consumed)))
	if ones >= threshold {
		return 1, consumed
	}
	if zeros >= threshold {
		return 0, consumed
	}
	if sum/float64(consumed) > 0.5 {
		return 1, consumed
	}
	return 0, consumed
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Decode implements spec.md §4.7: recover the payload length
// adaptively, recover the shift index by majority vote, then read the
// payload from the shift-selected permutation with the recovered
// repeat count. Returns ErrProbeSize, ErrLengthDivergence,
// ErrShiftDisagreement, or ErrSlotsExhausted on failure.
func Decode(probs []float64, password string) ([]byte, error) {
	if len(probs) != CodewordBits {
		return nil, ErrProbeSize
	}

	o0 := permute.New(password, 0)
	state := &decodeState{
		probs:    probs,
		cursor:   slotset.New(o0).Cursor(),
		occupied: make(map[uint16]struct{}),
	}

	length, rHdr, err := decodeLength(state)
	if err != nil {
		return nil, err
	}

	shift, err := decodeShift(state, rHdr)
	if err != nil {
		return nil, err
	}

	payloadOrder := permute.New(password, byte(shift+1))
	free := slotset.New(payloadOrder)
	slotset.RemoveSet(free, state.occupied)
	state.cursor = free.Cursor()

	payload := make([]byte, length)
	for b := 0; b < length; b++ {
		bits := make([]byte, 8)
		for j := 0; j < 8; j++ {
			bit, consumed := state.decodeBit(rHdr, false)
			if consumed < rHdr {
				return nil, ErrSlotsExhausted
			}
			bits[j] = bit
		}
		payload[b] = bitfield.BitsToByte(bits)
	}
	return payload, nil
}

// decodeLength implements spec.md §4.7 step 2: read 10-bit length
// values with a growing repeat count until a repeated value (or the
// derived repeat count for the mode) stabilizes. Returns the recovered
// length and the repeat count R it implies.
func decodeLength(state *decodeState) (length int, r int, err error) {
	rHdr := initialHeaderRepeat
	counts := make(map[uint16]int)
	var modeLen uint16
	var modeCount int

	for i := 0; i < rHdr; i++ {
		bits := make([]byte, lengthFieldBits)
		for p := 0; p < lengthFieldBits; p++ {
			bit, _ := state.decodeBit(innerRepeat, true)
			bits[p] = bit
		}
		v := bitfield.BitsToU10(bits)
		counts[v]++

		if i > 5 {
			modeLen, modeCount = mode(counts)
			if modeCount == 1 {
				rHdr++
			} else {
				rHdr = repeatCount(int(modeLen))
			}
			if rHdr > maxHeaderRepeat || rHdr <= i {
				return 0, 0, ErrLengthDivergence
			}
		}
	}
	return int(modeLen), rHdr, nil
}

// decodeShift implements spec.md §4.7 steps 3-4: read r 3-bit shift
// candidates and adopt the most common one, failing if it was not
// read at least minShiftAgreement times.
func decodeShift(state *decodeState, r int) (int, error) {
	counts := make(map[uint16]int)
	for i := 0; i < r; i++ {
		bits := make([]byte, shiftFieldBits)
		for p := 0; p < shiftFieldBits; p++ {
			bit, _ := state.decodeBit(innerRepeat, true)
			bits[p] = bit
		}
		counts[bitfield.BitsToU3(bits)]++
	}
	shift, count := mode(counts)
	if count < minShiftAgreement {
		return 0, ErrShiftDisagreement
	}
	return int(shift), nil
}

// mode returns the most frequent key in counts, breaking ties by the
// smallest key so the result is deterministic regardless of Go's
// randomized map iteration order.
func mode(counts map[uint16]int) (value uint16, count int) {
	keys := make([]uint16, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if counts[k] > count {
			value, count = k, counts[k]
		}
	}
	return value, count
}
