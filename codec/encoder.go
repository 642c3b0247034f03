package codec

import (
	"golang.org/x/sync/errgroup"

	"github.com/sergeymakinen/go-stegocodec/internal/bitfield"
	"github.com/sergeymakinen/go-stegocodec/internal/permute"
	"github.com/sergeymakinen/go-stegocodec/internal/slotset"
	"github.com/sergeymakinen/go-stegocodec/raster"
)

// candidate is one of the 8 shift-indexed codewords the encoder scores
// before picking a winner.
type candidate struct {
	buf   []byte
	score float64
}

// Encode implements spec.md §4.6: lay the length field, shift field,
// and payload into a 65,536-slot buffer under permutations keyed by
// password, search the 8 possible shift indices, and return the
// highest-scoring buffer. Returns ErrPayloadTooLarge if len(data)
// exceeds MaxPayloadLen.
func Encode(data []byte, password string) ([]byte, error) {
	if len(data) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}

	l := len(data)
	r := repeatCount(l)

	o0 := permute.New(password, 0)

	header := repeatBits(bitfield.U10ToBits(uint16(l)), r)
	base := make([]byte, CodewordBits)
	occupied := make(map[uint16]struct{}, len(header)*innerRepeat)

	writeRepeated(base, o0, header, 0, occupied)

	payloadBits := bitfield.BytesToBits(data)
	headerSlots := 90 * r

	candidates := make([]candidate, shiftCandidates)
	var g errgroup.Group
	for s := 0; s < shiftCandidates; s++ {
		s := s
		g.Go(func() error {
			buf := append([]byte(nil), base...)
			localOccupied := make(map[uint16]struct{}, len(occupied)+3*r*innerRepeat)
			for id := range occupied {
				localOccupied[id] = struct{}{}
			}

			shiftBits := repeatBits(bitfield.U3ToBits(byte(s)), r)
			writeRepeated(buf, o0, shiftBits, headerSlots, localOccupied)

			payloadOrder := permute.New(password, byte(s+1))
			free := slotset.New(payloadOrder)
			slotset.RemoveSet(free, localOccupied)

			cur := free.Cursor()
			for _, bit := range payloadBits {
				for k := 0; k < r && !cur.Done(); k++ {
					buf[cur.Value()] = bit
					cur.Next()
				}
				if cur.Done() {
					break
				}
			}

			floats := make([]float64, len(buf))
			for i, b := range buf {
				floats[i] = float64(b)
			}
			score, err := raster.RobustnessScore(floats)
			if err != nil {
				return err
			}
			candidates[s] = candidate{buf: buf, score: score}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for s := 1; s < shiftCandidates; s++ {
		if candidates[s].score > candidates[best].score {
			best = s
		}
	}
	return candidates[best].buf, nil
}

// repeatBits concatenates bits with itself r times.
func repeatBits(bits []byte, r int) []byte {
	out := make([]byte, 0, len(bits)*r)
	for i := 0; i < r; i++ {
		out = append(out, bits...)
	}
	return out
}

// writeRepeated scatters bits into buf at the 9-way-redundant slots
// starting at offset within the permutation order, recording every
// slot touched in occupied. It stops early if the permutation runs out
// of room, matching the original codec's out-of-bounds guard.
func writeRepeated(buf []byte, order []uint16, bits []byte, offset int, occupied map[uint16]struct{}) {
	for i, bit := range bits {
		for k := 0; k < innerRepeat; k++ {
			pos := offset + i*innerRepeat + k
			if pos >= CodewordBits {
				return
			}
			slot := order[pos]
			buf[slot] = bit
			occupied[slot] = struct{}{}
		}
	}
}
