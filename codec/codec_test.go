package codec

import (
	"testing"

	"github.com/sergeymakinen/go-stegocodec/internal/testutil"
)

func TestErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrPayloadTooLarge, ErrProbeSize, ErrLengthDivergence, ErrShiftDisagreement, ErrSlotsExhausted}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && testutil.IsEqualError(a, b) {
				t.Errorf("sentinel errors %d and %d compare equal: %v, %v", i, j, a, b)
			}
		}
	}
}

func TestRepeatCount(t *testing.T) {
	tests := []struct {
		l    int
		want int
	}{
		{0, CodewordBits / 117},
		{1, CodewordBits / 125},
		{1023, CodewordBits / (8*1023 + 117)},
	}
	for _, tt := range tests {
		if got := repeatCount(tt.l); got != tt.want {
			t.Errorf("repeatCount(%d) = %d; want %d", tt.l, got, tt.want)
		}
	}
}
