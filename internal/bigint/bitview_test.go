package bigint

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestBitViewTrimsHighZeroBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		x     Int
		bytes []byte
	}{
		{"zero keeps one byte", NewInt(0), []byte{0}},
		{"one byte", NewInt(0x7F), []byte{0x7F}},
		{"two bytes", NewInt(0x0102), []byte{0x02, 0x01}},
		{"sign ignored", NewInt(-0x0102), []byte{0x02, 0x01}},
		{"second limb", NewInt(1 << 32), []byte{0, 0, 0, 0, 1}},
		{"zero value", Int{}, []byte{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewBitView(tt.x)
			if got := v.Bytes(); !slices.Equal(got, tt.bytes) {
				t.Errorf("Bytes() = %v, want %v", got, tt.bytes)
			}
			if v.Len() != len(tt.bytes) {
				t.Errorf("Len() = %d, want %d", v.Len(), len(tt.bytes))
			}
		})
	}
}

func TestBitViewBinaryMatchesInt(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "1", "-2", "255", "256", "4294967296", "-340282366920938463463374607431768211455"} {
		x := mustParse(s)
		if got, want := NewBitView(x).BinaryString(), x.BinaryString(); got != want {
			t.Errorf("BitView(%s).BinaryString() = %s, want %s", s, got, want)
		}
	}
}

func TestBitViewIsSnapshot(t *testing.T) {
	t.Parallel()
	x := NewInt(300)
	v := NewBitView(x)
	x.AddAssign(NewInt(1 << 40))
	b := v.Bytes()
	b[0] = 0xFF
	if got := v.Bytes(); !slices.Equal(got, []byte{0x2C, 0x01}) {
		t.Errorf("snapshot changed: %v", got)
	}
}

func TestBitViewByteAt(t *testing.T) {
	t.Parallel()
	v := NewBitView(NewInt(0x0A0B))
	if b, err := v.ByteAt(1); err != nil || b != 0x0A {
		t.Errorf("ByteAt(1) = %#x, %v", b, err)
	}
	for _, i := range []int{-1, 2} {
		if _, err := v.ByteAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ByteAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestLimbBits(t *testing.T) {
	t.Parallel()
	if got := LimbBits(0, false); len(got) != 0 {
		t.Errorf("LimbBits(0, false) = %v, want empty", got)
	}
	if got := LimbBits(5, false); !slices.Equal(got, []bool{true, false, true}) {
		t.Errorf("LimbBits(5, false) = %v", got)
	}
	padded := LimbBits(5, true)
	if len(padded) != 32 || !padded[31] || padded[30] || !padded[29] || padded[0] {
		t.Errorf("LimbBits(5, true) = %v", padded)
	}
}

func TestBitsJoinEqualsBinaryString(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "1", "-7", "4294967296", "18446744073709551615", "-79228162514264337593543950336"} {
		x := mustParse(s)
		var sb strings.Builder
		for _, b := range x.Bits() {
			if b {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if sb.String() != x.BinaryString() {
			t.Errorf("Bits(%s) joined = %s, want %s", s, sb.String(), x.BinaryString())
		}
	}
}
