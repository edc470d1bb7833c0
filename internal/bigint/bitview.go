package bigint

import "strings"

// LimbByte returns byte i of a limb, 0 being the least significant. Indexes
// outside 0..3 fail with an error matching ErrIndexOutOfRange.
func LimbByte(limb uint32, i int) (byte, error) {
	if i < 0 || i >= limbBytes {
		return 0, &IndexError{Index: i, Len: limbBytes}
	}
	return byte(limb >> (8 * uint(i))), nil //nolint:gosec // G115: byte extraction
}

// LimbBits returns the bits of a limb, most significant first. Unpadded
// output has no leading zeros (and is empty for 0); padded output always has
// 32 entries.
func LimbBits(limb uint32, pad bool) []bool {
	n := limbBits
	if !pad {
		n = 0
		for v := limb; v != 0; v >>= 1 {
			n++
		}
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = limb>>(uint(n-1-i))&1 == 1
	}
	return bits
}

// Bits returns the bits of |x|, most significant first: the top limb
// unpadded followed by every lower limb padded to 32 bits. Zero yields a
// single false.
func (x Int) Bits() []bool {
	m := x.abs()
	if m.isZero() {
		return []bool{false}
	}
	out := LimbBits(m[len(m)-1], false)
	for i := len(m) - 2; i >= 0; i-- {
		out = append(out, LimbBits(m[i], true)...)
	}
	return out
}

// BitView is a read-only byte snapshot of a magnitude, least significant
// byte first, with high zero bytes stripped. A BitView always holds at least
// one byte.
type BitView struct {
	bytes []byte
}

// NewBitView snapshots the magnitude of x.
func NewBitView(x Int) BitView {
	m := x.abs()
	b := make([]byte, 0, len(m)*limbBytes)
	for _, limb := range m {
		for i := 0; i < limbBytes; i++ {
			v, _ := LimbByte(limb, i)
			b = append(b, v)
		}
	}
	n := len(b)
	for n > 1 && b[n-1] == 0 {
		n--
	}
	return BitView{bytes: b[:n]}
}

// Len returns the number of bytes held.
func (v BitView) Len() int {
	if len(v.bytes) == 0 {
		return 1
	}
	return len(v.bytes)
}

// Bytes returns a copy of the bytes, least significant first.
func (v BitView) Bytes() []byte {
	if len(v.bytes) == 0 {
		return []byte{0}
	}
	out := make([]byte, len(v.bytes))
	copy(out, v.bytes)
	return out
}

// ByteAt returns byte i, 0 being the least significant.
func (v BitView) ByteAt(i int) (byte, error) {
	b := v.Bytes()
	if i < 0 || i >= len(b) {
		return 0, &IndexError{Index: i, Len: len(b)}
	}
	return b[i], nil
}

// BinaryString renders the bytes in base 2 without leading zeros. An
// all-zero view renders as "0".
func (v BitView) BinaryString() string {
	b := v.Bytes()
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	leading := true
	for i := len(b) - 1; i >= 0; i-- {
		for bit := 7; bit >= 0; bit-- {
			one := b[i]>>uint(bit)&1 == 1
			if leading && !one {
				continue
			}
			leading = false
			if one {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	if leading {
		return "0"
	}
	return sb.String()
}
