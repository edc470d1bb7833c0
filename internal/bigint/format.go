package bigint

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Renderer selects a decimal rendering algorithm. Both renderers produce
// identical output for every value.
type Renderer int

const (
	// Chunked renders by repeated division by 10^9.
	Chunked Renderer = iota
	// DoubleDabble renders through a BCD shift-and-add-3 buffer.
	DoubleDabble
)

func (r Renderer) String() string {
	switch r {
	case Chunked:
		return "chunked"
	case DoubleDabble:
		return "double-dabble"
	}
	return fmt.Sprintf("Renderer(%d)", int(r))
}

// ParseRenderer maps a renderer name (case-insensitive) to a Renderer.
func ParseRenderer(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chunked", "chunk":
		return Chunked, nil
	case "double-dabble", "dabble", "bcd":
		return DoubleDabble, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
}

// Renderers lists every decimal renderer.
func Renderers() []Renderer { return []Renderer{Chunked, DoubleDabble} }

// Text renders x in decimal using r.
func (x Int) Text(r Renderer) (string, error) {
	switch r {
	case Chunked:
		return x.ChunkedString(), nil
	case DoubleDabble:
		return x.DoubleDabbleString(), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownRenderer, int(r))
}

// String renders x in decimal.
func (x Int) String() string { return x.ChunkedString() }

// BinaryString renders |x| in base 2, most significant bit first, without
// leading zeros. The sign is not rendered. Zero renders as "0".
func (x Int) BinaryString() string {
	m := x.abs()
	n := m.bitLen()
	if n == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(m.bit(i)))
	}
	return sb.String()
}

const (
	chunkBase   = 1_000_000_000
	chunkDigits = 9
)

// ChunkedString renders x in decimal by peeling off base-10^9 chunks with
// repeated long division.
func (x Int) ChunkedString() string {
	m := x.abs()
	if m.isZero() {
		return "0"
	}
	var chunks []uint32
	for cur := m; !cur.isZero(); {
		var r uint32
		cur, r = divLimb(cur, chunkBase)
		chunks = append(chunks, r)
	}

	var sb strings.Builder
	sb.Grow(len(chunks)*chunkDigits + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%d", chunks[len(chunks)-1])
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", chunks[i])
	}
	return sb.String()
}

// BCD words hold 16 packed decimal digits each.
const (
	bcdDigitsPerWord = 16
	bcdThrees        = 0x3333333333333333
	bcdHighBits      = 0x8888888888888888
)

// DoubleDabbleString renders x in decimal with the double-dabble algorithm.
// For every source bit, most significant first, each BCD digit >= 5 gets 3
// added, then the whole buffer shifts left one bit with the source bit
// entering at the bottom.
func (x Int) DoubleDabbleString() string {
	m := x.abs()
	bits := m.bitLen()
	if bits == 0 {
		return "0"
	}

	digits := int(math.Ceil(float64(bits)*math.Log10(2))) + 1
	buf := make([]uint64, (digits+bcdDigitsPerWord-1)/bcdDigitsPerWord)
	active := 1

	for i := bits - 1; i >= 0; i-- {
		for w := 0; w < active; w++ {
			// Digits are <= 9, so adding 3 never carries across a nibble and
			// the nibble's high bit is set exactly when the digit is >= 5.
			adj := ((buf[w] + bcdThrees) & bcdHighBits) >> 3
			buf[w] += adj * 3
		}
		in := uint64(m.bit(i))
		for w := 0; w < active; w++ {
			out := buf[w] >> 63
			buf[w] = buf[w]<<1 | in
			in = out
		}
		if in != 0 && active < len(buf) {
			buf[active] = in
			active++
		}
	}

	var sb strings.Builder
	sb.Grow(active*bcdDigitsPerWord + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	leading := true
	for w := active - 1; w >= 0; w-- {
		for d := bcdDigitsPerWord - 1; d >= 0; d-- {
			digit := byte(buf[w]>>(4*uint(d))) & 0xF
			if leading && digit == 0 {
				continue
			}
			leading = false
			sb.WriteByte('0' + digit)
		}
	}
	return sb.String()
}

// Format implements fmt.Formatter. It supports %d, %s and %v (decimal) and
// %b (binary, with a leading '-' for negative values). Width and the '-'
// flag pad the output.
func (x Int) Format(s fmt.State, verb rune) {
	var out string
	switch verb {
	case 'd', 's', 'v':
		out = x.String()
	case 'b':
		out = x.BinaryString()
		if x.Sign() < 0 {
			out = "-" + out
		}
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}
	if w, ok := s.Width(); ok && len(out) < w {
		pad := strings.Repeat(" ", w-len(out))
		if s.Flag('-') {
			out += pad
		} else {
			out = pad + out
		}
	}
	_, _ = io.WriteString(s, out)
}
