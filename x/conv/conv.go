// Package conv formats integers without fmt, for MCU builds.
package conv

// Utoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (n % 10))
			n /= 10
		}
	}
	return buf[i:]
}

// U32 returns n in base 10.
func U32(n uint32) string {
	var b [10]byte
	return string(Utoa(b[:], uint64(n)))
}

// Hex32 returns n as 0x-prefixed, zero-padded, 8-digit uppercase hex.
func Hex32(n uint32) string {
	const hexd = "0123456789ABCDEF"
	var b [10]byte
	b[0], b[1] = '0', 'x'
	for i := 9; i >= 2; i-- {
		b[i] = hexd[n&0xF]
		n >>= 4
	}
	return string(b[:])
}

// Hz renders a frequency with the largest unit that keeps it exact to
// three decimals: 24000000 -> "24MHz", 105600000 -> "105.6MHz".
func Hz(hz uint32) string {
	unit, scale := "Hz", uint32(1)
	switch {
	case hz >= 1_000_000:
		unit, scale = "MHz", 1_000_000
	case hz >= 1_000:
		unit, scale = "kHz", 1_000
	}
	s := U32(hz / scale)
	if frac := hz % scale; frac != 0 && scale > 1 {
		// three decimals, trailing zeros dropped
		f := frac / (scale / 1000)
		var d [3]byte
		for i := 2; i >= 0; i-- {
			d[i] = byte('0' + f%10)
			f /= 10
		}
		n := 3
		for n > 0 && d[n-1] == '0' {
			n--
		}
		if n > 0 {
			s += "." + string(d[:n])
		}
	}
	return s + unit
}
