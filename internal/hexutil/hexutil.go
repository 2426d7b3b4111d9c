// Package hexutil provides hex rendering for 16-bit wire identifiers.
// Uses a lookup table instead of fmt.Sprintf; identifier rendering sits
// on the diagnostic hot path when large policies are validated with
// capture enabled.
package hexutil

const hexLower = "0123456789abcdef"

// Uint16 renders v as minimal lowercase hex with no prefix,
// equivalent to fmt.Sprintf("%x", v).
func Uint16(v uint16) string {
	return string(AppendUint16(nil, v))
}

// AppendUint16 appends the minimal lowercase hex rendering of v to dst.
func AppendUint16(dst []byte, v uint16) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [4]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = hexLower[v&0xf]
		v >>= 4
	}
	return append(dst, buf[i:]...)
}

// Padded renders v as a fixed-width "0x"-prefixed identifier
// (e.g. 0x0403), the form used in listings and YAML files.
func Padded(v uint16) string {
	return string([]byte{
		'0', 'x',
		hexLower[v>>12&0xf],
		hexLower[v>>8&0xf],
		hexLower[v>>4&0xf],
		hexLower[v&0xf],
	})
}
