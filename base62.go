package ksuid

// base62Characters is ordered by byte value, so string comparison of
// encoded ids matches numeric comparison of their 160-bit values.
const base62Characters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const base = 62

// base62Value maps an alphabet character to its digit value.
func base62Value(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 36, true
	}
	return 0, false
}

// encodeBase62 writes the base62 form of src into dst, left-padded
// with '0' to the full 27 characters. It works by repeated division of
// the big-endian byte array, most significant byte first.
func encodeBase62(dst *[EncodedLength]byte, src *ID) {
	for i := range dst {
		dst[i] = '0'
	}

	var scratch ID
	copy(scratch[:], src[:])

	n := scratch[:]
	pos := len(dst)

	for len(n) > 0 {
		rem := 0
		j := 0

		for _, b := range n {
			acc := rem<<8 | int(b)
			q := acc / base
			rem = acc % base

			if j > 0 || q > 0 {
				n[j] = byte(q)
				j++
			}
		}

		n = n[:j]
		pos--
		dst[pos] = base62Characters[rem]
	}
}

// decodeBase62 parses base62 text into dst, which must start zeroed.
// It fails on characters outside the alphabet and on values that
// require more than 160 bits.
func decodeBase62(dst *ID, src string) error {
	for i := 0; i < len(src); i++ {
		d, ok := base62Value(src[i])
		if !ok {
			return ErrInvalidCharacter
		}

		carry := int(d)
		for j := ByteLength - 1; j >= 0; j-- {
			acc := int(dst[j])*base + carry
			dst[j] = byte(acc)
			carry = acc >> 8
		}

		if carry > 0 {
			return ErrValueTooLarge
		}
	}

	return nil
}
