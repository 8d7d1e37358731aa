package codec

import (
	"fmt"
	"math"
)

// The zarith form is sign-magnitude with little-endian group order:
// the first byte carries the low 6 magnitude bits, the sign in bit 6
// and a continuation flag in bit 7; each following byte carries the
// next 7 magnitude bits and a continuation flag.
//
// The backing here is int32. All sign/magnitude arithmetic lives in
// this file, so a wider or arbitrary-precision backing can replace it
// without touching the tag engine or the wire layout.

func appendZarith(dst []byte, v int32) ([]byte, error) {
	if v == math.MinInt32 {
		return dst, fmt.Errorf("%w: %d has no 32-bit magnitude", ErrIntRange, v)
	}
	neg := v < 0
	mag := uint32(v)
	if neg {
		mag = uint32(-v)
	}
	b := byte(mag & 0x3f)
	if neg {
		b |= 0x40
	}
	mag >>= 6
	if mag != 0 {
		b |= 0x80
	}
	dst = append(dst, b)
	for mag != 0 {
		b = byte(mag & 0x7f)
		mag >>= 7
		if mag != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst, nil
}

func (r *reader) readZarith() (int32, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	mag := uint32(b & 0x3f)
	neg := b&0x40 != 0
	shift := uint(6)
	for b&0x80 != 0 {
		if b, err = r.readByte(); err != nil {
			return 0, err
		}
		group := uint32(b & 0x7f)
		if group != 0 {
			if shift > 31 || group > uint32(math.MaxInt32)>>shift {
				return 0, fmt.Errorf("%w: zarith magnitude exceeds 31 bits", ErrIntRange)
			}
			mag |= group << shift
		}
		shift += 7
	}
	if neg {
		return -int32(mag), nil
	}
	return int32(mag), nil
}
