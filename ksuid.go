// Package ksuid generates and decodes K-Sortable Unique Identifiers:
// 160-bit values built from a timestamp and a random payload, encoded
// as 27-character base62 strings whose byte order matches generation
// order.
//
// Two timestamp resolutions exist. Second-resolution ids carry a
// 32-bit timestamp and a 16-byte random payload; millisecond ids a
// 64-bit timestamp and a 12-byte payload. Timestamps count from a
// custom epoch 1,400,000,000 seconds after the Unix epoch. The binary
// form does not record which resolution was used, so operations that
// read the timestamp field take the unit as an argument and it must
// match the one used at generation.
package ksuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// Unit selects the resolution of an id's timestamp field.
type Unit int

const (
	// Second gives a 32-bit timestamp and a 16-byte payload.
	Second Unit = iota

	// Millisecond gives a 64-bit timestamp and a 12-byte payload.
	Millisecond
)

// Epoch offsets relative to the Unix epoch. Id timestamps count from
// these instants. The microsecond and nanosecond constants are derived
// for completeness; Unit does not accept those resolutions.
const (
	EpochSeconds      = 1_400_000_000
	EpochMilliseconds = EpochSeconds * 1_000
	EpochMicroseconds = EpochSeconds * 1_000_000
	EpochNanoseconds  = EpochSeconds * 1_000_000_000
)

const (
	// ByteLength is the size of an id's binary form.
	ByteLength = 20

	// EncodedLength is the size of an id's base62 text form.
	EncodedLength = 27
)

// ID is the 160-bit binary form of an identifier: a big-endian
// unsigned value laid out as timestamp followed by payload.
type ID [ByteLength]byte

// Min is the all-zero id, the lowest possible value. Its text form is
// MinEncoded.
var Min ID

// Max is the all-ones id, the highest possible value.
var Max = func() ID {
	var id ID
	for i := range id {
		id[i] = 0xFF
	}
	return id
}()

// MinEncoded is the text form of Min: 27 base62 zero digits.
const MinEncoded = "000000000000000000000000000"

var rander io.Reader = rand.Reader

// SetRand replaces the payload entropy source. Passing nil restores
// crypto/rand. Intended for deterministic tests.
func SetRand(r io.Reader) {
	if r == nil {
		r = rand.Reader
	}
	rander = r
}

func (u Unit) valid() bool {
	return u == Second || u == Millisecond
}

// timestampBytes returns the width of the timestamp field.
func (u Unit) timestampBytes() int {
	if u == Millisecond {
		return 8
	}
	return 4
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// New generates a second-resolution id at the current time.
func New() (ID, error) {
	return NewWithUnit(Second)
}

// NewWithUnit generates an id at the current time with the given
// timestamp resolution.
func NewWithUnit(u Unit) (ID, error) {
	return NewWithTime(time.Now(), u)
}

// NewWithTime generates an id whose timestamp field is taken from t.
// The payload is still drawn fresh from the entropy source. Times
// before the epoch and second timestamps past 32 bits are rejected.
func NewWithTime(t time.Time, u Unit) (ID, error) {
	var id ID

	switch u {
	case Second:
		ts := t.Unix() - EpochSeconds
		if ts < 0 {
			return id, ErrTimeBeforeEpoch
		}
		if ts > math.MaxUint32 {
			return id, ErrTimestampOverflow
		}
		binary.BigEndian.PutUint32(id[:4], uint32(ts))

	case Millisecond:
		ts := t.UnixMilli() - EpochMilliseconds
		if ts < 0 {
			return id, ErrTimeBeforeEpoch
		}
		binary.BigEndian.PutUint64(id[:8], uint64(ts))

	default:
		return id, ErrInvalidUnit
	}

	if _, err := io.ReadFull(rander, id[u.timestampBytes():]); err != nil {
		return ID{}, fmt.Errorf("ksuid: read random payload: %w", err)
	}

	return id, nil
}

// NewMin generates a second-resolution id with a zero timestamp and a
// fresh random payload: the smallest id the generator can produce for
// use as an inclusive range boundary. It is distinct from Min, whose
// payload is zero as well.
func NewMin() (ID, error) {
	var id ID

	if _, err := io.ReadFull(rander, id[4:]); err != nil {
		return ID{}, fmt.Errorf("ksuid: read random payload: %w", err)
	}

	return id, nil
}

// Parse decodes the 27-character base62 text form of an id.
func Parse(s string) (ID, error) {
	var id ID

	if len(s) != EncodedLength {
		return id, ErrInvalidLength
	}

	if err := decodeBase62(&id, s); err != nil {
		return ID{}, err
	}

	return id, nil
}

// String returns the 27-character base62 text form, zero-padded so
// that string comparison follows id order.
func (id ID) String() string {
	var out [EncodedLength]byte
	encodeBase62(&out, &id)
	return string(out[:])
}

// Bytes returns a copy of the 20-byte binary form.
func (id ID) Bytes() []byte {
	b := make([]byte, ByteLength)
	copy(b, id[:])
	return b
}

// IsNil reports whether id is the zero id Min.
func (id ID) IsNil() bool {
	return id == Min
}

// Timestamp returns the id's raw timestamp field: elapsed units since
// the epoch. The unit must match the one used at generation.
func (id ID) Timestamp(u Unit) (uint64, error) {
	switch u {
	case Second:
		return uint64(binary.BigEndian.Uint32(id[:4])), nil
	case Millisecond:
		return binary.BigEndian.Uint64(id[:8]), nil
	default:
		return 0, ErrInvalidUnit
	}
}

// Payload returns a copy of the id's random payload bytes. The unit
// must match the one used at generation.
func (id ID) Payload(u Unit) ([]byte, error) {
	if !u.valid() {
		return nil, ErrInvalidUnit
	}

	b := make([]byte, ByteLength-u.timestampBytes())
	copy(b, id[u.timestampBytes():])
	return b, nil
}
