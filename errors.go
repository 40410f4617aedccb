package ksuid

import "errors"

var (
	// ErrInvalidUnit is returned when a time unit other than Second or Millisecond is used.
	ErrInvalidUnit = errors.New("ksuid: unsupported time unit")

	// ErrInvalidLength is returned when encoded text is not exactly 27 characters.
	ErrInvalidLength = errors.New("ksuid: encoded id must be 27 characters")

	// ErrInvalidCharacter is returned when encoded text contains a character outside the base62 alphabet.
	ErrInvalidCharacter = errors.New("ksuid: encoded id contains a character outside the base62 alphabet")

	// ErrValueTooLarge is returned when encoded text decodes to a value that does not fit in 160 bits.
	ErrValueTooLarge = errors.New("ksuid: encoded id does not fit in 160 bits")

	// ErrTimeBeforeEpoch is returned when generating an id for a time before the epoch.
	ErrTimeBeforeEpoch = errors.New("ksuid: time is before the epoch")

	// ErrTimestampOverflow is returned when a timestamp does not fit in the id's timestamp field.
	ErrTimestampOverflow = errors.New("ksuid: timestamp does not fit in the id's timestamp field")

	// ErrInvalidBinaryLength is returned when binary input is not exactly 20 bytes.
	ErrInvalidBinaryLength = errors.New("ksuid: binary id must be 20 bytes")
)
