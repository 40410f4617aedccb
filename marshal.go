package ksuid

// FromBytes builds an id from its 20-byte binary form.
func FromBytes(b []byte) (ID, error) {
	var id ID

	if len(b) != ByteLength {
		return id, ErrInvalidBinaryLength
	}

	copy(id[:], b)
	return id, nil
}

// MarshalText implements encoding.TextMarshaler using the base62 text
// form. JSON marshaling of an ID goes through this.
func (id ID) MarshalText() ([]byte, error) {
	var out [EncodedLength]byte
	encodeBase62(&out, &id)
	return out[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the 20-byte
// binary form.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes(b)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
