package awsid

import "errors"

var (
	// ErrTooShort indicates the key ID, or the data recovered from it,
	// is too short to contain an embedded account ID.
	ErrTooShort = errors.New("key ID too short")

	// ErrInvalidEncoding indicates the key ID payload is not valid base32
	// in the alphabet AWS uses for key IDs, either because of an
	// unexpected character or because the trailing bits are inconsistent.
	ErrInvalidEncoding = errors.New("key ID is not valid base32")
)
