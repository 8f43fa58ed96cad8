package models

// Principal is the opaque identifier of a calling party. It arrives already
// authenticated from the transport layer; the marketplace core only ever
// compares principals for equality.
type Principal string

// String returns the principal as a plain string.
func (p Principal) String() string { return string(p) }
