package valuerange

import (
	"fmt"
)

// BoundType indicates whether an EndPoint of some Range is contained in the Range itself ("closed") or not ("open").
// An EndPoint at an infinity is always open.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the Range ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the Range ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// boundTypeOf returns the BoundType that corresponds to the given inclusion flag.
func boundTypeOf(enclosed bool) BoundType {
	if enclosed {
		return BoundTypeClosed
	}

	return BoundTypeOpen
}

// IsClosed returns true if the bound encloses its EndPoint value.
func (b BoundType) IsClosed() bool {
	return b == BoundTypeClosed
}

// Invert returns the opposite BoundType.
func (b BoundType) Invert() BoundType {
	return boundTypeOf(!b.IsClosed())
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
