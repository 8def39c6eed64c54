// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "errors"

// Error taxonomy (§7). Every parse/write failure wraps one of these
// sentinels with positional context before it surfaces to the caller.
var (
	// ErrTruncated is returned when EOF is hit before an expected field.
	ErrTruncated = errors.New("truncated: unexpected end of data")

	// ErrStringTerminator is returned when a length-prefixed string's final
	// byte is not 0x00.
	ErrStringTerminator = errors.New("string is not NUL-terminated")

	// ErrReservedNonZero is returned when a field defined to be zero is not.
	ErrReservedNonZero = errors.New("reserved field is non-zero")

	// ErrCountMismatch is returned when the object count and entity count
	// disagree.
	ErrCountMismatch = errors.New("object count and entity count disagree")

	// ErrNegativeResidual is returned when an entity's properties consumed
	// more bytes than its declared length.
	ErrNegativeResidual = errors.New("entity consumed more bytes than its declared length")

	// ErrUnknownTag is returned for a type_tag, struct_type, item_type, or
	// object tag outside the known set. Always fatal: the correct response
	// is to extend the codec, not to guess (§7).
	ErrUnknownTag = errors.New("unknown tag")

	// ErrLengthMismatch is returned when a recomputed property/struct length
	// does not match the stored declared length. Fatal unless the caller
	// opted into authoring mode (§4.7), in which case it is downgraded to a
	// Document.Warnings entry.
	ErrLengthMismatch = errors.New("recomputed length does not match declared length")
)
