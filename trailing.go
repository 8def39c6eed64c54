// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"bytes"
	"errors"
	"io"
)

// ErrNoTrailingBytes is returned by NewTrailingReader when the document
// carries no residual bytes after the last entity.
var ErrNoTrailingBytes = errors.New("savegame: document has no trailing bytes")

// TrailingLength returns the length of the opaque byte run captured
// between the last entity and end-of-file (§4.5, §4.6).
func (d *Document) TrailingLength() int {
	return len(d.TrailingBytes)
}

// HasTrailingBytes reports whether the document has any residual bytes
// past the last entity.
func (d *Document) HasTrailingBytes() bool {
	return len(d.TrailingBytes) > 0
}

// NewTrailingReader returns a reader over the document's trailing bytes,
// mirroring the teacher's overlay-reader convention for the analogous
// "bytes past the structured region" concept in a PE file.
func (d *Document) NewTrailingReader() (io.Reader, error) {
	if !d.HasTrailingBytes() {
		return nil, ErrNoTrailingBytes
	}
	return bytes.NewReader(d.TrailingBytes), nil
}

// HasTrailingBytes reports whether an entity carries opaque bytes beyond
// its decoded property list, i.e. bytes_read fell short of
// declared_entity_length (§4.5).
func (e *Entity) HasTrailingBytes() bool {
	return len(e.TrailingBytes) > 0
}
