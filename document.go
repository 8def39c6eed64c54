// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// decodeDocument drives header -> object table -> per-object entity ->
// residual-bytes-to-EOF, producing the in-memory document (§4.6).
func decodeDocument(data []byte, opts *DecodeOptions) (*Document, error) {
	r := newReader(data)

	header, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	objects, err := readObjectTable(r)
	if err != nil {
		return nil, fmt.Errorf("object table: %w", err)
	}

	for i := range objects {
		entity, err := readEntity(r, objects[i].Kind)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		objects[i].Entity = entity
	}

	trailing, err := r.readBytes(r.remaining())
	if err != nil {
		return nil, fmt.Errorf("trailing bytes: %w", err)
	}

	doc := &Document{
		Header:        header,
		Objects:       objects,
		TrailingBytes: append([]byte(nil), trailing...),
	}
	return doc, nil
}

// encodeDocument drives the inverse of decodeDocument. The document is
// not itself length-prefixed: the top-level write pushes no length frame
// (§4.6).
func encodeDocument(doc *Document, opts *EncodeOptions) ([]byte, error) {
	w := newWriter()

	writeHeader(w, doc.Header)

	if err := writeObjectTable(w, doc.Objects); err != nil {
		return nil, fmt.Errorf("object table: %w", err)
	}

	for i, obj := range doc.Objects {
		if err := writeEntity(w, obj.Entity, obj.Kind, opts, doc); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}

	w.write(doc.TrailingBytes, true)

	return w.bytes(), nil
}
