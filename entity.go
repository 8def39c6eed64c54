// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// readEntity reads one per-object payload block (§4.5). kind selects
// whether the Actor-only level_name/path_name/children header is present.
func readEntity(r *reader, kind ObjectKind) (Entity, error) {
	declaredLength, err := r.readInt32()
	if err != nil {
		return Entity{}, fmt.Errorf("declared_entity_length: %w", err)
	}
	r.resetCount()

	var e Entity
	if kind == KindActor {
		level, err := r.readString()
		if err != nil {
			return Entity{}, fmt.Errorf("entity level_name: %w", err)
		}
		path, err := r.readString()
		if err != nil {
			return Entity{}, fmt.Errorf("entity path_name: %w", err)
		}
		childCount, err := r.readInt32()
		if err != nil {
			return Entity{}, fmt.Errorf("entity child_count: %w", err)
		}
		if childCount < 0 {
			return Entity{}, fmt.Errorf("entity child_count %d: %w", childCount, ErrNegativeResidual)
		}
		var children []ChildRef
		if childCount > 0 {
			children = make([]ChildRef, childCount)
		}
		for i := range children {
			cl, err := r.readString()
			if err != nil {
				return Entity{}, fmt.Errorf("child %d: level_name: %w", i, err)
			}
			cp, err := r.readString()
			if err != nil {
				return Entity{}, fmt.Errorf("child %d: path_name: %w", i, err)
			}
			children[i] = ChildRef{LevelName: cl, PathName: cp}
		}
		e.HasNames = true
		e.LevelName = level
		e.PathName = path
		e.Children = children
	}

	props, err := readPropertyList(r)
	if err != nil {
		return Entity{}, fmt.Errorf("entity properties: %w", err)
	}
	e.Properties = props

	missing := int(declaredLength) - r.bytesRead
	switch {
	case missing > 0:
		tail, err := r.readBytes(missing)
		if err != nil {
			return Entity{}, fmt.Errorf("entity trailing bytes: %w", err)
		}
		e.TrailingBytes = append([]byte(nil), tail...)
	case missing < 0:
		return Entity{}, fmt.Errorf("entity declared length %d, consumed %d: %w", declaredLength, r.bytesRead, ErrNegativeResidual)
	}

	return e, nil
}

// writeEntity writes the inverse of readEntity: a length frame wrapping
// the optional names/children header, the property list and its
// sentinel, and the stored trailing bytes, all counted so the emitted
// length prefix equals the original declared_entity_length by
// construction (§4.5). kind, not e.HasNames, decides whether the header is
// present: HasNames is excluded from JSON (it is redundant with the
// enclosing Object's Kind), so a document built by decoding JSON would
// otherwise always report it false and silently drop the header.
func writeEntity(w *writer, e Entity, kind ObjectKind, opts *EncodeOptions, doc *Document) error {
	w.pushLengthFrame()

	if kind == KindActor {
		w.writeString(e.LevelName, true)
		w.writeString(e.PathName, true)
		w.writeInt32(int32(len(e.Children)), true)
		for _, c := range e.Children {
			w.writeString(c.LevelName, true)
			w.writeString(c.PathName, true)
		}
	}

	if err := writePropertyList(w, e.Properties, opts, doc); err != nil {
		w.popLengthFrame()
		return err
	}

	w.write(e.TrailingBytes, true)

	w.popLengthFrame()
	return nil
}
