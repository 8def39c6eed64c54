// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// readObjectTable reads the i32 count, count tagged Actor/Reference
// records, and the trailing i32 count2 which must equal count (§4.4).
// Entities are not read here; decodeDocument pairs them with these records
// afterward.
func readObjectTable(r *reader) ([]Object, error) {
	count, err := r.readInt32()
	if err != nil {
		return nil, fmt.Errorf("object_count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("object_count %d: %w", count, ErrNegativeResidual)
	}

	objects := make([]Object, count)
	for i := range objects {
		obj, err := readObject(r)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects[i] = obj
	}

	count2, err := r.readInt32()
	if err != nil {
		return nil, fmt.Errorf("entity_count: %w", err)
	}
	if count2 != count {
		return nil, fmt.Errorf("object_count %d != entity_count %d: %w", count, count2, ErrCountMismatch)
	}

	return objects, nil
}

func readObject(r *reader) (Object, error) {
	tag, err := r.readInt32()
	if err != nil {
		return Object{}, fmt.Errorf("type tag: %w", err)
	}
	kind := ObjectKind(tag)

	className, err := r.readString()
	if err != nil {
		return Object{}, fmt.Errorf("class_name: %w", err)
	}
	levelName, err := r.readString()
	if err != nil {
		return Object{}, fmt.Errorf("level_name: %w", err)
	}
	pathName, err := r.readString()
	if err != nil {
		return Object{}, fmt.Errorf("path_name: %w", err)
	}

	obj := Object{Kind: kind, ClassName: className, LevelName: levelName, PathName: pathName}

	switch kind {
	case KindActor:
		needTransform, err := r.readInt32()
		if err != nil {
			return Object{}, fmt.Errorf("need_transform: %w", err)
		}
		transform, err := readTransform(r)
		if err != nil {
			return Object{}, fmt.Errorf("transform: %w", err)
		}
		wasPlaced, err := r.readInt32()
		if err != nil {
			return Object{}, fmt.Errorf("was_placed_in_level: %w", err)
		}
		obj.NeedTransform = needTransform
		obj.PlacementTransform = transform
		obj.WasPlacedInLevel = wasPlaced

	case KindReference:
		outerPath, err := r.readString()
		if err != nil {
			return Object{}, fmt.Errorf("outer_path_name: %w", err)
		}
		obj.OuterPathName = outerPath

	default:
		return Object{}, fmt.Errorf("object type tag %d: %w", tag, ErrUnknownTag)
	}

	return obj, nil
}

func readTransform(r *reader) (Transform, error) {
	var t Transform
	for i := range t.Rotation {
		v, err := r.readFloat32()
		if err != nil {
			return Transform{}, fmt.Errorf("rotation[%d]: %w", i, err)
		}
		t.Rotation[i] = v
	}
	for i := range t.Translation {
		v, err := r.readFloat32()
		if err != nil {
			return Transform{}, fmt.Errorf("translation[%d]: %w", i, err)
		}
		t.Translation[i] = v
	}
	for i := range t.Scale3D {
		v, err := r.readFloat32()
		if err != nil {
			return Transform{}, fmt.Errorf("scale3d[%d]: %w", i, err)
		}
		t.Scale3D[i] = v
	}
	return t, nil
}

// writeObjectTable writes the inverse of readObjectTable.
func writeObjectTable(w *writer, objects []Object) error {
	w.writeInt32(int32(len(objects)), true)
	for i, obj := range objects {
		if err := writeObject(w, obj); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	w.writeInt32(int32(len(objects)), true)
	return nil
}

func writeObject(w *writer, obj Object) error {
	w.writeInt32(int32(obj.Kind), true)
	w.writeString(obj.ClassName, true)
	w.writeString(obj.LevelName, true)
	w.writeString(obj.PathName, true)

	switch obj.Kind {
	case KindActor:
		w.writeInt32(obj.NeedTransform, true)
		writeTransform(w, obj.PlacementTransform)
		w.writeInt32(obj.WasPlacedInLevel, true)

	case KindReference:
		w.writeString(obj.OuterPathName, true)

	default:
		return fmt.Errorf("object type tag %d: %w", obj.Kind, ErrUnknownTag)
	}
	return nil
}

func writeTransform(w *writer, t Transform) {
	for _, v := range t.Rotation {
		w.writeFloat32(v, true)
	}
	for _, v := range t.Translation {
		w.writeFloat32(v, true)
	}
	for _, v := range t.Scale3D {
		w.writeFloat32(v, true)
	}
}
