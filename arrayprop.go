// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// readArrayValue reads an ArrayProperty payload: item_type, a reserved zero
// byte, count, then count items whose shape depends on item_type (§3,
// §4.3).
func readArrayValue(r *reader) (ArrayValue, error) {
	itemType, err := r.readString()
	if err != nil {
		return ArrayValue{}, fmt.Errorf("item_type: %w", err)
	}
	if err := r.readReservedZeroByte("ArrayProperty"); err != nil {
		return ArrayValue{}, err
	}
	count, err := r.readInt32()
	if err != nil {
		return ArrayValue{}, fmt.Errorf("count: %w", err)
	}
	if count < 0 {
		return ArrayValue{}, fmt.Errorf("array count %d: %w", count, ErrNegativeResidual)
	}

	v := ArrayValue{ItemType: itemType}

	switch itemType {
	case "IntProperty":
		ints := make([]int32, count)
		for i := range ints {
			x, err := r.readInt32()
			if err != nil {
				return ArrayValue{}, fmt.Errorf("item %d: %w", i, err)
			}
			ints[i] = x
		}
		v.Ints = ints

	case "ObjectProperty":
		objs := make([]ObjectRefValue, count)
		for i := range objs {
			level, err := r.readString()
			if err != nil {
				return ArrayValue{}, fmt.Errorf("item %d: level_name: %w", i, err)
			}
			path, err := r.readString()
			if err != nil {
				return ArrayValue{}, fmt.Errorf("item %d: path_name: %w", i, err)
			}
			objs[i] = ObjectRefValue{LevelName: level, PathName: path}
		}
		v.Objects = objs

	case "StructProperty":
		sv, err := readStructArrayValue(r, count)
		if err != nil {
			return ArrayValue{}, err
		}
		v.Structs = &sv

	default:
		return ArrayValue{}, fmt.Errorf("array item_type %q: %w", itemType, ErrUnknownTag)
	}

	return v, nil
}

// readStructArrayValue reads the ArrayProperty-of-StructProperty prelude
// (struct_name, struct_type, struct_size, reserved i32 = 0, inner_type, 17
// opaque bytes) followed by count element property lists, each terminated
// by None. struct_size is recorded as read for write-time verification but
// is not otherwise trusted (§4.3).
func readStructArrayValue(r *reader, count int32) (StructArrayValue, error) {
	structName, err := r.readString()
	if err != nil {
		return StructArrayValue{}, fmt.Errorf("struct_name: %w", err)
	}
	structType, err := r.readString()
	if err != nil {
		return StructArrayValue{}, fmt.Errorf("struct_type: %w", err)
	}
	structSize, err := r.readInt32()
	if err != nil {
		return StructArrayValue{}, fmt.Errorf("struct_size: %w", err)
	}
	if err := r.readReservedZeroInt32("ArrayProperty struct prelude"); err != nil {
		return StructArrayValue{}, err
	}
	innerType, err := r.readString()
	if err != nil {
		return StructArrayValue{}, fmt.Errorf("inner_type: %w", err)
	}
	unk, err := r.readBytes(17)
	if err != nil {
		return StructArrayValue{}, fmt.Errorf("unknown bytes: %w", err)
	}

	elements := make([][]Property, count)
	for i := range elements {
		props, err := readPropertyList(r)
		if err != nil {
			return StructArrayValue{}, fmt.Errorf("element %d: %w", i, err)
		}
		elements[i] = props
	}

	return StructArrayValue{
		StructName:   structName,
		StructType:   structType,
		InnerType:    innerType,
		Unknown:      append([]byte(nil), unk...),
		DeclaredSize: structSize,
		Elements:     elements,
	}, nil
}

// writeArrayValue writes the inverse of readArrayValue. item_type is
// written uncounted (a type-discriminator field, §4.3); count and item
// payload bytes are counted.
func writeArrayValue(w *writer, v ArrayValue, opts *EncodeOptions, doc *Document) error {
	w.writeString(v.ItemType, false)
	w.writeInt8(0, false)

	switch v.ItemType {
	case "IntProperty":
		w.writeInt32(int32(len(v.Ints)), true)
		for _, x := range v.Ints {
			w.writeInt32(x, true)
		}

	case "ObjectProperty":
		w.writeInt32(int32(len(v.Objects)), true)
		for _, o := range v.Objects {
			w.writeString(o.LevelName, true)
			w.writeString(o.PathName, true)
		}

	case "StructProperty":
		if v.Structs == nil {
			return fmt.Errorf("array item_type %q: missing struct payload: %w", v.ItemType, ErrUnknownTag)
		}
		w.writeInt32(int32(len(v.Structs.Elements)), true)
		return writeStructArrayValue(w, *v.Structs, opts, doc)

	default:
		return fmt.Errorf("array item_type %q: %w", v.ItemType, ErrUnknownTag)
	}
	return nil
}

// writeStructArrayValue writes the struct-array prelude (struct_name and
// struct_type both count toward the enclosing property's declared_length)
// followed by a nested length frame whose counted length covers only the
// element property lists and their None terminators; the reserved i32,
// inner_type, and 17 unknown bytes are written inside that frame, right
// after struct_size, but are not counted toward it.
// The frame's recomputed length is written as struct_size (§3, §4.3,
// §8 scenario 5).
func writeStructArrayValue(w *writer, v StructArrayValue, opts *EncodeOptions, doc *Document) error {
	w.writeString(v.StructName, true)
	w.writeString(v.StructType, true)

	w.pushLengthFrame()
	w.writeInt32(0, false) // reserved prelude slot, not counted toward struct_size
	w.writeString(v.InnerType, false)
	w.write(v.Unknown, false)

	for i, props := range v.Elements {
		if err := writePropertyList(w, props, opts, doc); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	size := w.popLengthFrame()
	if size != v.DeclaredSize {
		msg := fmt.Sprintf("array struct %q: recomputed struct_size %d != declared struct_size %d",
			v.StructName, size, v.DeclaredSize)
		if opts != nil && opts.Authoring {
			doc.Warnings = append(doc.Warnings, WarnLengthMismatch+": "+msg)
		} else {
			return fmt.Errorf("%s: %w", msg, ErrLengthMismatch)
		}
	}
	return nil
}
