// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// readStructValue reads a StructProperty payload: a struct_type tag, 17
// opaque bytes, then a body whose grammar is selected by struct_type
// (§3, §4.3). This mirrors the teacher's directory-type-tag dispatch
// (each debug/CLR directory type carries its own fixed layout): here each
// struct_type carries its own fixed or nested-list layout.
func readStructValue(r *reader) (StructValue, error) {
	structType, err := r.readString()
	if err != nil {
		return StructValue{}, fmt.Errorf("struct_type: %w", err)
	}
	unk, err := r.readBytes(17)
	if err != nil {
		return StructValue{}, fmt.Errorf("struct %q: unknown bytes: %w", structType, err)
	}

	body, err := readStructBody(r, structType)
	if err != nil {
		return StructValue{}, fmt.Errorf("struct %q: %w", structType, err)
	}

	return StructValue{
		StructType: structType,
		Unknown:    append([]byte(nil), unk...),
		Body:       body,
	}, nil
}

func readStructBody(r *reader, structType string) (interface{}, error) {
	switch structType {
	case "Vector", "Rotator":
		return readVectorBody(r)

	case "Box":
		return readBoxBody(r)

	case "LinearColor":
		return readLinearColorBody(r)

	case "Quat":
		return readQuatBody(r)

	case "Transform", "RemovedInstanceArray", "InventoryStack":
		props, err := readPropertyList(r)
		if err != nil {
			return nil, err
		}
		return PropertyListBody{Properties: props}, nil

	case "InventoryItem":
		return readInventoryItemBody(r)

	default:
		return nil, fmt.Errorf("struct_type %q: %w", structType, ErrUnknownTag)
	}
}

func readVectorBody(r *reader) (VectorBody, error) {
	x, err := r.readFloat32()
	if err != nil {
		return VectorBody{}, err
	}
	y, err := r.readFloat32()
	if err != nil {
		return VectorBody{}, err
	}
	z, err := r.readFloat32()
	if err != nil {
		return VectorBody{}, err
	}
	return VectorBody{X: x, Y: y, Z: z}, nil
}

func readBoxBody(r *reader) (BoxBody, error) {
	var b BoxBody
	for i := range b.Min {
		v, err := r.readFloat32()
		if err != nil {
			return BoxBody{}, err
		}
		b.Min[i] = v
	}
	for i := range b.Max {
		v, err := r.readFloat32()
		if err != nil {
			return BoxBody{}, err
		}
		b.Max[i] = v
	}
	valid, err := r.readInt8()
	if err != nil {
		return BoxBody{}, err
	}
	b.IsValid = valid
	return b, nil
}

func readLinearColorBody(r *reader) (LinearColorBody, error) {
	vals := make([]float32, 4)
	for i := range vals {
		v, err := r.readFloat32()
		if err != nil {
			return LinearColorBody{}, err
		}
		vals[i] = v
	}
	return LinearColorBody{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func readQuatBody(r *reader) (QuatBody, error) {
	vals := make([]float32, 4)
	for i := range vals {
		v, err := r.readFloat32()
		if err != nil {
			return QuatBody{}, err
		}
		vals[i] = v
	}
	return QuatBody{A: vals[0], B: vals[1], C: vals[2], D: vals[3]}, nil
}

// readInventoryItemBody reads the InventoryItem struct body. It reads
// exactly one inner property but does not consume a None sentinel: the
// enclosing StructProperty's own list terminator serves both (§4.3).
func readInventoryItemBody(r *reader) (InventoryItemBody, error) {
	unk1, err := r.readString()
	if err != nil {
		return InventoryItemBody{}, err
	}
	itemName, err := r.readString()
	if err != nil {
		return InventoryItemBody{}, err
	}
	levelName, err := r.readString()
	if err != nil {
		return InventoryItemBody{}, err
	}
	pathName, err := r.readString()
	if err != nil {
		return InventoryItemBody{}, err
	}
	inner, ok, err := readProperty(r)
	if err != nil {
		return InventoryItemBody{}, err
	}
	if !ok {
		return InventoryItemBody{}, fmt.Errorf("inventory item inner property: unexpected None: %w", ErrTruncated)
	}
	return InventoryItemBody{
		Unk1:      unk1,
		ItemName:  itemName,
		LevelName: levelName,
		PathName:  pathName,
		Inner:     inner,
	}, nil
}

// writeStructValue writes the inverse of readStructValue.
func writeStructValue(w *writer, v StructValue, opts *EncodeOptions, doc *Document) error {
	w.writeString(v.StructType, false)
	w.write(v.Unknown, false)
	return writeStructBody(w, v.StructType, v.Body, opts, doc)
}

func writeStructBody(w *writer, structType string, body interface{}, opts *EncodeOptions, doc *Document) error {
	switch structType {
	case "Vector", "Rotator":
		b := body.(VectorBody)
		w.writeFloat32(b.X, true)
		w.writeFloat32(b.Y, true)
		w.writeFloat32(b.Z, true)

	case "Box":
		b := body.(BoxBody)
		for _, v := range b.Min {
			w.writeFloat32(v, true)
		}
		for _, v := range b.Max {
			w.writeFloat32(v, true)
		}
		w.writeInt8(b.IsValid, true)

	case "LinearColor":
		b := body.(LinearColorBody)
		w.writeFloat32(b.R, true)
		w.writeFloat32(b.G, true)
		w.writeFloat32(b.B, true)
		w.writeFloat32(b.A, true)

	case "Quat":
		b := body.(QuatBody)
		w.writeFloat32(b.A, true)
		w.writeFloat32(b.B, true)
		w.writeFloat32(b.C, true)
		w.writeFloat32(b.D, true)

	case "Transform", "RemovedInstanceArray", "InventoryStack":
		b := body.(PropertyListBody)
		return writePropertyList(w, b.Properties, opts, doc)

	case "InventoryItem":
		b := body.(InventoryItemBody)
		return writeInventoryItemBody(w, b, opts, doc)

	default:
		return fmt.Errorf("struct_type %q: %w", structType, ErrUnknownTag)
	}
	return nil
}

// writeInventoryItemBody reproduces the source's "dirty hack": after
// writing the inner property, the enclosing length frame's counter is
// forced to (length-before-inner-write + 4) regardless of how many bytes
// the inner property actually occupied (§4.3, Open Question 3). The bytes
// themselves are still emitted in full; only the declared-length
// accounting is clamped.
func writeInventoryItemBody(w *writer, b InventoryItemBody, opts *EncodeOptions, doc *Document) error {
	w.writeString(b.Unk1, false)
	w.writeString(b.ItemName, true)
	w.writeString(b.LevelName, true)
	w.writeString(b.PathName, true)

	before := w.currentFrameLength()
	if err := writeProperty(w, b.Inner, opts, doc); err != nil {
		return err
	}
	w.setCurrentFrameLength(before + 4)
	return nil
}
