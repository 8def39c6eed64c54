// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// noneSentinel is the literal property name that terminates every
// property-list context (§3, invariant 3).
const noneSentinel = "None"

// readPropertyList reads properties until the None sentinel is consumed,
// the pattern shared by entity bodies, StructProperty nested lists
// (Transform, RemovedInstanceArray, InventoryStack), ArrayProperty-of-
// StructProperty elements, and MapProperty entries.
func readPropertyList(r *reader) ([]Property, error) {
	var props []Property
	for {
		p, ok, err := readProperty(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			return props, nil
		}
		props = append(props, p)
	}
}

// readProperty reads one named, typed property. ok is false when name is
// the None sentinel, in which case the caller's list loop ends and p is
// the zero value.
func readProperty(r *reader) (p Property, ok bool, err error) {
	name, err := r.readString()
	if err != nil {
		return Property{}, false, fmt.Errorf("property name: %w", err)
	}
	if name == noneSentinel {
		return Property{}, false, nil
	}

	typeTag, err := r.readString()
	if err != nil {
		return Property{}, false, fmt.Errorf("property %q: type tag: %w", name, err)
	}
	declaredLength, err := r.readInt32()
	if err != nil {
		return Property{}, false, fmt.Errorf("property %q: declared length: %w", name, err)
	}
	if err := r.readReservedZeroInt32(fmt.Sprintf("property %q (%s) header", name, typeTag)); err != nil {
		return Property{}, false, err
	}

	payloadStart := r.bytesRead

	value, err := readPropertyValue(r, typeTag)
	if err != nil {
		return Property{}, false, fmt.Errorf("property %q (%s): %w", name, typeTag, err)
	}

	p = Property{
		Name:           name,
		TypeTag:        typeTag,
		DeclaredLength: declaredLength,
		Value:          value,
	}
	_ = payloadStart // consumed bytes are accounted for by the caller via r.bytesRead deltas where it matters (entity residual, §4.5)
	return p, true, nil
}

// readPropertyValue dispatches on type_tag to one of the ~11 sub-grammars
// (§3, §4.3). Unknown tags are always fatal (§7 Kind 6).
func readPropertyValue(r *reader, typeTag string) (interface{}, error) {
	switch typeTag {
	case "IntProperty":
		if err := r.readReservedZeroByte("IntProperty"); err != nil {
			return nil, err
		}
		v, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		return IntValue{Value: v}, nil

	case "FloatProperty":
		if err := r.readReservedZeroByte("FloatProperty"); err != nil {
			return nil, err
		}
		v, err := r.readFloat32()
		if err != nil {
			return nil, err
		}
		return FloatValue{Value: v}, nil

	case "BoolProperty":
		// Value byte precedes the reserved byte for BoolProperty (§4.3).
		v, err := r.readInt8()
		if err != nil {
			return nil, err
		}
		if err := r.readReservedZeroByte("BoolProperty"); err != nil {
			return nil, err
		}
		return BoolValue{Value: v != 0}, nil

	case "StrProperty":
		if err := r.readReservedZeroByte("StrProperty"); err != nil {
			return nil, err
		}
		v, err := r.readString()
		if err != nil {
			return nil, err
		}
		return StrValue{Value: v}, nil

	case "NameProperty":
		if err := r.readReservedZeroByte("NameProperty"); err != nil {
			return nil, err
		}
		v, err := r.readString()
		if err != nil {
			return nil, err
		}
		return NameValue{Value: v}, nil

	case "TextProperty":
		if err := r.readReservedZeroByte("TextProperty"); err != nil {
			return nil, err
		}
		unk, err := r.readBytes(13)
		if err != nil {
			return nil, err
		}
		v, err := r.readString()
		if err != nil {
			return nil, err
		}
		return TextValue{Unknown: append([]byte(nil), unk...), Value: v}, nil

	case "ByteProperty":
		return readByteValue(r)

	case "EnumProperty":
		enum, err := r.readString()
		if err != nil {
			return nil, err
		}
		if err := r.readReservedZeroByte("EnumProperty"); err != nil {
			return nil, err
		}
		v, err := r.readString()
		if err != nil {
			return nil, err
		}
		return EnumValue{Enum: enum, Value: v}, nil

	case "ObjectProperty":
		if err := r.readReservedZeroByte("ObjectProperty"); err != nil {
			return nil, err
		}
		level, err := r.readString()
		if err != nil {
			return nil, err
		}
		path, err := r.readString()
		if err != nil {
			return nil, err
		}
		return ObjectRefValue{LevelName: level, PathName: path}, nil

	case "StructProperty":
		return readStructValue(r)

	case "ArrayProperty":
		return readArrayValue(r)

	case "MapProperty":
		return readMapValue(r)

	default:
		return nil, fmt.Errorf("type tag %q: %w", typeTag, ErrUnknownTag)
	}
}

// readByteValue reads a ByteProperty payload. The reader branches on
// unk1 == "None" (Open Question 1, §9): that predicate, not its inverse,
// decides whether the tail is byte-shaped or string-shaped.
func readByteValue(r *reader) (interface{}, error) {
	unk1, err := r.readString()
	if err != nil {
		return nil, err
	}
	if err := r.readReservedZeroByte("ByteProperty"); err != nil {
		return nil, err
	}
	if unk1 == "None" {
		b, err := r.readInt8()
		if err != nil {
			return nil, err
		}
		return ByteValue{Unk1: unk1, Unk2IsStr: false, Unk2Byte: b}, nil
	}
	s, err := r.readString()
	if err != nil {
		return nil, err
	}
	return ByteValue{Unk1: unk1, Unk2IsStr: true, Unk2Str: s}, nil
}

// writePropertyList writes each property in order followed by the None
// sentinel.
func writePropertyList(w *writer, props []Property, opts *EncodeOptions, doc *Document) error {
	for _, p := range props {
		if err := writeProperty(w, p, opts, doc); err != nil {
			return err
		}
	}
	writeNone(w)
	return nil
}

func writeNone(w *writer) {
	w.writeString(noneSentinel, true)
}

// writeProperty writes the inverse of readProperty. The payload is
// enclosed in a length frame so declared_length is recomputed, not trusted
// (§4.3); a mismatch against the property's stored DeclaredLength is
// ErrLengthMismatch, downgraded to a Document.Warnings entry in authoring
// mode (§4.7, §7 Kind 7).
func writeProperty(w *writer, p Property, opts *EncodeOptions, doc *Document) error {
	w.writeString(p.Name, true)
	w.writeString(p.TypeTag, true)

	w.pushLengthFrame()
	w.writeInt32(0, false) // reserved header slot, not counted (§4.3)

	if err := writePropertyValue(w, p.TypeTag, p.Value, opts, doc); err != nil {
		return fmt.Errorf("property %q (%s): %w", p.Name, p.TypeTag, err)
	}

	length := w.popLengthFrame()
	if length != p.DeclaredLength {
		msg := fmt.Sprintf("property %q (%s): recomputed length %d != declared length %d",
			p.Name, p.TypeTag, length, p.DeclaredLength)
		if opts != nil && opts.Authoring {
			doc.Warnings = append(doc.Warnings, WarnLengthMismatch+": "+msg)
		} else {
			return fmt.Errorf("%s: %w", msg, ErrLengthMismatch)
		}
	}
	return nil
}

func writePropertyValue(w *writer, typeTag string, value interface{}, opts *EncodeOptions, doc *Document) error {
	switch typeTag {
	case "IntProperty":
		v := value.(IntValue)
		w.writeInt8(0, false)
		w.writeInt32(v.Value, true)

	case "FloatProperty":
		v := value.(FloatValue)
		w.writeInt8(0, false)
		w.writeFloat32(v.Value, true)

	case "BoolProperty":
		v := value.(BoolValue)
		var b int8
		if v.Value {
			b = 1
		}
		w.writeInt8(b, false)
		w.writeInt8(0, false)

	case "StrProperty":
		v := value.(StrValue)
		w.writeInt8(0, false)
		w.writeString(v.Value, true)

	case "NameProperty":
		v := value.(NameValue)
		w.writeInt8(0, false)
		w.writeString(v.Value, true)

	case "TextProperty":
		v := value.(TextValue)
		w.writeInt8(0, false)
		w.write(v.Unknown, true)
		w.writeString(v.Value, true)

	case "ByteProperty":
		v := value.(ByteValue)
		w.writeString(v.Unk1, false)
		w.writeInt8(0, false)
		// The writer branches on unk1 == "EGamePhase" (Open Question 1),
		// independent of Unk2IsStr as recorded by the reader's own
		// predicate — both branches are reproduced exactly as observed.
		if v.Unk1 == "EGamePhase" {
			w.writeString(v.Unk2Str, true)
		} else {
			w.writeInt8(v.Unk2Byte, true)
		}

	case "EnumProperty":
		v := value.(EnumValue)
		w.writeString(v.Enum, false)
		w.writeInt8(0, false)
		w.writeString(v.Value, true)

	case "ObjectProperty":
		v := value.(ObjectRefValue)
		w.writeInt8(0, false)
		w.writeString(v.LevelName, true)
		w.writeString(v.PathName, true)

	case "StructProperty":
		return writeStructValue(w, value.(StructValue), opts, doc)

	case "ArrayProperty":
		return writeArrayValue(w, value.(ArrayValue), opts, doc)

	case "MapProperty":
		return writeMapValue(w, value.(MapValue), opts, doc)

	default:
		return fmt.Errorf("type tag %q: %w", typeTag, ErrUnknownTag)
	}
	return nil
}
