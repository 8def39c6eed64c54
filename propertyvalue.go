// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

// Concrete payload types for Property.Value, one per type_tag (§3). This
// mirrors the teacher's one-struct-per-table-row-kind convention
// (ModuleTableRow, TypeRefTableRow, ...): a Property is a tagged variant and
// each tag's payload gets its own named Go type instead of an untyped map.

// IntValue is the payload of an IntProperty.
type IntValue struct {
	Value int32 `json:"value"`
}

// FloatValue is the payload of a FloatProperty.
type FloatValue struct {
	Value float32 `json:"value"`
}

// BoolValue is the payload of a BoolProperty. The value byte precedes the
// reserved byte on the wire (§4.3), the opposite order of every other
// reserved-then-value tag.
type BoolValue struct {
	Value bool `json:"value"`
}

// StrValue is the payload of a StrProperty.
type StrValue struct {
	Value string `json:"value"`
}

// NameValue is the payload of a NameProperty.
type NameValue struct {
	Value string `json:"value"`
}

// TextValue is the payload of a TextProperty: 13 opaque bytes plus a
// string (§3).
type TextValue struct {
	Unknown []byte `json:"unknown"`
	Value   string `json:"value"`
}

// ByteValue is the payload of a ByteProperty. Unk2Str holds the value
// when the tail is string-shaped; Unk2Byte holds it when the tail is a
// single signed byte. See Open Question 1 (§9/§10): the reader and writer
// use different, non-inverse predicates to choose which branch applies,
// and that asymmetry is preserved rather than unified.
type ByteValue struct {
	Unk1      string `json:"unk1"`
	Unk2IsStr bool   `json:"unk2_is_string"`
	Unk2Str   string `json:"unk2_string,omitempty"`
	Unk2Byte  int8   `json:"unk2_byte,omitempty"`
}

// EnumValue is the payload of an EnumProperty.
type EnumValue struct {
	Enum  string `json:"enum"`
	Value string `json:"value"`
}

// ObjectRefValue is a (level_name, path_name) pair, used both as
// ObjectProperty's payload and as ArrayProperty-of-ObjectProperty elements.
type ObjectRefValue struct {
	LevelName string `json:"level_name"`
	PathName  string `json:"path_name"`
}

// StructValue is the payload of a StructProperty: a struct_type tag, 17
// opaque bytes, then a body whose shape depends on struct_type (§3, §4.3).
type StructValue struct {
	StructType string      `json:"struct_type"`
	Unknown    []byte      `json:"unknown"`
	Body       interface{} `json:"body"`
}

// VectorBody is the body of a Vector or Rotator StructProperty.
type VectorBody struct {
	X, Y, Z float32
}

// BoxBody is the body of a Box StructProperty.
type BoxBody struct {
	Min     [3]float32 `json:"min"`
	Max     [3]float32 `json:"max"`
	IsValid int8       `json:"is_valid"`
}

// LinearColorBody is the body of a LinearColor StructProperty.
type LinearColorBody struct {
	R, G, B, A float32
}

// QuatBody is the body of a Quat StructProperty.
type QuatBody struct {
	A, B, C, D float32
}

// PropertyListBody is the body of a Transform, RemovedInstanceArray, or
// InventoryStack StructProperty: a nested property list terminated by the
// None sentinel (§3, §4.3).
type PropertyListBody struct {
	Properties []Property `json:"properties"`
}

// InventoryItemBody is the body of an InventoryItem StructProperty. It
// reads exactly one inner property and does not consume its own None
// sentinel; the enclosing struct's sentinel terminates both (§4.3).
type InventoryItemBody struct {
	Unk1      string   `json:"unk1"`
	ItemName  string   `json:"item_name"`
	LevelName string   `json:"level_name"`
	PathName  string   `json:"path_name"`
	Inner     Property `json:"inner"`
}

// ArrayValue is the payload of an ArrayProperty: an item_type tag and the
// items themselves, shaped per item_type (§3, §4.3). Exactly one of the
// three item slices/pointer is populated, selected by ItemType.
type ArrayValue struct {
	ItemType string           `json:"item_type"`
	Ints     []int32          `json:"ints,omitempty"`
	Objects  []ObjectRefValue `json:"objects,omitempty"`
	Structs  *StructArrayValue `json:"structs,omitempty"`
}

// StructArrayValue is the ArrayProperty-of-StructProperty payload: the
// struct-name/struct-type/inner-type prelude plus 17 opaque bytes, and one
// property list per element, each terminated by None (§3, §4.3).
type StructArrayValue struct {
	StructName   string     `json:"struct_name"`
	StructType   string     `json:"struct_type"`
	InnerType    string     `json:"inner_type"`
	Unknown      []byte     `json:"unknown"`
	DeclaredSize int32      `json:"declared_size"`
	Elements     [][]Property `json:"elements"`
}

// MapValue is the payload of a MapProperty (§3, §4.3).
type MapValue struct {
	KeyType   string     `json:"key_type"`
	ValueType string     `json:"value_type"`
	Entries   []MapEntry `json:"entries"`
}

// MapEntry is one (key, property-list) pair in a MapProperty.
type MapEntry struct {
	Key        int32      `json:"key"`
	Properties []Property `json:"properties"`
}
