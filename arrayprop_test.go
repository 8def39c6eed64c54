// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"reflect"
	"testing"
)

func TestArrayValueIntRoundTrip(t *testing.T) {
	v := ArrayValue{ItemType: "IntProperty", Ints: []int32{1, 2, 3}}

	w := newWriter()
	if err := writeArrayValue(w, v, nil, nil); err != nil {
		t.Fatalf("writeArrayValue() error = %v", err)
	}
	r := newReader(w.bytes())
	got, err := readArrayValue(r)
	if err != nil {
		t.Fatalf("readArrayValue() error = %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("round trip = %#v, want %#v", got, v)
	}
}

func TestArrayValueObjectRoundTrip(t *testing.T) {
	v := ArrayValue{ItemType: "ObjectProperty", Objects: []ObjectRefValue{
		{LevelName: "Persistent_Level", PathName: "Foo.Bar"},
		{LevelName: "Persistent_Level", PathName: "Foo.Baz"},
	}}

	w := newWriter()
	if err := writeArrayValue(w, v, nil, nil); err != nil {
		t.Fatalf("writeArrayValue() error = %v", err)
	}
	r := newReader(w.bytes())
	got, err := readArrayValue(r)
	if err != nil {
		t.Fatalf("readArrayValue() error = %v", err)
	}
	if !reflect.DeepEqual(got, v) {
		t.Errorf("round trip = %#v, want %#v", got, v)
	}
}

func TestArrayOfStructSizeMatchesTwoElements(t *testing.T) {
	elements := [][]Property{
		{{Name: "mAmount", TypeTag: "IntProperty", DeclaredLength: 4, Value: IntValue{Value: 1}}},
		{{Name: "mAmount", TypeTag: "IntProperty", DeclaredLength: 4, Value: IntValue{Value: 2}}},
	}

	sv := StructArrayValue{
		StructName: "mInventory",
		StructType: "InventoryItem",
		InnerType:  "StructProperty",
		Unknown:    make([]byte, 17),
		Elements:   elements,
	}

	// Independently compute struct_size's invariant (§8 scenario 5): it
	// must equal the total bytes of the element property lists alone,
	// each terminated by None, with none of the prelude fields (reserved
	// i32, inner_type, unknown bytes) contributing anything.
	probe := newWriter()
	for _, props := range sv.Elements {
		if err := writePropertyList(probe, props, nil, nil); err != nil {
			t.Fatal(err)
		}
	}
	wantSize := int32(len(probe.bytes()))
	sv.DeclaredSize = wantSize

	v := ArrayValue{ItemType: "StructProperty", Structs: &sv}
	w := newWriter()
	if err := writeArrayValue(w, v, nil, nil); err != nil {
		t.Fatalf("writeArrayValue() error = %v", err)
	}

	r := newReader(w.bytes())
	got, err := readArrayValue(r)
	if err != nil {
		t.Fatalf("readArrayValue() error = %v", err)
	}
	if got.Structs == nil {
		t.Fatal("readArrayValue() returned nil Structs")
	}
	if got.Structs.DeclaredSize != wantSize {
		t.Errorf("struct_size = %d, want %d (bytes of the two element property lists)", got.Structs.DeclaredSize, wantSize)
	}
	if len(got.Structs.Elements) != 2 {
		t.Fatalf("elements = %d, want 2", len(got.Structs.Elements))
	}
	if !reflect.DeepEqual(got.Structs.Elements, sv.Elements) {
		t.Errorf("elements = %#v, want %#v", got.Structs.Elements, sv.Elements)
	}
}

func TestArrayValueUnknownItemType(t *testing.T) {
	v := ArrayValue{ItemType: "SomeFutureProperty"}
	w := newWriter()
	err := writeArrayValue(w, v, nil, nil)
	if err == nil {
		t.Fatal("writeArrayValue() with unknown item_type returned nil error")
	}
}
