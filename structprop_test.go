// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"reflect"
	"testing"
)

func writeReadStructBody(t *testing.T, structType string, body interface{}) interface{} {
	t.Helper()
	w := newWriter()
	if err := writeStructBody(w, structType, body, nil, nil); err != nil {
		t.Fatalf("writeStructBody(%s) error = %v", structType, err)
	}
	r := newReader(w.bytes())
	got, err := readStructBody(r, structType)
	if err != nil {
		t.Fatalf("readStructBody(%s) error = %v", structType, err)
	}
	if r.remaining() != 0 {
		t.Errorf("readStructBody(%s) left %d unread bytes", structType, r.remaining())
	}
	return got
}

func TestStructBodyRoundTrip(t *testing.T) {
	tests := []struct {
		structType string
		body       interface{}
	}{
		{"Vector", VectorBody{X: 1, Y: 2, Z: 3}},
		{"Rotator", VectorBody{X: -1, Y: 0, Z: 0.5}},
		{"Box", BoxBody{Min: [3]float32{0, 0, 0}, Max: [3]float32{1, 1, 1}, IsValid: 1}},
		{"LinearColor", LinearColorBody{R: 1, G: 0, B: 0, A: 1}},
		{"Quat", QuatBody{A: 0, B: 0, C: 0, D: 1}},
		{
			"Transform",
			PropertyListBody{Properties: []Property{
				{Name: "mScale", TypeTag: "FloatProperty", DeclaredLength: 4, Value: FloatValue{Value: 1}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.structType, func(t *testing.T) {
			got := writeReadStructBody(t, tt.structType, tt.body)
			if !reflect.DeepEqual(got, tt.body) {
				t.Errorf("round trip = %#v, want %#v", got, tt.body)
			}
		})
	}
}

func TestInventoryItemLengthClamp(t *testing.T) {
	inner := Property{
		Name:           "mStackSize",
		TypeTag:        "IntProperty",
		DeclaredLength: 4,
		Value:          IntValue{Value: 50},
	}
	body := InventoryItemBody{
		Unk1:      "None",
		ItemName:  "Desc_IronPlate_C",
		LevelName: "Persistent_Level",
		PathName:  "Persistent_Level.Foo",
		Inner:     inner,
	}

	w := newWriter()
	w.pushLengthFrame()
	if err := writeInventoryItemBody(w, body, nil, nil); err != nil {
		t.Fatalf("writeInventoryItemBody() error = %v", err)
	}
	length := w.popLengthFrame()

	// The four strings are counted normally; the inner property, however
	// large, must contribute exactly 4 to the enclosing counter.
	wantLength := int32(0)
	scratch := newWriter()
	scratch.pushLengthFrame()
	scratch.writeString(body.Unk1, false)
	scratch.writeString(body.ItemName, true)
	scratch.writeString(body.LevelName, true)
	scratch.writeString(body.PathName, true)
	wantLength = scratch.popLengthFrame() + 4

	if length != wantLength {
		t.Fatalf("enclosing length = %d, want %d (strings + clamped 4)", length, wantLength)
	}

	// But the actual bytes on the wire still contain the full inner
	// property, not a truncated 4-byte stub.
	r := newReader(w.bytes())
	gotLen, err := r.readInt32()
	if err != nil || gotLen != length {
		t.Fatalf("declared length on wire = %d, %v, want %d, nil", gotLen, err, length)
	}
	if _, err := r.readString(); err != nil { // Unk1
		t.Fatal(err)
	}
	if _, err := r.readString(); err != nil { // ItemName
		t.Fatal(err)
	}
	if _, err := r.readString(); err != nil { // LevelName
		t.Fatal(err)
	}
	if _, err := r.readString(); err != nil { // PathName
		t.Fatal(err)
	}
	gotInner, ok, err := readProperty(r)
	if err != nil || !ok {
		t.Fatalf("readProperty() = %v, %v, %v, want a property", gotInner, ok, err)
	}
	if gotInner.Value.(IntValue) != inner.Value.(IntValue) {
		t.Errorf("inner value = %+v, want %+v", gotInner.Value, inner.Value)
	}
	if r.remaining() != 0 {
		t.Errorf("%d unread bytes remain; inner property bytes were not fully written", r.remaining())
	}
}

func TestStructValueUnknownType(t *testing.T) {
	r := newReader(nil)
	_, err := readStructBody(r, "FutureStruct")
	if err == nil {
		t.Fatal("readStructBody() with unknown struct_type returned nil error")
	}
}
