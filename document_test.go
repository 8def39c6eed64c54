// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func sampleDocument() *Document {
	return &Document{
		Header: Header{
			SaveHeaderType:     8,
			SaveVersion:        29,
			BuildVersion:       194770,
			MapName:            "Persistent_Level",
			SessionName:        "Save01",
			PlayDurationSecond: 120,
			SaveDateTime:       123456789,
			SessionVisibility:  0,
		},
		Objects: []Object{
			{
				Kind:      KindActor,
				ClassName: "Build_ConveyorBeltMk1_C",
				LevelName: "Persistent_Level",
				PathName:  "Persistent_Level.Foo",
				Entity: Entity{
					HasNames:  true,
					LevelName: "Persistent_Level",
					PathName:  "Persistent_Level.Foo",
					Properties: []Property{
						{Name: "mHealth", TypeTag: "IntProperty", DeclaredLength: 4, Value: IntValue{Value: 100}},
					},
					TrailingBytes: []byte{0x01},
				},
			},
			{
				Kind:          KindReference,
				ClassName:     "BP_GameMode_C",
				LevelName:     "Persistent_Level",
				PathName:      "Persistent_Level.Bar",
				OuterPathName: "Persistent_Level",
				Entity: Entity{
					Properties: nil,
				},
			},
		},
		TrailingBytes: []byte{0xca, 0xfe},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := sampleDocument()

	out, err := encodeDocument(doc, &EncodeOptions{})
	if err != nil {
		t.Fatalf("encodeDocument() error = %v", err)
	}

	got, err := decodeDocument(out, &DecodeOptions{})
	if err != nil {
		t.Fatalf("decodeDocument() error = %v", err)
	}

	if got.Header != doc.Header {
		t.Errorf("header = %+v, want %+v", got.Header, doc.Header)
	}
	if !reflect.DeepEqual(got.Objects, doc.Objects) {
		t.Errorf("objects = %+v, want %+v", got.Objects, doc.Objects)
	}
	if !bytes.Equal(got.TrailingBytes, doc.TrailingBytes) {
		t.Errorf("trailing bytes = %v, want %v", got.TrailingBytes, doc.TrailingBytes)
	}

	// Byte-for-byte: re-encoding the decoded document reproduces the same
	// stream (§8 universal invariant).
	out2, err := encodeDocument(got, &EncodeOptions{})
	if err != nil {
		t.Fatalf("re-encodeDocument() error = %v", err)
	}
	if !bytes.Equal(out, out2) {
		t.Error("encode(decode(F)) != F")
	}
}

// TestDocumentJSONRoundTrip exercises the decode -> JSON -> encode path the
// savegame CLI's "encode" subcommand relies on: a Document marshaled to
// JSON and unmarshaled back must encode to the identical bytes, which
// requires both the tagged-union Value/Body fields and the Actor
// names/children header to survive the trip (§6).
func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := sampleDocument()

	out, err := encodeDocument(doc, &EncodeOptions{})
	if err != nil {
		t.Fatalf("encodeDocument() error = %v", err)
	}
	decoded, err := decodeDocument(out, &DecodeOptions{})
	if err != nil {
		t.Fatalf("decodeDocument() error = %v", err)
	}

	raw, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var reloaded Document
	if err := json.Unmarshal(raw, &reloaded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	reencoded, err := encodeDocument(&reloaded, &EncodeOptions{})
	if err != nil {
		t.Fatalf("encodeDocument() on JSON-reloaded document error = %v", err)
	}
	if !bytes.Equal(out, reencoded) {
		t.Error("encode(json.Unmarshal(json.Marshal(decode(F)))) != F")
	}
}

func TestDocumentTruncatedInputIsFatal(t *testing.T) {
	doc := sampleDocument()
	out, err := encodeDocument(doc, &EncodeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	// Cut one byte into the last entity: dropping only document trailing
	// bytes would still decode, since everything after the last entity is
	// taken verbatim as TrailingBytes.
	cut := len(out) - len(doc.TrailingBytes) - 1
	if _, err := decodeDocument(out[:cut], &DecodeOptions{}); err == nil {
		t.Fatal("decodeDocument() on truncated input returned nil error")
	}
}

func TestObjectTableEntityCountMismatchViaDocument(t *testing.T) {
	objects := []Object{{Kind: KindReference}}
	w := newWriter()
	writeHeader(w, Header{})
	w.writeInt32(int32(len(objects)), true)
	for _, obj := range objects {
		if err := writeObject(w, obj); err != nil {
			t.Fatal(err)
		}
	}
	w.writeInt32(int32(len(objects)) + 1, true) // deliberately wrong entity_count

	if _, err := decodeDocument(w.bytes(), &DecodeOptions{}); !errors.Is(err, ErrCountMismatch) {
		t.Fatalf("decodeDocument() with mismatched counts error = %v, want ErrCountMismatch", err)
	}
}
