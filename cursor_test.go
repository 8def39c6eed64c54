// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	data := []byte{
		0x2a, 0x00, 0x00, 0x00, // i32 42
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // i64 1
		0xff, // i8 -1
	}
	r := newReader(data)

	v32, err := r.readInt32()
	if err != nil || v32 != 42 {
		t.Fatalf("readInt32() = %d, %v, want 42, nil", v32, err)
	}
	v64, err := r.readInt64()
	if err != nil || v64 != 1 {
		t.Fatalf("readInt64() = %d, %v, want 1, nil", v64, err)
	}
	v8, err := r.readInt8()
	if err != nil || v8 != -1 {
		t.Fatalf("readInt8() = %d, %v, want -1, nil", v8, err)
	}
	if r.bytesRead != len(data) {
		t.Errorf("bytesRead = %d, want %d", r.bytesRead, len(data))
	}
}

func TestReaderStringRoundTrip(t *testing.T) {
	tests := []string{"", "Hello", "ConveyorBeltMk1"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			w := newWriter()
			w.writeString(s, true)

			r := newReader(w.bytes())
			got, err := r.readString()
			if err != nil {
				t.Fatalf("readString() error = %v", err)
			}
			if got != s {
				t.Errorf("readString() = %q, want %q", got, s)
			}
		})
	}
}

func TestReaderStringBadTerminator(t *testing.T) {
	data := []byte{0x02, 0x00, 0x00, 0x00, 'x', 'y'} // length 2, second byte should be 0x00
	r := newReader(data)
	_, err := r.readString()
	if !errors.Is(err, ErrStringTerminator) {
		t.Fatalf("readString() error = %v, want ErrStringTerminator", err)
	}
}

func TestReaderTruncated(t *testing.T) {
	r := newReader([]byte{0x01, 0x02})
	_, err := r.readInt32()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("readInt32() error = %v, want ErrTruncated", err)
	}
}

func TestResetCount(t *testing.T) {
	r := newReader([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	if _, err := r.readInt32(); err != nil {
		t.Fatal(err)
	}
	r.resetCount()
	if r.bytesRead != 0 {
		t.Errorf("bytesRead after resetCount = %d, want 0", r.bytesRead)
	}
	if r.offset() != 4 {
		t.Errorf("offset() = %d, want 4 (resetCount must not move the cursor)", r.offset())
	}
}

func TestLengthFrameNesting(t *testing.T) {
	w := newWriter()
	w.pushLengthFrame()
	w.writeInt8(1, true)
	w.pushLengthFrame()
	w.writeInt8(2, true)
	w.writeInt8(3, true)
	inner := w.popLengthFrame()
	if inner != 2 {
		t.Fatalf("inner popLengthFrame() = %d, want 2", inner)
	}
	outer := w.popLengthFrame()
	// outer counted bytes: the 1 value byte plus the inner length prefix (4
	// bytes) plus the inner buffered bytes (2 bytes) = 7
	if outer != 7 {
		t.Fatalf("outer popLengthFrame() = %d, want 7", outer)
	}

	want := []byte{
		7, 0, 0, 0, // outer length
		1,          // outer's own byte
		2, 0, 0, 0, // inner length
		2, 3, // inner bytes
	}
	if !bytes.Equal(w.bytes(), want) {
		t.Errorf("bytes() = %v, want %v", w.bytes(), want)
	}
}

func TestUncountedWriteStillEmitsBytes(t *testing.T) {
	w := newWriter()
	w.pushLengthFrame()
	w.writeString("StructType", false) // discriminator, not counted
	w.writeInt8(9, true)
	length := w.popLengthFrame()
	if length != 1 {
		t.Fatalf("popLengthFrame() = %d, want 1 (uncounted bytes must not contribute)", length)
	}

	r := newReader(w.bytes())
	gotLen, err := r.readInt32()
	if err != nil || gotLen != 1 {
		t.Fatalf("declared length = %d, %v, want 1, nil", gotLen, err)
	}
	tag, err := r.readString()
	if err != nil || tag != "StructType" {
		t.Fatalf("tag = %q, %v, want StructType, nil", tag, err)
	}
	val, err := r.readInt8()
	if err != nil || val != 9 {
		t.Fatalf("value = %d, %v, want 9, nil", val, err)
	}
}
