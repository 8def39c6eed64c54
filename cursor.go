// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader is a forward-only read cursor over an in-memory buffer. It tracks
// bytesRead so the entity codec can measure consumption against a declared
// entity length (§4.5); bytesRead is explicitly resettable.
type reader struct {
	data      []byte
	pos       int
	bytesRead int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

// resetCount zeroes the byte counter without moving the cursor.
func (r *reader) resetCount() {
	r.bytesRead = 0
}

func (r *reader) offset() int {
	return r.pos
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, r.pos, ErrNegativeResidual)
	}
	if r.remaining() < n {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, r.pos, ErrTruncated)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	r.bytesRead += n
	return b, nil
}

func (r *reader) readInt8() (int8, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *reader) readInt32() (int32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (r *reader) readInt64() (int64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (r *reader) readFloat32() (float32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// readReservedZeroInt32 reads an i32 that the format defines to always be
// zero (property header reserved slot, array/map preludes). A non-zero
// value is Kind 3 in the error taxonomy (§7).
func (r *reader) readReservedZeroInt32(context string) error {
	v, err := r.readInt32()
	if err != nil {
		return err
	}
	if v != 0 {
		return fmt.Errorf("%s: reserved field at offset %d is %d: %w", context, r.pos-4, v, ErrReservedNonZero)
	}
	return nil
}

// readReservedZeroByte reads a single byte that must be zero.
func (r *reader) readReservedZeroByte(context string) error {
	v, err := r.readInt8()
	if err != nil {
		return err
	}
	if v != 0 {
		return fmt.Errorf("%s: reserved byte at offset %d is %d: %w", context, r.pos-1, v, ErrReservedNonZero)
	}
	return nil
}

// readString reads a length-prefixed ASCII string (§4.2).
func (r *reader) readString() (string, error) {
	length, err := r.readInt32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	if length < 0 {
		return "", fmt.Errorf("string length %d at offset %d: %w", length, r.pos-4, ErrTruncated)
	}
	chars, err := r.readBytes(int(length) - 1)
	if err != nil {
		return "", err
	}
	term, err := r.readBytes(1)
	if err != nil {
		return "", err
	}
	if term[0] != 0x00 {
		return "", fmt.Errorf("string at offset %d does not end in NUL: %w", r.pos-1, ErrStringTerminator)
	}
	return string(chars), nil
}

// writer is a forward-only write sink with a nestable length-buffer stack
// (§4.1). Frames let the writer emit bytes in document order without a
// two-pass walk: everything written while a frame is open is buffered, and
// on pop the accumulated counted length is written as an i32 ahead of the
// buffered bytes.
type writer struct {
	out    []byte
	frames []*lengthFrame
}

type lengthFrame struct {
	buf    []byte
	length int32
}

func newWriter() *writer {
	return &writer{}
}

func (w *writer) bytes() []byte {
	return w.out
}

// write appends b to the innermost open frame (or the root sink), counting
// it toward the enclosing frame's declared length unless counted is false.
func (w *writer) write(b []byte, counted bool) {
	if len(w.frames) == 0 {
		w.out = append(w.out, b...)
		return
	}
	top := w.frames[len(w.frames)-1]
	top.buf = append(top.buf, b...)
	if counted {
		top.length += int32(len(b))
	}
}

func (w *writer) writeInt8(v int8, counted bool) {
	w.write([]byte{byte(v)}, counted)
}

func (w *writer) writeInt32(v int32, counted bool) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	w.write(b[:], counted)
}

func (w *writer) writeInt64(v int64, counted bool) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	w.write(b[:], counted)
}

func (w *writer) writeFloat32(v float32, counted bool) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	w.write(b[:], counted)
}

// writeString writes a length-prefixed ASCII string (§4.2).
func (w *writer) writeString(s string, counted bool) {
	if len(s) == 0 {
		w.writeInt32(0, counted)
		return
	}
	w.writeInt32(int32(len(s)+1), counted)
	w.write([]byte(s), counted)
	w.write([]byte{0x00}, counted)
}

// pushLengthFrame begins buffering subsequent writes into a new frame.
func (w *writer) pushLengthFrame() {
	w.frames = append(w.frames, &lengthFrame{})
}

// currentFrameLength returns the counted length accumulated so far in the
// innermost open frame. Used by the InventoryItem length-clamp quirk
// (§4.3) to snapshot and then force the counter.
func (w *writer) currentFrameLength() int32 {
	return w.frames[len(w.frames)-1].length
}

// setCurrentFrameLength overrides the innermost frame's counted length,
// used only for the InventoryItem "dirty hack" (§4.3, Open Question 3).
func (w *writer) setCurrentFrameLength(v int32) {
	w.frames[len(w.frames)-1].length = v
}

// popLengthFrame closes the innermost frame, writing its counted length as
// an i32 into the enclosing sink followed by its buffered bytes. Returns
// the length that was written.
func (w *writer) popLengthFrame() int32 {
	n := len(w.frames)
	top := w.frames[n-1]
	w.frames = w.frames[:n-1]
	w.writeInt32(top.length, true)
	w.write(top.buf, true)
	return top.length
}
