// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// readMapValue reads a MapProperty payload: key_type, value_type, five
// reserved zero bytes, count, then count entries of (key: i32,
// property-list terminated by None) (§3, §4.3).
func readMapValue(r *reader) (MapValue, error) {
	keyType, err := r.readString()
	if err != nil {
		return MapValue{}, fmt.Errorf("key_type: %w", err)
	}
	valueType, err := r.readString()
	if err != nil {
		return MapValue{}, fmt.Errorf("value_type: %w", err)
	}
	for i := 0; i < 5; i++ {
		if err := r.readReservedZeroByte("MapProperty"); err != nil {
			return MapValue{}, err
		}
	}
	count, err := r.readInt32()
	if err != nil {
		return MapValue{}, fmt.Errorf("count: %w", err)
	}
	if count < 0 {
		return MapValue{}, fmt.Errorf("map count %d: %w", count, ErrNegativeResidual)
	}

	entries := make([]MapEntry, count)
	for i := range entries {
		key, err := r.readInt32()
		if err != nil {
			return MapValue{}, fmt.Errorf("entry %d: key: %w", i, err)
		}
		props, err := readPropertyList(r)
		if err != nil {
			return MapValue{}, fmt.Errorf("entry %d: %w", i, err)
		}
		entries[i] = MapEntry{Key: key, Properties: props}
	}

	return MapValue{KeyType: keyType, ValueType: valueType, Entries: entries}, nil
}

// writeMapValue writes the inverse of readMapValue. The format's "five
// reserved zero bytes" is not five uncounted bytes: it is one uncounted
// zero byte followed by a counted i32 = 0, an idiosyncrasy verified
// directly against the source's write path and preserved verbatim rather
// than "fixed" (§4.3, Open Question 4).
func writeMapValue(w *writer, v MapValue, opts *EncodeOptions, doc *Document) error {
	w.writeString(v.KeyType, false)
	w.writeString(v.ValueType, false)

	w.writeInt8(0, false)
	w.writeInt32(0, true)

	w.writeInt32(int32(len(v.Entries)), true)
	for i, e := range v.Entries {
		w.writeInt32(e.Key, true)
		if err := writePropertyList(w, e.Properties, opts, doc); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}
