// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "fmt"

// readHeader reads the fixed sequence of typed fields at the start of
// every save (§3, §6). save_date_time is always
// read as exactly 8 bytes: one decoder in the source used a
// platform-width format code here, another used an explicit 64-bit one;
// the format is 64-bit (Open Question 2, §9).
func readHeader(r *reader) (Header, error) {
	var h Header
	var err error

	if h.SaveHeaderType, err = r.readInt32(); err != nil {
		return Header{}, fmt.Errorf("save_header_type: %w", err)
	}
	if h.SaveVersion, err = r.readInt32(); err != nil {
		return Header{}, fmt.Errorf("save_version: %w", err)
	}
	if h.BuildVersion, err = r.readInt32(); err != nil {
		return Header{}, fmt.Errorf("build_version: %w", err)
	}
	if h.MapName, err = r.readString(); err != nil {
		return Header{}, fmt.Errorf("map_name: %w", err)
	}
	if h.MapOptions, err = r.readString(); err != nil {
		return Header{}, fmt.Errorf("map_options: %w", err)
	}
	if h.SessionName, err = r.readString(); err != nil {
		return Header{}, fmt.Errorf("session_name: %w", err)
	}
	if h.PlayDurationSecond, err = r.readInt32(); err != nil {
		return Header{}, fmt.Errorf("play_duration_seconds: %w", err)
	}
	if h.SaveDateTime, err = r.readInt64(); err != nil {
		return Header{}, fmt.Errorf("save_date_time: %w", err)
	}
	sv, err := r.readInt8()
	if err != nil {
		return Header{}, fmt.Errorf("session_visibility: %w", err)
	}
	h.SessionVisibility = sv

	return h, nil
}

// writeHeader writes the inverse of readHeader.
func writeHeader(w *writer, h Header) {
	w.writeInt32(h.SaveHeaderType, true)
	w.writeInt32(h.SaveVersion, true)
	w.writeInt32(h.BuildVersion, true)
	w.writeString(h.MapName, true)
	w.writeString(h.MapOptions, true)
	w.writeString(h.SessionName, true)
	w.writeInt32(h.PlayDurationSecond, true)
	w.writeInt64(h.SaveDateTime, true)
	w.writeInt8(h.SessionVisibility, true)
}
