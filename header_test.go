// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		SaveHeaderType:     8,
		SaveVersion:        29,
		BuildVersion:       194770,
		MapName:            "Persistent_Level",
		MapOptions:         "",
		SessionName:        "Save01",
		PlayDurationSecond: 3600,
		SaveDateTime:       133123456789012345,
		SessionVisibility:  1,
	}

	w := newWriter()
	writeHeader(w, h)

	r := newReader(w.bytes())
	got, err := readHeader(r)
	if err != nil {
		t.Fatalf("readHeader() error = %v", err)
	}
	if got != h {
		t.Errorf("round trip = %+v, want %+v", got, h)
	}
}

func TestHeaderSaveDateTimeIsEightBytes(t *testing.T) {
	// §9 Open Question 2: save_date_time must always occupy exactly 8
	// bytes regardless of host platform width.
	h := Header{SaveDateTime: 1}
	w := newWriter()
	writeHeader(w, h)

	// 3 i32 fields + 3 empty strings (4 bytes each) + 1 i32 duration = 7
	// fields of 4 bytes before save_date_time.
	offset := 3*4 + 3*4 + 4
	region := w.bytes()[offset : offset+8]
	want := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	for i := range want {
		if region[i] != want[i] {
			t.Fatalf("save_date_time bytes = %v, want %v", region, want)
		}
	}
}
