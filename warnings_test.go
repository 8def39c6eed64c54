// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import "testing"

func TestDocumentHasWarnings(t *testing.T) {
	d := &Document{}
	if d.HasWarnings() {
		t.Fatal("HasWarnings() = true on a fresh document")
	}
	d.Warnings = append(d.Warnings, WarnLengthMismatch+": property foo")
	if !d.HasWarnings() {
		t.Fatal("HasWarnings() = false after appending a warning")
	}
}
