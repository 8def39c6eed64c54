// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

// Warning messages appended to Document.Warnings, mirroring the teacher's
// convention of naming each anomaly class as its own constant rather than
// formatting ad hoc strings at every call site.
const (
	// WarnLengthMismatch is the prefix used when a recomputed property or
	// struct length disagrees with its stored declared length in
	// authoring mode (§4.3, §4.7, §7 Kind 7).
	WarnLengthMismatch = "length mismatch"
)

// DecodeOptions controls decodeDocument's behavior. Decoding is always
// strict, whatever the field values: any Kind 1-6 error from §7 is fatal;
// there is no non-strict decode mode, since every decode-side error
// indicates data the codec cannot safely interpret.
type DecodeOptions struct {
	// Strict is reserved for future relaxation of decode-side checks; it
	// has no effect yet. Decode errors are always fatal (§7).
	Strict bool
}

// EncodeOptions controls encodeDocument's behavior.
type EncodeOptions struct {
	// Authoring downgrades Kind 7 length-disagreement errors (§7) to
	// Document.Warnings entries instead of failing the encode. Used when
	// the caller has hand-edited a decoded document and accepts that
	// declared lengths may now be stale (§4.7).
	Authoring bool
}

// HasWarnings reports whether any non-fatal length disagreements were
// recorded while encoding in authoring mode.
func (d *Document) HasWarnings() bool {
	return len(d.Warnings) > 0
}
