package savegame

// Fuzz is a go-fuzz entry point (grounded on the teacher's parse fuzz
// harness): decode arbitrary bytes, and on a successful decode, re-encode
// and require the round trip to be byte-identical. Any mismatch is a bug
// in the codec, not in the input.
func Fuzz(data []byte) int {
	f, err := NewBytes(data, &Options{})
	if err != nil {
		return 0
	}
	if err := f.Decode(); err != nil {
		return 0
	}

	out, err := encodeDocument(f.Document, &EncodeOptions{})
	if err != nil {
		return 0
	}
	if len(out) != len(data) {
		panic("savegame: round-trip length mismatch")
	}
	for i := range out {
		if out[i] != data[i] {
			panic("savegame: round-trip byte mismatch")
		}
	}
	return 1
}
