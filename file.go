// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package savegame

import (
	"fmt"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/satisfactory-tools/savegame/log"
)

// minSaveSize is the smallest a well-formed save can be: the fixed header
// fields with every string empty, followed by a zero object_count and a
// zero entity_count.
const minSaveSize = 3*4 + 4*4 + 8 + 1 + 4 + 4

// ErrInvalidSaveSize is returned when the input is shorter than
// minSaveSize.
var ErrInvalidSaveSize = fmt.Errorf("savegame: input smaller than minimum header size")

// A File represents an open save-game container: the raw bytes it was
// parsed from (or will be written to) and the decoded Document.
type File struct {
	Document *Document

	data   mmap.MMap
	rawBuf []byte
	size   uint32
	f      *os.File
	opts   *Options
	logger *log.Helper
}

// Options configures parsing and encoding.
type Options struct {
	// Decode controls decode-side relaxations (currently unused; every
	// decode error is fatal per §7).
	Decode DecodeOptions

	// Encode controls encode-side relaxations, notably authoring mode.
	Encode EncodeOptions

	// A custom logger.
	Logger log.Logger
}

func newLogger(opts *Options) *log.Helper {
	if opts != nil && opts.Logger != nil {
		return log.NewHelper(opts.Logger)
	}
	base := log.NewStdLogger(os.Stdout)
	return log.NewHelper(log.NewFilter(base, log.FilterLevel(log.LevelError)))
}

// New instantiates a File given a path to a .sav file, memory-mapping it
// for reading rather than copying it into the Go heap.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := &File{f: f, data: data, size: uint32(len(data))}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}
	file.logger = newLogger(file.opts)
	return file, nil
}

// NewBytes instantiates a File given an in-memory buffer.
func NewBytes(data []byte, opts *Options) (*File, error) {
	file := &File{rawBuf: data, size: uint32(len(data))}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}
	file.logger = newLogger(file.opts)
	return file, nil
}

// Close releases the memory-mapped region and underlying file handle, if
// any. Safe to call on a File constructed with NewBytes.
func (f *File) Close() error {
	if f.data != nil {
		_ = f.data.Unmap()
	}
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

func (f *File) bytes() []byte {
	if f.data != nil {
		return f.data
	}
	return f.rawBuf
}

// Decode parses the input bytes into f.Document.
func (f *File) Decode() error {
	buf := f.bytes()
	if len(buf) < minSaveSize {
		return ErrInvalidSaveSize
	}

	doc, err := decodeDocument(buf, &f.opts.Decode)
	if err != nil {
		f.logger.Errorf("decode failed: %v", err)
		return err
	}
	f.Document = doc
	return nil
}

// Encode serializes f.Document and writes it to w. Decode or an assigned
// Document must happen first.
func (f *File) Encode(w io.Writer) error {
	if f.Document == nil {
		return fmt.Errorf("savegame: Encode called before Decode or Document assignment")
	}

	out, err := encodeDocument(f.Document, &f.opts.Encode)
	if err != nil {
		f.logger.Errorf("encode failed: %v", err)
		return err
	}

	if f.Document.HasWarnings() {
		for _, msg := range f.Document.Warnings {
			f.logger.Warnf("%s", msg)
		}
	}

	_, err = w.Write(out)
	return err
}
