// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satisfactory-tools/savegame"
)

var (
	outPath   string
	pretty    bool
	authoring bool
	verbose   bool
)

func prettyPrint(buf []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return out.String()
}

func defaultOutputPath(in, newExt string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + newExt
}

func runDecode(cmd *cobra.Command, args []string) error {
	in := args[0]

	f, err := savegame.New(in, &savegame.Options{})
	if err != nil {
		return fmt.Errorf("opening %s: %w", in, err)
	}
	defer f.Close()

	if err := f.Decode(); err != nil {
		return fmt.Errorf("decoding %s: %w", in, err)
	}

	var buf []byte
	if pretty {
		raw, err := json.Marshal(f.Document)
		if err != nil {
			return err
		}
		buf = []byte(prettyPrint(raw))
	} else {
		buf, err = json.Marshal(f.Document)
		if err != nil {
			return err
		}
	}

	out := outPath
	if out == "" {
		out = defaultOutputPath(in, ".json")
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "writing %s\n", out)
	}
	return os.WriteFile(out, buf, 0o644)
}

func runEncode(cmd *cobra.Command, args []string) error {
	in := args[0]

	raw, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	var doc savegame.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", in, err)
	}

	out := outPath
	if out == "" {
		out = defaultOutputPath(in, ".sav")
	}
	w, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer w.Close()

	f, err := savegame.NewBytes(nil, &savegame.Options{
		Encode: savegame.EncodeOptions{Authoring: authoring},
	})
	if err != nil {
		return err
	}
	f.Document = &doc

	if verbose {
		fmt.Fprintf(os.Stderr, "writing %s\n", out)
	}
	if err := f.Encode(w); err != nil {
		return fmt.Errorf("encoding %s: %w", in, err)
	}
	if doc.HasWarnings() {
		for _, msg := range doc.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "savegame",
		Short: "A Satisfactory save-game codec",
		Long:  "Decodes and encodes Satisfactory .sav files to and from a structured JSON document.",
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("savegame version 0.1.0")
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <input.sav>",
		Short: "Decode a .sav file into a structured JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecode,
	}
	decodeCmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default: input with extension swapped)")
	decodeCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")

	encodeCmd := &cobra.Command{
		Use:   "encode <input.json>",
		Short: "Encode a structured JSON document back into a .sav file",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}
	encodeCmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default: input with extension swapped)")
	encodeCmd.Flags().BoolVar(&authoring, "authoring", false, "downgrade length-mismatch errors to warnings")

	rootCmd.AddCommand(versionCmd, decodeCmd, encodeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
