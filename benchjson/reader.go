// Copyright 2025 The gbenchdiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"encoding/json"
	"fmt"
	"os"
)

// A FileError reports a results file that could not be opened.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// A FormatError reports a results file whose content is not a
// well-formed JSON document.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %s", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ReadFile parses the results document at path.
//
// It returns a *FileError when the file cannot be opened and a
// *FormatError when its content does not parse. The file handle is
// released on every return path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	return &doc, nil
}
