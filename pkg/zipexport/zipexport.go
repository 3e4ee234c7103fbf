// Package zipexport builds in-memory zip archives for admin data exports.
package zipexport

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// File is a named archive entry.
type File struct {
	Name string
	Data []byte
}

// Archive writes the files into a zip and returns its bytes.
func Archive(files []File) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("zipexport: create %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("zipexport: write %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zipexport: close: %w", err)
	}
	return buf.Bytes(), nil
}
