package database

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"agenda/internal/fileutil"
)

type openStatus int

const (
	statusLoaded openStatus = iota
	statusCreated
	statusEmpty
	statusMalformed
	statusUnrecognized
)

// ErrUnrecognized marks a file that is valid JSON but cannot be read as a
// calendar document. Such a file is never overwritten.
var ErrUnrecognized = errors.New("database has an unrecognized layout")

// Open reads the document at path, tolerating a missing, empty or malformed
// file. A missing file is created with an empty document; any other file that
// cannot be read yields an empty document and is left untouched.
func Open(path string) (*Document, error) {
	doc, status, err := open(path)
	if status == statusUnrecognized {
		return doc, nil
	}
	return doc, err
}

// open returns the status of the file alongside the document. For
// statusUnrecognized the error wraps ErrUnrecognized and the document is
// empty.
func open(path string) (*Document, openStatus, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := New()
		if err := Write(path, doc); err != nil {
			return nil, statusCreated, fmt.Errorf("create database: %w", err)
		}
		return doc, statusCreated, nil
	}
	if err != nil {
		return nil, statusLoaded, fmt.Errorf("read database: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), statusEmpty, nil
	}
	doc, err := decode(data)
	if err != nil {
		if !json.Valid(data) {
			return New(), statusMalformed, nil
		}
		return New(), statusUnrecognized, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	return doc, statusLoaded, nil
}

// Read strictly loads the document at path. Missing files and invalid JSON
// are errors.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read database: %w", err)
	}
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse database %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Write replaces the file at path with the serialized document.
func Write(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write database: %w", err)
	}
	return nil
}

// Encode renders the document as indented JSON with a trailing newline.
// Non-ASCII and HTML-significant characters are written literally.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		doc = New()
	}
	doc.fillEmpty()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode database: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*Document, error) {
	doc := New()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	doc.fillEmpty()
	return doc, nil
}
