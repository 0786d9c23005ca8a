package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/errors"
)

// ReadJSON decodes a workspace document from r.
//
// ReadJSON returns an error with code INVALID_FORMAT if:
//   - The JSON is malformed or invalid
//   - A payload has no kind or does not match its kind
//
// and INVALID_MODE if the mode is not a known arrangement mode, and
// INVALID_CARD_ID for a card with an unusable id. Duplicate ids are not an
// error here; they are resolved when the document is loaded into a
// workspace. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode workspace")
	}

	doc := &Document{
		Viewport: data.Viewport,
		Padding:  data.Padding,
		Focused:  data.Focused,
		Cards:    make([]card.Card, 0, len(data.Cards)),
	}
	if err := errors.ValidateViewport(doc.Viewport.W, doc.Viewport.H); err != nil {
		return nil, err
	}
	if data.Mode != "" {
		m, err := arrange.ParseMode(data.Mode)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidMode, err, "mode %q", data.Mode)
		}
		doc.Mode = m
	}
	for i, c := range data.Cards {
		if err := errors.ValidateCardID(c.ID); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		doc.Cards = append(doc.Cards, fromJSON(c))
	}
	return doc, nil
}

// ImportJSON reads a workspace document from the file at path. A missing file
// yields FILE_NOT_FOUND.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workspace file %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteJSON encodes doc as indented JSON to w. The output can be read back
// with [ReadJSON].
func WriteJSON(doc *Document, w io.Writer) error {
	out := document{
		Viewport: doc.Viewport,
		Padding:  doc.Padding,
		Mode:     doc.Mode.String(),
		Focused:  doc.Focused,
		Cards:    make([]cardJSON, len(doc.Cards)),
	}
	for i, c := range doc.Cards {
		out.Cards[i] = toJSON(c)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
