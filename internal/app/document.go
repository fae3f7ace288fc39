package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/engine/cursor"
	"github.com/dshills/sneak/internal/engine/history"
)

// Document is an open file with its cursor, jump list and undo history.
type Document struct {
	// Path is the file path (empty for scratch buffers).
	Path string

	// Name is the display name (file name or "Untitled").
	Name string

	Buffer  *buffer.Buffer
	Cursor  *cursor.Cursor
	Jumps   *cursor.JumpList
	History *history.History

	// ReadOnly prevents Save.
	ReadOnly bool

	savedRevision buffer.RevisionID
}

// NewDocument creates a document holding content.
func NewDocument(path string, content string) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	buf := buffer.NewBufferFromString(content, buffer.WithLineEnding(buffer.DetectLineEnding(content)))
	return &Document{
		Path:          path,
		Name:          name,
		Buffer:        buf,
		Cursor:        cursor.New(),
		Jumps:         cursor.NewJumpList(cursor.DefaultJumpListSize),
		History:       history.NewHistory(history.DefaultMaxEntries),
		savedRevision: buf.RevisionID(),
	}
}

// NewScratchDocument creates a document with no file.
func NewScratchDocument(content string) *Document {
	return NewDocument("", content)
}

// OpenDocument reads path into a new document. A missing file yields an
// empty document that will be created on save.
func OpenDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDocument(path, ""), nil
		}
		return nil, NewOperationError("open", path, err)
	}
	return NewDocument(path, string(data)), nil
}

// IsScratch returns true if the document has no file.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the buffer changed since it was loaded or
// last saved.
func (d *Document) IsModified() bool {
	return d.Buffer.RevisionID() != d.savedRevision
}

// Content returns the full text.
func (d *Document) Content() string {
	return d.Buffer.Text()
}

// Save writes the document to its file.
func (d *Document) Save() error {
	if d.IsScratch() {
		return ErrNoPath
	}
	return d.SaveAs(d.Path)
}

// SaveAs writes the document to path and makes path its file.
func (d *Document) SaveAs(path string) error {
	if d.ReadOnly {
		return NewOperationError("save", path, ErrReadOnly)
	}

	rev := d.Buffer.RevisionID()
	if err := os.WriteFile(path, []byte(d.Buffer.Text()), 0o644); err != nil {
		return NewOperationError("save", path, err)
	}

	d.Path = path
	d.Name = filepath.Base(path)
	d.savedRevision = rev
	return nil
}
