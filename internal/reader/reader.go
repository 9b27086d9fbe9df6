package reader

import (
	"context"
	"fmt"
	"io"
)

// Row is one table row: an ordered sequence of cells. A missing cell is
// the empty string.
type Row []string

// Table is a rectangular block of rows as detected on one page.
type Table []Row

// Page holds everything extracted from a single document page. Tables may
// be empty; Text may be empty; both empty means the page yielded nothing.
type Page struct {
	Number int
	Tables []Table
	Text   string
}

// Document is a single-pass page iterator. Next returns io.EOF when the
// document is exhausted.
type Document interface {
	Next() (*Page, error)
	Close() error
}

// Opener opens a document for one streaming pass over its pages.
type Opener interface {
	Open(ctx context.Context, path string) (Document, error)
}

// StaticDocument serves pre-built pages; used by tests and fixtures.
type StaticDocument struct {
	Pages []Page
	next  int
}

func (d *StaticDocument) Next() (*Page, error) {
	if d.next >= len(d.Pages) {
		return nil, io.EOF
	}
	p := d.Pages[d.next]
	d.next++
	if p.Number == 0 {
		p.Number = d.next
	}
	return &p, nil
}

func (d *StaticDocument) Close() error { return nil }

// StaticOpener maps paths to canned documents.
type StaticOpener struct {
	Docs map[string][]Page
}

func (o *StaticOpener) Open(_ context.Context, path string) (Document, error) {
	pages, ok := o.Docs[path]
	if !ok {
		return nil, fmt.Errorf("no document at %q", path)
	}
	return &StaticDocument{Pages: pages}, nil
}
