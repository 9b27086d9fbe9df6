package reader

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromDump(t *testing.T, dump string) *plumberDoc {
	t.Helper()
	return &plumberDoc{
		path:   "test.pdf",
		dec:    json.NewDecoder(bufio.NewReader(strings.NewReader(dump))),
		logger: slog.Default(),
	}
}

func TestPlumberDocDecodesPages(t *testing.T) {
	dump := `{"page":1,"text":"header text","tables":[[["Rank","Quota"],["101","AI"]]]}
{"page":2,"text":"","tables":[]}
`
	doc := docFromDump(t, dump)

	p1, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, "header text", p1.Text)
	require.Len(t, p1.Tables, 1)
	require.Len(t, p1.Tables[0], 2)
	assert.Equal(t, Row{"101", "AI"}, p1.Tables[0][1])

	p2, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, p2.Number)
	assert.Empty(t, p2.Tables)

	_, err = doc.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, doc.Close())
}

func TestPlumberDocNullCellsBecomeEmptyStrings(t *testing.T) {
	dump := `{"page":1,"text":"","tables":[[["101",null,"MD - General Medicine"]]]}
`
	doc := docFromDump(t, dump)

	p, err := doc.Next()
	require.NoError(t, err)
	require.Len(t, p.Tables, 1)
	assert.Equal(t, Row{"101", "", "MD - General Medicine"}, p.Tables[0][0])
}

func TestPlumberDocPageErrorYieldsEmptyPage(t *testing.T) {
	dump := `{"page":3,"error":"table detection crashed"}
{"page":4,"text":"ok"}
`
	doc := docFromDump(t, dump)

	p3, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, p3.Number)
	assert.Empty(t, p3.Tables)
	assert.Empty(t, p3.Text)

	p4, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, "ok", p4.Text)
}

func TestPlumberDocMalformedDumpStopsStream(t *testing.T) {
	dump := `{"page":1,"text":"good"}
this is not json
{"page":2,"text":"never reached"}
`
	doc := docFromDump(t, dump)

	_, err := doc.Next()
	require.NoError(t, err)
	_, err = doc.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPlumberDocNumbersUnnumberedPages(t *testing.T) {
	dump := `{"text":"a"}
{"text":"b"}
`
	doc := docFromDump(t, dump)

	p1, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, p1.Number)
	p2, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, p2.Number)
}

func TestPlumberDocCloseKillsAbandonedHelper(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell helper")
	}
	dir := t.TempDir()
	// Emits one page, then stalls with the dump pipes released so only
	// the helper itself holds them.
	script := filepath.Join(dir, "dump.sh")
	body := "#!/bin/sh\n" +
		"echo '{\"page\":1,\"text\":\"first\"}'\n" +
		"sleep 60 > /dev/null 2>&1\n" +
		"echo '{\"page\":2,\"text\":\"second\"}'\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	pdf := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("x"), 0o644))

	opener := NewPlumberOpener("/bin/sh", script, 0, slog.Default())
	doc, err := opener.Open(context.Background(), pdf)
	require.NoError(t, err)

	p, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, "first", p.Text)

	closedIn := time.Now()
	require.NoError(t, doc.Close())
	assert.Less(t, time.Since(closedIn), 5*time.Second)
}

func TestStaticDocument(t *testing.T) {
	doc := &StaticDocument{Pages: []Page{{Text: "one"}, {Text: "two"}}}
	p, err := doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number)
	p, err = doc.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, p.Number)
	_, err = doc.Next()
	assert.ErrorIs(t, err, io.EOF)
}
