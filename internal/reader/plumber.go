package reader

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// PlumberOpener shells out to the bundled pdfplumber helper script, which
// prints one JSON object per page on stdout. Pages are decoded lazily so a
// large document is never held in memory at once.
type PlumberOpener struct {
	PythonBin string
	Script    string
	Timeout   time.Duration
	Logger    *slog.Logger
}

func NewPlumberOpener(pythonBin, script string, timeout time.Duration, logger *slog.Logger) *PlumberOpener {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlumberOpener{PythonBin: pythonBin, Script: script, Timeout: timeout, Logger: logger}
}

func (o *PlumberOpener) Open(ctx context.Context, path string) (Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	var cancel context.CancelFunc = func() {}
	if o.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
	}

	cmd := exec.CommandContext(ctx, o.PythonBin, o.Script, path)
	var errb bytes.Buffer
	cmd.Stderr = &errb

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("pipe page dump: %w", err)
	}
	start := time.Now()
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start page dump: %w", err)
	}

	o.Logger.Debug("page dump started", "path", path, "cmd", o.PythonBin, "script", o.Script)
	return &plumberDoc{
		path:    path,
		cmd:     cmd,
		cancel:  cancel,
		stderr:  &errb,
		dec:     json.NewDecoder(bufio.NewReaderSize(stdout, 1<<20)),
		logger:  o.Logger,
		started: start,
	}, nil
}

// pageDump is the helper script's wire format, one object per line.
// Cells come through as null for empty table cells.
type pageDump struct {
	Page   int          `json:"page"`
	Text   string       `json:"text"`
	Tables [][][]*string `json:"tables"`
	Error  string       `json:"error,omitempty"`
}

type plumberDoc struct {
	path    string
	cmd     *exec.Cmd
	cancel  context.CancelFunc
	stderr  *bytes.Buffer
	dec     *json.Decoder
	logger  *slog.Logger
	started time.Time
	pages   int
	done    bool
}

func (d *plumberDoc) Next() (*Page, error) {
	if d.done {
		return nil, io.EOF
	}

	var dump pageDump
	if err := d.dec.Decode(&dump); err != nil {
		d.done = true
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		// A malformed dump poisons the rest of the stream; stop here
		// rather than guess at page boundaries.
		d.logger.Error("page dump decode failed",
			"path", d.path,
			"page", d.pages+1,
			"error", err,
		)
		return nil, io.EOF
	}
	d.pages++

	page := &Page{Number: dump.Page, Text: dump.Text}
	if page.Number == 0 {
		page.Number = d.pages
	}
	if dump.Error != "" {
		// The helper recovered from a per-page failure; treat the page
		// as empty and move on.
		d.logger.Warn("page read failed", "path", d.path, "page", page.Number, "error", dump.Error)
		return page, nil
	}
	for _, t := range dump.Tables {
		table := make(Table, 0, len(t))
		for _, r := range t {
			row := make(Row, len(r))
			for i, cell := range r {
				if cell != nil {
					row[i] = *cell
				}
			}
			table = append(table, row)
		}
		page.Tables = append(page.Tables, table)
	}
	return page, nil
}

func (d *plumberDoc) Close() error {
	if d.cancel != nil {
		defer d.cancel()
	}
	if d.cmd == nil {
		d.done = true
		return nil
	}
	if !d.done {
		// The caller stopped early, as layout probes reading only the
		// first page do. Kill the helper rather than decoding the rest
		// of the document just to reach a clean exit.
		d.done = true
		if d.cmd.Process != nil {
			_ = d.cmd.Process.Kill()
		}
		err := d.cmd.Wait()
		d.logger.Debug("page dump stopped early",
			"path", d.path,
			"pages", d.pages,
			"duration_ms", time.Since(d.started).Milliseconds(),
			"error", err,
		)
		return nil
	}
	err := d.cmd.Wait()
	dur := time.Since(d.started)
	if err != nil {
		d.logger.Error("page dump exited with error",
			"path", d.path,
			"pages", d.pages,
			"duration_ms", dur.Milliseconds(),
			"error", err,
			"stderr", truncate(d.stderr.String(), 8<<10),
		)
		return fmt.Errorf("page dump: %w", err)
	}
	d.logger.Debug("page dump finished",
		"path", d.path,
		"pages", d.pages,
		"duration_ms", dur.Milliseconds(),
	)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
