package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options controls which files ReadFile accepts.
type Options struct {
	// Accept holds glob patterns matched case-insensitively against the base name.
	Accept []string
	// MaxSize is the largest accepted file in bytes. Zero means no limit.
	MaxSize int64
}

// DefaultOptions accepts .csv and .txt files up to 1 MiB.
func DefaultOptions() Options {
	return Options{
		Accept:  []string{"*.csv", "*.txt"},
		MaxSize: 1024 * 1024,
	}
}

// Result is a successfully loaded name file.
type Result struct {
	Path  string
	Text  string // editor text, Join(Names)
	Names []string
}

// Accepts reports whether the base name of path matches one of the patterns.
func (o Options) Accepts(path string) (bool, error) {
	base := strings.ToLower(filepath.Base(path))
	for _, pattern := range o.Accept {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return false, fmt.Errorf("invalid accept pattern %q: %w", pattern, err)
		}
		if g.Match(base) {
			return true, nil
		}
	}
	return false, nil
}

// ReadFile loads and parses a name file. The file must match opts.Accept,
// be a regular file within opts.MaxSize and contain text. Every failure is
// an *errors.IngestError carrying the path.
func ReadFile(ctx context.Context, path string, opts Options) (Result, error) {
	fail := func(msg string, cause error) (Result, error) {
		return Result{}, errors.NewIngestError(msg, cause).WithPath(path)
	}

	if err := ctx.Err(); err != nil {
		return fail("read canceled", err)
	}

	ok, err := opts.Accepts(path)
	if err != nil {
		return fail("cannot check file name", err)
	}
	if !ok {
		return fail(fmt.Sprintf("only %s files are accepted", strings.Join(opts.Accept, ", ")), errors.ErrUnsupportedFile)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fail("cannot open file", err)
	}
	if !info.Mode().IsRegular() {
		return fail("cannot read this path", errors.ErrNotRegularFile)
	}
	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return fail(fmt.Sprintf("file is %d bytes (limit is %d)", info.Size(), opts.MaxSize), errors.ErrFileTooLarge)
	}

	f, err := os.Open(path)
	if err != nil {
		return fail("cannot open file", err)
	}
	defer f.Close()

	res, err := Read(ctx, f, opts.MaxSize)
	if err != nil {
		var ingestErr *errors.IngestError
		if errors.As(err, &ingestErr) {
			return Result{}, ingestErr.WithPath(path)
		}
		return fail("cannot read file", err)
	}
	res.Path = path
	return res, nil
}

// Read parses names from r, which is sniffed and decoded the same way as a
// file. It is used for stdin, where there is no file name to check.
func Read(ctx context.Context, r io.Reader, maxSize int64) (Result, error) {
	data, err := readAll(ctx, r, maxSize)
	if err != nil {
		return Result{}, err
	}

	if !isText(data) {
		mtype := mimetype.Detect(data)
		return Result{}, errors.NewIngestError(fmt.Sprintf("content type %s is not text", mtype.String()), errors.ErrUnsupportedFile)
	}

	text, err := decode(data)
	if err != nil {
		return Result{}, errors.NewIngestError("cannot decode text", err)
	}

	names := Parse(text)
	return Result{Text: Join(names), Names: names}, nil
}

// readAll reads at most maxSize bytes, failing with ErrFileTooLarge beyond that.
func readAll(ctx context.Context, r io.Reader, maxSize int64) ([]byte, error) {
	src := io.Reader(&ctxReader{ctx: ctx, r: r})
	if maxSize > 0 {
		src = io.LimitReader(src, maxSize+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewIngestError("read canceled", ctx.Err())
		}
		return nil, errors.NewIngestError("cannot read input", err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, errors.NewIngestError(fmt.Sprintf("input exceeds %d bytes", maxSize), errors.ErrFileTooLarge)
	}
	return data, nil
}

// isText reports whether the sniffed content type is text/plain or one of its descendants (csv, tsv, ...).
func isText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// decode converts data to UTF-8, honoring a UTF-8 or UTF-16 byte order mark.
func decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ctxReader stops a read loop once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
