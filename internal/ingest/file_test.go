package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestOptions_Accepts(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		path string
		want bool
	}{
		{"names.csv", true},
		{"/tmp/dir/names.txt", true},
		{"NAMES.CSV", true},
		{"names.xlsx", false},
		{"names.csv.bak", false},
		{"csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := opts.Accepts(tt.path)
			if err != nil {
				t.Fatalf("Accepts() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOptions_AcceptsInvalidPattern(t *testing.T) {
	opts := Options{Accept: []string{"*.[csv"}}
	if _, err := opts.Accepts("a.csv"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		data  []byte
		want  []string
		wantT string
	}{
		{
			name:  "csv with commas and CRLF",
			file:  "team.csv",
			data:  []byte("Alice,Bob\r\nCarol\r\n"),
			want:  []string{"Alice", "Bob", "Carol"},
			wantT: "Alice\nBob\nCarol",
		},
		{
			name:  "utf-8 bom",
			file:  "bom.txt",
			data:  append([]byte{0xEF, 0xBB, 0xBF}, []byte("王小明\n李大華")...),
			want:  []string{"王小明", "李大華"},
			wantT: "王小明\n李大華",
		},
		{
			name:  "utf-16le bom",
			file:  "wide.txt",
			data:  []byte{0xFF, 0xFE, 'A', 0, '\n', 0, 'B', 0},
			want:  []string{"A", "B"},
			wantT: "A\nB",
		},
		{
			name:  "empty file",
			file:  "empty.csv",
			data:  []byte{},
			want:  []string{},
			wantT: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.data)

			res, err := ReadFile(context.Background(), path, DefaultOptions())
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if res.Path != path {
				t.Errorf("Path = %q, want %q", res.Path, path)
			}
			if diff := cmp.Diff(tt.want, res.Names); diff != "" {
				t.Errorf("Names mismatch (-want +got):\n%s", diff)
			}
			if res.Text != tt.wantT {
				t.Errorf("Text = %q, want %q", res.Text, tt.wantT)
			}
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	subdir := filepath.Join(dir, "folder.csv")
	if err := os.Mkdir(subdir, 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		opts     Options
		sentinel error
	}{
		{
			name:     "wrong extension",
			path:     func(t *testing.T) string { return writeFile(t, "names.json", []byte("Alice")) },
			opts:     DefaultOptions(),
			sentinel: errors.ErrUnsupportedFile,
		},
		{
			name:     "directory",
			path:     func(t *testing.T) string { return subdir },
			opts:     DefaultOptions(),
			sentinel: errors.ErrNotRegularFile,
		},
		{
			name:     "too large",
			path:     func(t *testing.T) string { return writeFile(t, "big.txt", []byte(strings.Repeat("Alice\n", 100))) },
			opts:     Options{Accept: []string{"*.txt"}, MaxSize: 64},
			sentinel: errors.ErrFileTooLarge,
		},
		{
			name: "binary content",
			path: func(t *testing.T) string {
				png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
				return writeFile(t, "image.csv", png)
			},
			opts:     DefaultOptions(),
			sentinel: errors.ErrUnsupportedFile,
		},
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(dir, "missing.csv") },
			opts:     DefaultOptions(),
			sentinel: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)

			_, err := ReadFile(context.Background(), path, tt.opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want it to wrap %v", err, tt.sentinel)
			}

			var ingestErr *errors.IngestError
			if !errors.As(err, &ingestErr) {
				t.Fatalf("error type = %T, want *errors.IngestError", err)
			}
			if ingestErr.Path != path {
				t.Errorf("IngestError.Path = %q, want %q", ingestErr.Path, path)
			}
			if !errors.IsUserFacing(err) {
				t.Error("ingest errors should be user-facing")
			}
		})
	}
}

func TestReadFile_Canceled(t *testing.T) {
	path := writeFile(t, "names.csv", []byte("Alice"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadFile(ctx, path, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile() error = %v, want context.Canceled", err)
	}
}

func TestRead_Stream(t *testing.T) {
	res, err := Read(context.Background(), strings.NewReader("Alice, Bob\nAlice"), 0)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob", "Alice"}, res.Names); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	if res.Path != "" {
		t.Errorf("Path = %q, want empty for streams", res.Path)
	}

	_, err = Read(context.Background(), strings.NewReader(strings.Repeat("x", 100)), 10)
	if !errors.Is(err, errors.ErrFileTooLarge) {
		t.Errorf("Read() over limit error = %v, want ErrFileTooLarge", err)
	}
}
