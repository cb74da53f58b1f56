package teams

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header is the first CSV line after the byte order mark.
const Header = "Group ID,Member Name"

// FileName returns the export file name for the given time,
// team_results_<unix milliseconds>.csv.
func FileName(now time.Time) string {
	return fmt.Sprintf("team_results_%d.csv", now.UnixMilli())
}

// WriteCSV writes p as UTF-8 CSV with a leading byte order mark so
// spreadsheet applications detect the encoding. Each member is one row;
// the member field is always quoted.
func WriteCSV(w io.Writer, p Partition) error {
	tw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	bw := bufio.NewWriter(tw)

	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}
	for _, team := range p {
		for _, member := range team.Members {
			if _, err := fmt.Fprintf(bw, "%d,%s\n", team.ID, quote(member)); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	return tw.Close()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ReadCSV parses a file written by WriteCSV. Rows are grouped by their
// Group ID in order of first appearance.
func ReadCSV(r io.Reader) (Partition, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = 2

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewValidationError("missing header").WithCause(errors.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if strings.Join(header, ",") != Header {
		return nil, errors.NewValidationError("unexpected header").WithValue(strings.Join(header, ","))
	}

	var p Partition
	index := make(map[int]int)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		id, err := strconv.Atoi(record[0])
		if err != nil || id < 1 {
			return nil, errors.NewValidationError("invalid group id").WithField("Group ID").WithValue(record[0])
		}
		i, ok := index[id]
		if !ok {
			i = len(p)
			index[id] = i
			p = append(p, Team{ID: id})
		}
		p[i].Members = append(p[i].Members, record[1])
	}
	return p, nil
}

// Export writes p into dir under FileName(now) and returns the path. The
// file appears atomically: it is written to a temporary file first and
// renamed into place.
func Export(dir string, p Partition, now time.Time) (string, error) {
	if len(p) == 0 {
		return "", errors.NewExportError("nothing to export", errors.ErrNothingToExport)
	}

	path := filepath.Join(dir, FileName(now))
	fail := func(msg string, err error) (string, error) {
		return "", errors.NewExportError(msg, err).WithPath(path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail("cannot create export directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".team_results_*.tmp")
	if err != nil {
		return fail("cannot create file", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := WriteCSV(tmp, p); err != nil {
		_ = tmp.Close()
		return fail("cannot write file", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("cannot write file", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fail("cannot write file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fail("cannot move file into place", err)
	}
	return path, nil
}
