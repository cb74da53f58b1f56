package cmd

import (
	"context"
	"io"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/ingest"
)

// stdinArg selects standard input as the name source.
const stdinArg = "-"

// ingestOptions builds file loading limits from config.
func ingestOptions(cfg *config.Config) ingest.Options {
	return ingest.Options{
		Accept:  cfg.Ingest.Accept,
		MaxSize: cfg.Ingest.MaxFileSize(),
	}
}

// readNames loads names from a file path, or from stdin when arg is "-".
// Stdin skips the file name check but keeps the size limit and text sniffing.
func readNames(ctx context.Context, arg string, stdin io.Reader, cfg *config.Config) (ingest.Result, error) {
	opts := ingestOptions(cfg)
	if arg == stdinArg {
		res, err := ingest.Read(ctx, stdin, opts.MaxSize)
		if err != nil {
			return ingest.Result{}, err
		}
		res.Path = "stdin"
		return res, nil
	}
	return ingest.ReadFile(ctx, arg, opts)
}
