// Package logging provides structured logging for hrkit.
//
// It wraps Go's log/slog JSON handler. Entries go to hrkit.log inside a log
// directory (by default the config directory's logs/ folder), never to the
// terminal, because the TUI owns the screen while it runs.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(logging.Options{
//	    Dir:      "/home/me/.config/hrkit/logs",
//	    Level:    "INFO",
//	    Rotation: logging.DefaultRotationConfig(),
//	})
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	drawLog := logger.WithSession(id).WithComponent("draw")
//	drawLog.Info("draw committed", "winner", name, "pool", n)
//
// # Rotation
//
// [RotatingWriter] rotates hrkit.log once it exceeds MaxSizeMB, keeping
// MaxBackups older files named hrkit.log.1 (newest) through hrkit.log.N.
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriterLogger] with a buffer to
// assert on entries.
package logging
