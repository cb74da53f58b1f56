// Package errors holds the sentinel errors and typed errors shared by the hrkit
// CLI and TUI.
//
// Typed errors carry a Severity and are safe to show to users. Untyped
// errors are treated as internal:
//
//	err := errors.NewIngestError("file type not accepted", errors.ErrUnsupportedFile).WithPath(path)
//	errors.UserMessage(err)   // err.Error()
//	errors.GetSeverity(err)   // SeverityError
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard library helpers, so callers only import this package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

var (
	ErrEmptyNameList   = New("name list is empty")
	ErrUnsupportedFile = New("unsupported file")
	ErrFileTooLarge    = New("file too large")
	ErrNotRegularFile  = New("not a regular file")
	ErrDrawInProgress  = New("draw already in progress")
	ErrInvalidTeamSize = New("invalid team size")
	ErrNothingToExport = New("no teams to export")
	ErrCanceled        = New("operation canceled")
	// ErrInvalidInput matches every ValidationError.
	ErrInvalidInput = New("invalid input")
)

// Severity ranks typed errors. It picks the log level and the exit code.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	// SeverityWarning marks a rejected request; nothing failed.
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"debug", "info", "warning", "error"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// KitError is implemented by every typed error in this package.
type KitError interface {
	error
	Unwrap() error
	Severity() Severity
	IsUserFacing() bool
}

type baseError struct {
	kind       string
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func newBase(kind, message string, cause error, severity Severity) baseError {
	return baseError{kind: kind, message: message, cause: cause, severity: severity, userFacing: true}
}

func (e *baseError) Error() string { return e.render(nil) }
func (e *baseError) Unwrap() error { return e.cause }
func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) IsUserFacing() bool { return e.userFacing }

// render produces "<kind> [k=v, ...]: message: cause".
func (e *baseError) render(context []string) string {
	var sb strings.Builder
	sb.WriteString(e.kind)
	if len(context) > 0 {
		sb.WriteString(" [" + strings.Join(context, ", ") + "]")
	}
	sb.WriteString(": " + e.message)
	if e.cause != nil {
		sb.WriteString(": " + e.cause.Error())
	}
	return sb.String()
}

// IngestError is a failure to read, decode or watch a name file.
type IngestError struct {
	baseError
	Path string
}

func NewIngestError(message string, cause error) *IngestError {
	return &IngestError{baseError: newBase("ingest error", message, cause, SeverityError)}
}

func (e *IngestError) WithPath(path string) *IngestError {
	e.Path = path
	return e
}

func (e *IngestError) Error() string { return e.render(pathContext(e.Path)) }

// DrawError is a draw that could not finish, such as an exhausted pool.
type DrawError struct {
	baseError
	Cycle uint64
}

func NewDrawError(message string, cause error) *DrawError {
	return &DrawError{baseError: newBase("draw error", message, cause, SeverityWarning)}
}

// WithCycle records which spin the error belongs to.
func (e *DrawError) WithCycle(cycle uint64) *DrawError {
	e.Cycle = cycle
	return e
}

func (e *DrawError) Error() string {
	if e.Cycle == 0 {
		return e.render(nil)
	}
	return e.render([]string{fmt.Sprintf("cycle=%d", e.Cycle)})
}

// ExportError is a failure to write team results.
type ExportError struct {
	baseError
	Path string
}

func NewExportError(message string, cause error) *ExportError {
	return &ExportError{baseError: newBase("export error", message, cause, SeverityError)}
}

func (e *ExportError) WithPath(path string) *ExportError {
	e.Path = path
	return e
}

func (e *ExportError) Error() string { return e.render(pathContext(e.Path)) }

func pathContext(path string) []string {
	if path == "" {
		return nil
	}
	return []string{"path=" + path}
}

// ValidationError rejects a request before any work is done.
//
//	errors.NewValidationError("team size must be at least 2").WithField("size").WithValue(1)
type ValidationError struct {
	baseError
	Field string
	Value any
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{baseError: newBase("validation error", message, nil, SeverityWarning)}
}

func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

func (e *ValidationError) Error() string {
	var context []string
	if e.Field != "" {
		context = append(context, "field="+e.Field)
	}
	if e.Value != nil {
		context = append(context, fmt.Sprintf("value=%v", e.Value))
	}
	return e.render(context)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func asKitError(err error) (KitError, bool) {
	var kitErr KitError
	if err == nil || !As(err, &kitErr) {
		return nil, false
	}
	return kitErr, true
}

// IsUserFacing reports whether err, or an error it wraps, is safe to display.
func IsUserFacing(err error) bool {
	kitErr, ok := asKitError(err)
	return ok && kitErr.IsUserFacing()
}

// GetSeverity returns the severity of the first typed error in err's chain.
// Untyped errors are SeverityError; nil is SeverityDebug.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	if kitErr, ok := asKitError(err); ok {
		return kitErr.Severity()
	}
	return SeverityError
}

// UserMessage returns the text to show in the UI for err. Errors that are not
// user-facing collapse to a generic message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsUserFacing(err):
		return err.Error()
	default:
		return "an internal error occurred"
	}
}

// Wrap adds context to err. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
