package csvio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/logging"
	"github.com/agentstation/cinemania/pkg/movies"
)

// SkipReason classifies a line that did not produce a movie.
type SkipReason string

// Skip reasons.
const (
	SkipDuplicate SkipReason = "duplicate"
	SkipInvalid   SkipReason = "invalid"
	SkipRejected  SkipReason = "rejected"
)

// SkippedLine records why one input line was not imported.
type SkippedLine struct {
	Line   int        `json:"line" yaml:"line"`
	Code   int        `json:"code,omitempty" yaml:"code,omitempty"`
	Reason SkipReason `json:"reason" yaml:"reason"`
	Detail string     `json:"detail,omitempty" yaml:"detail,omitempty"`
	Err    error      `json:"-" yaml:"-"`
}

// Message returns the human readable cause.
func (s SkippedLine) Message() string {
	if s.Err == nil {
		return string(s.Reason)
	}
	return s.Err.Error()
}

// ImportResult summarizes an import.
type ImportResult struct {
	Source     string        `json:"source" yaml:"source"`
	Lines      int           `json:"lines" yaml:"lines"`
	Imported   int           `json:"imported" yaml:"imported"`
	Duplicates int           `json:"duplicates" yaml:"duplicates"`
	Invalid    int           `json:"invalid" yaml:"invalid"`
	Rejected   int           `json:"rejected" yaml:"rejected"`
	Skipped    []SkippedLine `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func (r *ImportResult) skip(ctx context.Context, line, code int, reason SkipReason, err error) {
	switch reason {
	case SkipDuplicate:
		r.Duplicates++
	case SkipInvalid:
		r.Invalid++
	case SkipRejected:
		r.Rejected++
	}
	s := SkippedLine{Line: line, Code: code, Reason: reason, Err: err}
	if err != nil {
		s.Detail = err.Error()
	}
	r.Skipped = append(r.Skipped, s)

	logging.FromContext(ctx).Warn().
		Int("line", line).
		Str("reason", string(reason)).
		Msg(s.Message())
}

// Import reads movies from the file at path into store.
func Import(ctx context.Context, store *movies.Store, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	return ImportFrom(ctx, store, f, path)
}

// ImportFrom reads movies from r into store. The first line is the header
// and is discarded; blank lines are ignored. Lines that are malformed,
// invalid, duplicate an existing code or no longer fit are skipped and
// reported in the result. source names r in errors and logs.
func ImportFrom(ctx context.Context, store *movies.Store, r io.Reader, source string) (*ImportResult, error) {
	ctx = operationContext(ctx, "import", source)
	logger := logging.FromContext(ctx)

	result := &ImportResult{Source: source}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.WrapIO("read", source, err)
		}
		return nil, errors.NewParseError(formatName, source, "file is empty", nil)
	}

	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		if err := ctx.Err(); err != nil {
			return result, err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.Lines++
		importLine(ctx, store, result, lineNumber, line, source)
	}
	if err := scanner.Err(); err != nil {
		return result, errors.WrapIO("read", source, err)
	}

	logger.Info().
		Int("imported", result.Imported).
		Int("duplicates", result.Duplicates).
		Int("invalid", result.Invalid).
		Int("rejected", result.Rejected).
		Msg("import finished")
	return result, nil
}

func importLine(ctx context.Context, store *movies.Store, result *ImportResult, lineNumber int, line, source string) {
	fields := SplitFields(line)

	code, err := DecodeCode(fields)
	if err != nil {
		result.skip(ctx, lineNumber, 0, SkipInvalid, atLine(err, source, lineNumber))
		return
	}
	if store.Exists(code) {
		result.skip(ctx, lineNumber, code, SkipDuplicate,
			errors.NewAlreadyExistsError("movie", fmt.Sprint(code)))
		return
	}

	m, err := DecodeMovie(fields)
	if err != nil {
		result.skip(ctx, lineNumber, code, SkipInvalid, atLine(err, source, lineNumber))
		return
	}

	switch err := store.Insert(m); {
	case err == nil:
		result.Imported++
	case errors.IsCapacityExceeded(err):
		result.skip(ctx, lineNumber, code, SkipRejected, err)
	case errors.IsAlreadyExists(err):
		result.skip(ctx, lineNumber, code, SkipDuplicate, err)
	default:
		result.skip(ctx, lineNumber, code, SkipInvalid, err)
	}
}

// atLine stamps the file position onto a column parse error.
func atLine(err error, source string, line int) error {
	var perr *errors.ParseError
	if errors.As(err, &perr) {
		located := *perr
		located.File = source
		located.Line = line
		return &located
	}
	return err
}

// operationContext tags the context logger for one import or export. An
// existing request id is kept so a caller can correlate several operations.
func operationContext(ctx context.Context, operation, path string) context.Context {
	ctx = logging.WithFile(logging.WithOperation(ctx, operation), path)
	if logging.RequestID(ctx) == "" {
		ctx = logging.WithRequestID(ctx, "")
	}
	return ctx
}
