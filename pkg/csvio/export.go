package csvio

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/logging"
	"github.com/agentstation/cinemania/pkg/movies"
)

// ExportTo writes the header and every movie in store order to w.
func ExportTo(w io.Writer, store *movies.Store) error {
	enc := NewEncoder(w)
	for i := 0; i < store.Len(); i++ {
		if err := enc.Encode(store.At(i)); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// Export writes store to a new file at path. It never overwrites: an
// existing path is refused. A file left incomplete by a write error is
// removed.
func Export(ctx context.Context, store *movies.Store, path string) error {
	ctx = operationContext(ctx, "export", path)
	logger := logging.FromContext(ctx)

	if store.Len() == 0 {
		return errors.ErrNothingToExport
	}

	if _, err := os.Stat(path); err == nil {
		return existsError(path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.FilePermissions)
	if err != nil {
		if os.IsExist(err) {
			return existsError(path)
		}
		return &errors.IOError{Operation: "create", Path: path, Message: "cannot create file", Err: err}
	}

	writeErr := ExportTo(f, store)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(path)
		return errors.WrapIO("write", path, writeErr)
	}

	logger.Info().Int("exported", store.Len()).Msg("export finished")
	return nil
}

func existsError(path string) error {
	return &errors.IOError{
		Operation: "create",
		Path:      path,
		Message:   fmt.Sprintf("file '%s' already exists", path),
		Err:       errors.ErrAlreadyExists,
	}
}
