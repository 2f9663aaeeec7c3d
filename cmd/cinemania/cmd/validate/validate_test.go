package validate

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/testhelper"
	"github.com/agentstation/cinemania/pkg/csvio"
	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

const mixedCSV = csvio.Header + "\n" +
	"1;Inception;Sci-Fi, Thriller;;Nolan;;2010;148;8,8;500;829,90\n" +
	"2;Old;Drama;;Someone;;1700;100;5,0;1;0,00\n" +
	"1;Copy;Drama;;Someone;;2000;100;5,0;1;0,00\n"

const cleanCSV = csvio.Header + "\n" +
	"1;Inception;Sci-Fi, Thriller;;Nolan;;2010;148;8,8;500;829,90\n"

func TestValidateReportsSkippedLines(t *testing.T) {
	path := testhelper.WriteFile(t, "movies.csv", mixedCSV)
	app := appcontext.NewMock(nil)

	res := testhelper.Execute(t, NewCommand(app), "", path)
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stderr, "1 movies valid, 2 lines skipped")
	assert.Contains(t, res.Stderr, "duplicates: 1")
	assert.Contains(t, res.Stdout, "Invalid year")
	assert.Contains(t, res.Stdout, "duplicate")
}

func TestValidateDoesNotTouchStore(t *testing.T) {
	path := testhelper.WriteFile(t, "movies.csv", cleanCSV)
	store := movies.NewStore()
	app := appcontext.NewMock(store)

	res := testhelper.Execute(t, NewCommand(app), "", path)
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stderr, "1 movies valid")
	assert.Empty(t, res.Stdout)
	assert.Equal(t, 0, store.Len())
}

func TestValidateStrict(t *testing.T) {
	path := testhelper.WriteFile(t, "movies.csv", mixedCSV)

	res := testhelper.Execute(t, NewCommand(appcontext.NewMock(nil)), "", path, "--strict")
	assert.ErrorIs(t, res.Err, ErrLinesSkipped)

	path = testhelper.WriteFile(t, "clean.csv", cleanCSV)
	res = testhelper.Execute(t, NewCommand(appcontext.NewMock(nil)), "", path, "--strict")
	assert.NoError(t, res.Err)
}

func TestValidateJSON(t *testing.T) {
	path := testhelper.WriteFile(t, "movies.csv", mixedCSV)
	app := appcontext.NewMock(nil)
	app.OutputFormatFunc = func() string { return "json" }

	res := testhelper.Execute(t, NewCommand(app), "", path)
	require.NoError(t, res.Err)

	var report csvio.ImportResult
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &report))
	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 1, report.Duplicates)
	require.Len(t, report.Skipped, 2)
	assert.Contains(t, report.Skipped[0].Detail, "Invalid year")
}

func TestValidateMissingFile(t *testing.T) {
	res := testhelper.Execute(t, NewCommand(appcontext.NewMock(nil)), "", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, res.Err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, res.Err, &ioErr)
}
