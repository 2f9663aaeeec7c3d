package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/internal/appcontext"
	"github.com/agentstation/cinemania/internal/testhelper"
)

func TestVersionText(t *testing.T) {
	app := appcontext.NewMock(nil)
	app.VersionFunc = func() string { return "1.2.3" }

	res := testhelper.Execute(t, NewCommand(app), "")
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "cinemania version 1.2.3\n")
	assert.Contains(t, res.Stdout, "built by: test\n")
	assert.Contains(t, res.Stdout, "go version: "+runtime.Version())
}

func TestVersionYAML(t *testing.T) {
	app := appcontext.NewMock(nil)
	app.OutputFormatFunc = func() string { return "yaml" }

	res := testhelper.Execute(t, NewCommand(app), "")
	require.NoError(t, res.Err)

	assert.Contains(t, res.Stdout, "version: dev")
	assert.Contains(t, res.Stdout, "commit: unknown")
}
