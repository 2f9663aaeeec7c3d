package alerts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cinemania/internal/cmd/output"
)

func TestAlertString(t *testing.T) {
	a := NewSuccess("exported %d movies", 3)
	assert.Equal(t, "✓ exported 3 movies", a.String())

	a = NewError("export failed").WithError(errors.New("disk full"))
	assert.Equal(t, "✗ export failed: disk full", a.String())
	assert.Equal(t, "error", a.Level.String())
}

func TestFormatWriterText(t *testing.T) {
	var buf bytes.Buffer
	w := NewFormatWriter(&buf, output.FormatTable)

	alert := NewWarning("2 lines skipped").WithDetails("line 3: invalid", "line 4: duplicate")
	require.NoError(t, w.WriteAlert(alert))
	assert.Equal(t, "! 2 lines skipped\n   line 3: invalid\n   line 4: duplicate\n", buf.String())
}

func TestFormatWriterStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatWriter(&buf, output.FormatJSON).WriteAlert(NewInfo("hello")))
	assert.JSONEq(t, `{"level":"info","message":"hello"}`, buf.String())

	buf.Reset()
	require.NoError(t, NewFormatWriter(&buf, output.FormatYAML).WriteAlert(NewInfo("hello")))
	assert.Contains(t, buf.String(), "message: hello")
}

func TestDiscardWriter(t *testing.T) {
	assert.NoError(t, DiscardWriter.WriteAlert(NewInfo("ignored")))

	var buf bytes.Buffer
	require.NoError(t, NewWriterTo(&buf).WriteAlert(NewInfo("plain")))
	assert.Equal(t, "i plain\n", buf.String())
}
