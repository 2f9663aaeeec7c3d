package alerts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/cinemania/internal/cmd/output"
)

// FormatWriter writes alerts in the command's output format.
type FormatWriter struct {
	writer io.Writer
	format output.Format
	config WriterConfig
}

// WriterConfig configures alert output behavior.
type WriterConfig struct {
	ShowDetails bool
	UseColor    bool
}

// NewFormatWriter creates a new FormatWriter for the specified format.
func NewFormatWriter(w io.Writer, format output.Format) *FormatWriter {
	return &FormatWriter{
		writer: w,
		format: format,
		config: WriterConfig{
			ShowDetails: true,
			UseColor:    isTerminal(w),
		},
	}
}

// WithConfig sets the writer configuration.
func (fw *FormatWriter) WithConfig(config WriterConfig) *FormatWriter {
	fw.config = config
	return fw
}

// WriteAlert writes an alert in the configured format.
func (fw *FormatWriter) WriteAlert(alert *Alert) error {
	switch fw.format {
	case output.FormatJSON:
		encoder := json.NewEncoder(fw.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(toAlertData(alert))
	case output.FormatYAML:
		out, err := yaml.Marshal(toAlertData(alert))
		if err != nil {
			return err
		}
		_, err = fw.writer.Write(out)
		return err
	default:
		return fw.writeText(alert)
	}
}

// alertData represents alert data for structured output.
type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func toAlertData(alert *Alert) alertData {
	data := alertData{
		Level:   alert.Level.String(),
		Message: alert.Message,
		Details: alert.Details,
	}
	if alert.Err != nil {
		data.Error = alert.Err.Error()
	}
	return data
}

func (fw *FormatWriter) writeText(alert *Alert) error {
	var b strings.Builder
	if fw.config.UseColor {
		b.WriteString(alert.Level.Color() + alert.String() + resetColor + "\n")
	} else {
		b.WriteString(alert.String() + "\n")
	}
	if fw.config.ShowDetails {
		for _, detail := range alert.Details {
			fmt.Fprintf(&b, "   %s\n", detail)
		}
	}
	_, err := io.WriteString(fw.writer, b.String())
	return err
}

// isTerminal checks if the writer is a terminal (for color support).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
