package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/cinemania/pkg/errors"
	"github.com/agentstation/cinemania/pkg/movies"
)

// prompter reads one answer per line. Every read returns io.EOF once the
// input is exhausted, so no prompt loops forever on a closed stdin.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints prompt and returns the next input line, trimmed.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// integer asks until the answer is a whole number within [min, max].
func (p *prompter) integer(prompt string, min, max int) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Error: Invalid input. Please enter a number.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(p.out, "Error: Value must be between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// decimal asks until the answer is a number within [min, max]. A comma is
// accepted as the decimal separator.
func (p *prompter) decimal(prompt string, min, max float64) (float64, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		f, err := movies.ParseDecimal(s)
		if err != nil {
			fmt.Fprintln(p.out, "Error: Invalid input. Please enter a number.")
			continue
		}
		if !(f >= min && f <= max) {
			fmt.Fprintf(p.out, "Error: Value must be between %.2f and %.2f.\n", min, max)
			continue
		}
		return f, nil
	}
}

// confirm asks a yes/no question. Only "y" and "yes" confirm.
func (p *prompter) confirm(prompt string) (bool, error) {
	s, err := p.line(prompt + " (y/n): ")
	if err != nil {
		return false, err
	}
	s = strings.ToLower(s)
	return s == "y" || s == "yes", nil
}
