// Package csvio reads and writes the semicolon separated movie file format.
//
// Each file starts with a header line followed by one movie per line:
//
//	code;title;genres;description;director;actors;year;duration;rating;favorite;revenue
//
// Genres and actors are comma separated lists inside their column, decimal
// numbers use a comma as the decimal separator, and only the description is
// ever quoted. The format is close to RFC 4180 but not compatible with it: a
// quoted field ends at its closing quote and anything after it up to the next
// separator is ignored.
package csvio

import "strings"

// Separator splits the columns of a line.
const Separator = ';'

// Header is the first line of every exported file.
const Header = "code;title;genres;description;director;actors;year;duration;rating;favorite;revenue"

// NumColumns is the number of columns in a movie line.
const NumColumns = 11

// SplitFields breaks a line into trimmed column values. A column that starts
// with a double quote runs to the matching quote, with "" standing for a
// literal quote character.
func SplitFields(line string) []string {
	line = strings.TrimRight(line, "\r\n")

	var fields []string
	pos := 0
	for {
		field, next, more := scanField(line, pos)
		fields = append(fields, field)
		if !more {
			return fields
		}
		pos = next
	}
}

// scanField reads one column starting at pos. It returns the trimmed value,
// the position after the separator, and whether a separator was consumed.
func scanField(line string, pos int) (string, int, bool) {
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
		pos++
	}

	var b strings.Builder
	if pos < len(line) && line[pos] == '"' {
		pos++
		for pos < len(line) {
			c := line[pos]
			if c == '"' {
				if pos+1 < len(line) && line[pos+1] == '"' {
					b.WriteByte('"')
					pos += 2
					continue
				}
				pos++
				break
			}
			b.WriteByte(c)
			pos++
		}
		for pos < len(line) && line[pos] != Separator {
			pos++
		}
	} else {
		start := pos
		for pos < len(line) && line[pos] != Separator {
			pos++
		}
		b.WriteString(line[start:pos])
	}

	value := strings.TrimSpace(b.String())
	if pos < len(line) && line[pos] == Separator {
		return value, pos + 1, true
	}
	return value, pos, false
}
