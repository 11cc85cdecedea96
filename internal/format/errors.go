package format

import (
	"fmt"
	"strings"
)

// SourceLocation is a 1-indexed line and column into a source file.
type SourceLocation struct {
	Line, Column int
}

// FormatError is returned when source cannot be formatted because an
// upstream analyzer could not make sense of it.
type FormatError struct {
	Message    string
	Help       string
	Location   *SourceLocation
	SourceLine string
}

func (e *FormatError) Error() string {
	var b strings.Builder

	if e.Location != nil {
		fmt.Fprintf(&b, "%d:%d: %s\n", e.Location.Line, e.Location.Column, e.Message)
	} else {
		fmt.Fprintf(&b, "%s\n", e.Message)
	}

	if e.Location != nil && e.SourceLine != "" {
		fmt.Fprintf(&b, "  |\n")
		fmt.Fprintf(&b, "%3d | %s\n", e.Location.Line, e.SourceLine)
		fmt.Fprintf(&b, "  | %s^\n", strings.Repeat(" ", e.Location.Column-1))
	}

	if e.Help != "" {
		fmt.Fprintf(&b, "  = help: %s", e.Help)
	}

	return strings.TrimRight(b.String(), "\n")
}

// OffsetToLocation computes the line and column of a byte offset into
// source.
func OffsetToLocation(source string, offset int) SourceLocation {
	line, col := 1, 1
	for i, r := range source {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return SourceLocation{Line: line, Column: col}
}
