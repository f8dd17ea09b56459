package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fern/internal/diag"
	"fern/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Bold)
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// (call bag.Sort() beforehand for deterministic order) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	  <source line>
//	  ^~~~
//
// followed by any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeEntry(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		for _, note := range d.Notes {
			writeEntry(w, fs, diag.SevInfo, diag.LexInfo, note.Span, note.Msg, opts)
		}
	}
}

func writeEntry(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)

	path := "<unknown>"
	if file != nil {
		path = file.Path
	}

	sevLabel := sev.String()
	codeLabel := code.ID()
	if opts.Color {
		sevLabel = severityColor(sev).Sprint(sevLabel)
		codeLabel = codeColor.Sprint(codeLabel)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n", path, start.Line, start.Col, sevLabel, codeLabel, msg)

	if file == nil {
		return
	}

	firstLine := start.Line
	if opts.Context > 0 && firstLine > uint32(opts.Context) {
		firstLine -= uint32(opts.Context)
	} else if opts.Context > 0 {
		firstLine = 1
	}
	for ln := firstLine; ln < start.Line; ln++ {
		fmt.Fprintf(w, "  %s\n", fs.Line(sp.File, ln))
	}

	lineText := string(fs.Line(sp.File, start.Line))
	fmt.Fprintf(w, "  %s\n", lineText)
	fmt.Fprintf(w, "  %s\n", underline(lineText, start.Col, sp.Len()))
}

// underline builds a ^~~~ marker aligned under the span. Widths are display
// widths, so tabs and wide runes in the prefix keep the caret in place.
func underline(lineText string, col uint32, spanLen uint32) string {
	if col == 0 {
		col = 1
	}
	prefix := lineText
	if int(col-1) <= len(lineText) {
		prefix = lineText[:col-1]
	}

	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}
	b.WriteByte('^')

	// The marker is clamped to the visible part of the line.
	remaining := len(lineText) - int(col-1) - 1
	width := int(spanLen) - 1
	if width > remaining {
		width = remaining
	}
	if width > 0 {
		b.WriteString(strings.Repeat("~", width))
	}
	return b.String()
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
