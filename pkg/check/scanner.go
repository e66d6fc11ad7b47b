package check

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/getlintd/lintd/pkg/rcfile"
)

// Check identifiers reported in diagnostics.
const (
	CheckNote        = "note"
	CheckLineTooLong = "line-too-long"
)

// Diagnostic is one finding in one file.
type Diagnostic struct {
	Path    string
	Line    int
	Col     int
	Check   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Path, d.Line, d.Col, d.Check, d.Message)
}

// ScanFile checks one file under the given options: note keywords in
// comments, and lines longer than the configured maximum.
func ScanFile(path string, opts rcfile.Options) ([]Diagnostic, error) {
	notesRe, err := compileNotes(opts.Notes)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var diags []Diagnostic
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if notesRe != nil {
			if loc := notesRe.FindStringSubmatchIndex(line); loc != nil {
				note := line[loc[2]:loc[3]]
				diags = append(diags, Diagnostic{
					Path:    path,
					Line:    lineno,
					Col:     loc[2] + 1,
					Check:   CheckNote,
					Message: note + " note comment",
				})
			}
		}
		if opts.MaxLineLength > 0 && len(line) > opts.MaxLineLength {
			diags = append(diags, Diagnostic{
				Path:    path,
				Line:    lineno,
				Col:     opts.MaxLineLength + 1,
				Check:   CheckLineTooLong,
				Message: fmt.Sprintf("line is %d characters, limit is %d", len(line), opts.MaxLineLength),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return diags, nil
}

// compileNotes builds the comment-note matcher: a '#' comment marker
// followed by one of the configured keywords at a word boundary. Returns nil
// when no notes are configured.
func compileNotes(notes []string) (*regexp.Regexp, error) {
	if len(notes) == 0 {
		return nil, nil
	}
	quoted := make([]string, len(notes))
	for i, n := range notes {
		quoted[i] = regexp.QuoteMeta(n)
	}
	re, err := regexp.Compile(`#\s*(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile notes matcher: %w", err)
	}
	return re, nil
}
