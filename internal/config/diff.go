package config

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff is one line of a configuration diff
type LineDiff struct {
	Op   diffmatchpatch.Operation
	Text string
}

// Diff compares two configurations line by line in their YAML form
func Diff(from, to *Config) ([]LineDiff, error) {
	a, err := from.Marshal()
	if err != nil {
		return nil, err
	}
	b, err := to.Marshal()
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var out []LineDiff
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, LineDiff{Op: d.Type, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out, nil
}

// Changed reports whether a diff holds any insertion or deletion
func Changed(diff []LineDiff) bool {
	for _, d := range diff {
		if d.Op != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}
