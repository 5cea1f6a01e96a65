//go:build !cgo || purego

package readline

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// This backend understands the variable part of the inputrc syntax:
// "set name value", $if/$else/$endif and $include. Key bindings are
// recorded but chzyer keeps its own keymap.
var (
	variables = map[string]string{"editing-mode": "emacs"}
	bindings  = map[string]string{}
)

func variable(name string) string {
	return variables[strings.ToLower(name)]
}

func parseAndBind(line string) int {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return 0
	}
	if fields := strings.Fields(line); fields[0] == "set" {
		if len(fields) < 2 {
			return int(syscall.EINVAL)
		}
		value := ""
		if len(fields) > 2 {
			value = strings.Join(fields[2:], " ")
		}
		variables[strings.ToLower(fields[1])] = value
		return 0
	}
	key, fn, ok := splitBinding(line)
	if !ok {
		return int(syscall.EINVAL)
	}
	bindings[key] = fn
	return 0
}

// splitBinding splits `keyseq: function`, where a quoted keyseq may
// itself contain a colon.
func splitBinding(line string) (key, fn string, ok bool) {
	i := 0
	if line[0] == '"' {
		for i = 1; i < len(line); i++ {
			if line[i] == '\\' {
				i++
				continue
			}
			if line[i] == '"' {
				break
			}
		}
	}
	j := strings.IndexByte(line[min(i, len(line)):], ':')
	if j < 0 {
		return "", "", false
	}
	j += min(i, len(line))
	key = strings.TrimSpace(line[:j])
	fn = strings.TrimSpace(line[j+1:])
	return key, fn, key != "" && fn != ""
}

func initFile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv("INPUTRC"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".inputrc"), nil
}

func readInitFile(path string) int {
	path, err := initFile(path)
	if err != nil {
		return errnoOf(err)
	}
	return parseInitFile(path, 0)
}

// matchCondition evaluates the test of an $if line.
func matchCondition(test string) bool {
	test = strings.TrimSpace(test)
	if k, v, found := strings.Cut(test, "="); found {
		switch strings.TrimSpace(k) {
		case "mode":
			return variable("editing-mode") == strings.TrimSpace(v)
		case "term":
			return os.Getenv("TERM") == strings.TrimSpace(v)
		}
		return false
	}
	return test == name
}

func parseInitFile(path string, depth int) int {
	if depth > 8 {
		return int(syscall.ELOOP)
	}
	lines, err := readLines(path)
	if err != nil {
		return errnoOf(err)
	}

	// skip[i] is true when the i-th nested $if branch is inactive
	var skip []bool
	skipping := func() bool {
		for _, s := range skip {
			if s {
				return true
			}
		}
		return false
	}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "$if"):
			skip = append(skip, !matchCondition(line[len("$if"):]))
		case strings.HasPrefix(line, "$else"):
			if len(skip) > 0 {
				skip[len(skip)-1] = !skip[len(skip)-1]
			}
		case strings.HasPrefix(line, "$endif"):
			if len(skip) > 0 {
				skip = skip[:len(skip)-1]
			}
		case skipping():
		case strings.HasPrefix(line, "$include"):
			inc := strings.TrimSpace(line[len("$include"):])
			if strings.HasPrefix(inc, "~/") {
				if home, err := os.UserHomeDir(); err == nil {
					inc = filepath.Join(home, inc[2:])
				}
			}
			if status := parseInitFile(inc, depth+1); status != 0 {
				return status
			}
		default:
			// readline reports bad lines and keeps going
			parseAndBind(line)
		}
	}
	return 0
}
