package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// maxShellCandidates caps how many PATH executables one lookup returns
const maxShellCandidates = 100

// CommandCompleter completes session commands written as /name and
// executables on PATH written as !name
type CommandCompleter struct {
	// Commands the session handles itself, with or without the leading /
	SpecificCommands []string

	// Path is searched for executables, defaulting to $PATH
	Path string
}

// NewCommandCompleter creates a new command completer
func NewCommandCompleter(specificCommands []string) *CommandCompleter {
	return &CommandCompleter{
		SpecificCommands: specificCommands,
	}
}

func (c *CommandCompleter) Name() string {
	return "commands"
}

func (c *CommandCompleter) Description() string {
	return "Session commands after / and PATH executables after !"
}

// Complete returns candidates that keep the leading / or ! so they
// replace the whole word readline hands over
func (c *CommandCompleter) Complete(text string) []string {
	switch {
	case strings.HasPrefix(text, "!"):
		return lo.Map(c.completeShellCommands(text[1:]), func(cmd string, _ int) string {
			return "!" + cmd
		})
	case strings.HasPrefix(text, "/"):
		return c.completeSessionCommands(text[1:])
	}
	return nil
}

// completeSessionCommands filters the known commands by prefix
func (c *CommandCompleter) completeSessionCommands(prefix string) []string {
	// /help is always offered
	commands := append([]string{"help"}, c.SpecificCommands...)
	commands = lo.Map(commands, func(cmd string, _ int) string {
		return strings.TrimPrefix(cmd, "/")
	})

	var candidates []string
	for _, cmd := range lo.Uniq(commands) {
		if strings.HasPrefix(cmd, prefix) {
			candidates = append(candidates, "/"+cmd)
		}
	}
	return candidates
}

// completeShellCommands handles shell command auto-completion
func (c *CommandCompleter) completeShellCommands(cmdPrefix string) []string {
	// Get all executable commands in the system
	pathEnv := c.Path
	if pathEnv == "" {
		pathEnv = os.Getenv("PATH")
	}
	if pathEnv == "" {
		return nil
	}

	var matchingCommands []string

	// Check executable files in each PATH directory
	for _, dir := range filepath.SplitList(pathEnv) {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, file := range files {
			// Skip directories
			if file.IsDir() {
				continue
			}

			// Only match executables starting with cmdPrefix
			fileName := file.Name()
			if !strings.HasPrefix(fileName, cmdPrefix) || !executable(file) {
				continue
			}
			matchingCommands = append(matchingCommands, fileName)

			// Limit the number of candidates to avoid overwhelming
			if len(matchingCommands) >= maxShellCandidates {
				break
			}
		}

		// Stop searching if we have enough candidates
		if len(matchingCommands) >= maxShellCandidates {
			break
		}
	}

	// The same name may live in several PATH directories
	matchingCommands = lo.Uniq(matchingCommands)
	sort.Strings(matchingCommands)
	return matchingCommands
}

func executable(file os.DirEntry) bool {
	info, err := file.Info()
	if err != nil {
		return false
	}
	return info.Mode()&0o111 != 0
}
