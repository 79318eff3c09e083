package shell

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

// commands is the static list of available shell commands (without the / prefix).
var commands = []string{
	"quit",
	"exit",
	"q",
	"help",
	"h",
	"plots",
	"plot",
	"save",
	"datasets",
}

// plotCommands is the list of commands that expect a plot name as their first
// argument. These commands trigger plot name tab completion.
var plotCommands = []string{
	"plot",
	"save",
}

// ShellCompleter provides tab completion for commands, plot names, and
// dataset kinds. It implements the readline.AutoCompleter interface.
type ShellCompleter struct{}

// NewShellCompleter creates a new completer.
func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

// Ensure ShellCompleter implements readline.AutoCompleter at compile time.
var _ readline.AutoCompleter = (*ShellCompleter)(nil)

// Do implements readline.AutoCompleter.
// It provides completions for:
//   - Commands starting with "/" (e.g., /help, /plots)
//   - Plot names as the first argument of /plot and /save
//   - Dataset kinds as the first argument of /datasets
//
// Parameters:
//   - line: The whole line of input as runes
//   - pos: The current cursor position in the line
//
// Returns:
//   - newLine: All candidate completions (as suffixes after the common prefix)
//   - length: The number of characters in the common prefix
func (c *ShellCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	// Edge case: empty input or cursor at beginning
	if len(line) == 0 || pos <= 0 {
		return nil, 0
	}

	// Clamp pos to valid range (safety check)
	if pos > len(line) {
		pos = len(line)
	}

	// Extract text up to cursor position
	lineStr := string(line[:pos])

	// Find the start of the current word
	wordStart := findWordStart(lineStr)
	currentWord := lineStr[wordStart:]

	// Edge case: empty word (e.g., trailing space)
	if currentWord == "" {
		return nil, 0
	}

	// Handle command completion (starts with /)
	if strings.HasPrefix(currentWord, "/") {
		return c.completeCommand(currentWord)
	}

	// Handle plot name completion for the first argument of /plot and /save
	if c.isPlotCommandContext(lineStr, wordStart) {
		return completeFrom(currentWord, plotNames())
	}

	// Handle dataset kind completion for the first argument of /datasets
	if commandBefore(lineStr, wordStart) == "datasets" {
		return completeFrom(currentWord, datasetKindNames())
	}

	return nil, 0
}

// findWordStart returns the index where the current word begins.
// It looks for the last whitespace character (space or tab) and returns
// the position after it. If no whitespace is found, returns 0 (start of line).
func findWordStart(s string) int {
	lastSpace := strings.LastIndex(s, " ")
	lastTab := strings.LastIndex(s, "\t")

	wordStart := lastSpace
	if lastTab > wordStart {
		wordStart = lastTab
	}

	return wordStart + 1
}

// commandBefore returns the command name preceding the current word, or ""
// when the line does not start with a command or the cursor is past the
// command's first argument.
func commandBefore(line string, wordStart int) string {
	beforeWord := strings.TrimRight(line[:wordStart], " \t")

	if !strings.HasPrefix(beforeWord, "/") {
		return ""
	}

	// Only the first argument is completed.
	cmdName := strings.TrimPrefix(beforeWord, "/")
	if strings.ContainsAny(cmdName, " \t") {
		return ""
	}
	return cmdName
}

// isPlotCommandContext checks if the current word is the plot name argument
// of a plot-expecting command like /plot or /save.
func (c *ShellCompleter) isPlotCommandContext(line string, wordStart int) bool {
	cmdName := commandBefore(line, wordStart)
	for _, plotCmd := range plotCommands {
		if cmdName == plotCmd {
			return true
		}
	}
	return false
}

// completeCommand returns completions for commands starting with the given prefix.
// The prefix includes the leading "/" character.
func (c *ShellCompleter) completeCommand(prefix string) ([][]rune, int) {
	// Remove the leading "/" to match against command names
	cmdPrefix := strings.TrimPrefix(prefix, "/")

	var matches [][]rune
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, cmdPrefix) {
			// Return the suffix that completes the command (add space after)
			suffix := cmd[len(cmdPrefix):] + " "
			matches = append(matches, []rune(suffix))
		}
	}

	// Return the length of the prefix (including "/") that we're completing
	return matches, len(prefix)
}

// completeFrom returns completions for candidates starting with the given prefix.
func completeFrom(prefix string, candidates []string) ([][]rune, int) {
	var matches [][]rune
	for _, name := range candidates {
		if strings.HasPrefix(name, prefix) {
			// Return the suffix that completes the name (add space after)
			suffix := name[len(prefix):] + " "
			matches = append(matches, []rune(suffix))
		}
	}

	return matches, len(prefix)
}

func datasetKindNames() []string {
	kinds := make([]string, 0, len(datasetKinds))
	for kind := range datasetKinds {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
