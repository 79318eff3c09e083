package shell

import (
	"strings"
	"testing"
)

func complete(t *testing.T, line string) ([]string, int) {
	t.Helper()
	c := NewShellCompleter()
	runes := []rune(line)
	matches, length := c.Do(runes, len(runes))
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out, length
}

func containsCompletion(matches []string, want string) bool {
	for _, m := range matches {
		if m == want {
			return true
		}
	}
	return false
}

func TestCompleter_CommandPrefix(t *testing.T) {
	matches, length := complete(t, "/pl")

	if length != 3 {
		t.Errorf("expected prefix length 3, got %d", length)
	}
	if !containsCompletion(matches, "ot ") {
		t.Errorf("expected completion for /plot, got %v", matches)
	}
	if !containsCompletion(matches, "ots ") {
		t.Errorf("expected completion for /plots, got %v", matches)
	}
}

func TestCompleter_PlotNameAfterPlot(t *testing.T) {
	matches, length := complete(t, "/plot dia")

	if length != 3 {
		t.Errorf("expected prefix length 3, got %d", length)
	}
	if !containsCompletion(matches, "gram-1931 ") {
		t.Errorf("expected diagram-1931 completion, got %v", matches)
	}
	if !containsCompletion(matches, "gram-colours-1976 ") {
		t.Errorf("expected diagram-colours-1976 completion, got %v", matches)
	}
}

func TestCompleter_PlotNameAfterSave(t *testing.T) {
	matches, _ := complete(t, "/save vis")

	if !containsCompletion(matches, "ible-spectrum ") {
		t.Errorf("expected visible-spectrum completion, got %v", matches)
	}
}

func TestCompleter_DatasetKinds(t *testing.T) {
	matches, _ := complete(t, "/datasets ch")

	if !containsCompletion(matches, "eckers ") {
		t.Errorf("expected checkers completion, got %v", matches)
	}
}

func TestCompleter_NoCompletionPastFirstArgument(t *testing.T) {
	matches, _ := complete(t, "/plot diagram-1931 dia")
	if len(matches) != 0 {
		t.Errorf("expected no completions past the plot name, got %v", matches)
	}
}

func TestCompleter_NoCompletionWithoutCommand(t *testing.T) {
	matches, _ := complete(t, "hello wor")
	if len(matches) != 0 {
		t.Errorf("expected no completions for plain text, got %v", matches)
	}
}

func TestCompleter_EmptyInput(t *testing.T) {
	c := NewShellCompleter()

	matches, length := c.Do(nil, 0)
	if matches != nil || length != 0 {
		t.Error("expected no completions for empty input")
	}

	matches, _ = complete(t, "/plot ")
	if len(matches) != 0 {
		t.Errorf("expected no completions for a trailing space, got %v", matches)
	}
}

func TestCompleter_AllCommandsCompletable(t *testing.T) {
	for _, cmd := range commands {
		matches, _ := complete(t, "/"+cmd)
		found := false
		for _, m := range matches {
			if strings.TrimSpace(m) == "" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected exact completion for /%s, got %v", cmd, matches)
		}
	}
}

func TestFindWordStart(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"", 0},
		{"/plot", 0},
		{"/plot dia", 6},
		{"/plot\tdia", 6},
		{"/datasets cmfs ", 15},
	}

	for _, tt := range tests {
		if got := findWordStart(tt.line); got != tt.expected {
			t.Errorf("findWordStart(%q): expected %d, got %d",
				tt.line, tt.expected, got)
		}
	}
}
