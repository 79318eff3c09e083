package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spectraplot/spectraplot/pkg/config"
	"github.com/spectraplot/spectraplot/pkg/errors"
)

// newTestShell builds a shell that writes plots into a temp directory instead
// of the interactive viewer. The readline instance is not needed to exercise
// command handling.
func newTestShell(t *testing.T) (*Shell, *bytes.Buffer, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Figure.Width = 4
	cfg.Figure.Height = 3
	cfg.Figure.DPI = 72
	cfg.Output.Directory = dir
	cfg.Output.Viewer = false
	cfg.Shell.HistoryFile = ""

	var out bytes.Buffer
	s := &Shell{
		cfg:      cfg,
		prompter: NewMockPrompter(true),
		out:      &out,
	}
	return s, &out, dir
}

// -----------------------------------------------------------------------------
// Command Dispatch Tests
// -----------------------------------------------------------------------------

func TestHandleCommand_Quit(t *testing.T) {
	s, _, _ := newTestShell(t)

	for _, cmd := range []string{"/quit", "/exit", "/q"} {
		if err := s.handleCommand(cmd); err != errQuit {
			t.Errorf("expected errQuit for %s, got %v", cmd, err)
		}
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	s, _, _ := newTestShell(t)

	err := s.handleCommand("/bogus")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}

	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected *errors.PlotError, got %T", err)
	}
	if pe.Code != errors.ErrCommandNotFound {
		t.Errorf("expected code %q, got %q", errors.ErrCommandNotFound, pe.Code)
	}
	if pe.Context["command"] != "/bogus" {
		t.Errorf("expected command context, got %q", pe.Context["command"])
	}
}

func TestHandleCommand_Help(t *testing.T) {
	s, out, _ := newTestShell(t)

	if err := s.handleCommand("/help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "/plot <name>") {
		t.Errorf("expected command listing, got %q", out.String())
	}
}

func TestHandleCommand_Plots(t *testing.T) {
	s, out, _ := newTestShell(t)

	if err := s.handleCommand("/plots"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"visible-spectrum", "planckian-1960", "cri"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("expected %q in plot listing", name)
		}
	}
}

func TestHandleCommand_Datasets(t *testing.T) {
	s, out, _ := newTestShell(t)

	if err := s.handleCommand("/datasets cmfs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "CIE 1931 2 Degree Standard Observer") {
		t.Errorf("expected observer name in listing, got %q", out.String())
	}
}

func TestHandleCommand_DatasetsUnknownKind(t *testing.T) {
	s, _, _ := newTestShell(t)

	err := s.handleCommand("/datasets bogus")
	if err == nil {
		t.Fatal("expected error for unknown dataset kind")
	}

	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected *errors.PlotError, got %T", err)
	}
	if len(pe.ValidNames) == 0 {
		t.Error("expected valid dataset kinds to be listed")
	}
}

// -----------------------------------------------------------------------------
// Plot Command Tests
// -----------------------------------------------------------------------------

func TestHandlePlot_MissingArgs(t *testing.T) {
	s, _, _ := newTestShell(t)

	err := s.handleCommand("/plot")
	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected *errors.PlotError, got %T", err)
	}
	if pe.Code != errors.ErrCommandMissingArgs {
		t.Errorf("expected code %q, got %q", errors.ErrCommandMissingArgs, pe.Code)
	}
}

func TestHandlePlot_UnknownName(t *testing.T) {
	s, _, _ := newTestShell(t)

	err := s.handleCommand("/plot bogus")
	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected *errors.PlotError, got %T", err)
	}
	if len(pe.ValidNames) == 0 {
		t.Error("expected valid plot names to be listed")
	}
}

func TestHandlePlot_WritesFile(t *testing.T) {
	s, out, dir := newTestShell(t)

	if err := s.handleCommand("/plot visible-spectrum"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, "visible-spectrum.png")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected plot file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty plot file")
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Errorf("expected write notice, got %q", out.String())
	}
}

func TestHandlePlot_NamesWithSpaces(t *testing.T) {
	s, _, dir := newTestShell(t)

	if err := s.handleCommand("/plot illuminants A, D65"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "illuminants.png")); err != nil {
		t.Fatalf("expected plot file: %v", err)
	}
}

// -----------------------------------------------------------------------------
// Save Command Tests
// -----------------------------------------------------------------------------

func TestHandleSave_NewFileSkipsPrompt(t *testing.T) {
	s, _, dir := newTestShell(t)
	path := filepath.Join(dir, "spectrum.png")

	if err := s.handleCommand("/save visible-spectrum " + path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected saved file: %v", err)
	}
	if s.prompter.(*MockPrompter).CallCount != 0 {
		t.Error("expected no confirmation for a new file")
	}
}

func TestHandleSave_OverwriteConfirmed(t *testing.T) {
	s, _, dir := newTestShell(t)
	path := filepath.Join(dir, "spectrum.png")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := s.handleCommand("/save visible-spectrum " + path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock := s.prompter.(*MockPrompter)
	if mock.CallCount != 1 {
		t.Errorf("expected one confirmation, got %d", mock.CallCount)
	}
	if !strings.Contains(mock.LastPrompt(), path) {
		t.Errorf("expected path in prompt, got %q", mock.LastPrompt())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected saved file: %v", err)
	}
	if info.Size() == int64(len("old")) {
		t.Error("expected file to be replaced")
	}
}

func TestHandleSave_OverwriteDeclined(t *testing.T) {
	s, out, dir := newTestShell(t)
	s.prompter = NewMockPrompter(false)
	path := filepath.Join(dir, "spectrum.png")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := s.handleCommand("/save visible-spectrum " + path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != "old" {
		t.Error("expected declined overwrite to leave the file untouched")
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("expected cancellation notice, got %q", out.String())
	}
}

func TestHandleSave_MissingArgs(t *testing.T) {
	s, _, _ := newTestShell(t)

	err := s.handleCommand("/save visible-spectrum")
	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected *errors.PlotError, got %T", err)
	}
	if pe.Code != errors.ErrCommandMissingArgs {
		t.Errorf("expected code %q, got %q", errors.ErrCommandMissingArgs, pe.Code)
	}
}

// -----------------------------------------------------------------------------
// Argument Parsing Tests
// -----------------------------------------------------------------------------

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"empty", nil, nil},
		{"single", []string{"A"}, []string{"A"}},
		{"comma separated", []string{"A,", "D65"}, []string{"A", "D65"}},
		{"names with spaces", []string{"ACES", "RGB,", "sRGB"}, []string{"ACES RGB", "sRGB"}},
		{"trailing comma", []string{"A,"}, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitNames(tt.args)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
					break
				}
			}
		})
	}
}

func TestSweepArgs(t *testing.T) {
	surface, spacing, err := sweepArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surface != 1.25 || spacing != 0.00075 {
		t.Errorf("expected defaults 1.25/0.00075, got %g/%g", surface, spacing)
	}

	surface, spacing, err = sweepArgs([]string{"2", "0.05"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surface != 2 || spacing != 0.05 {
		t.Errorf("expected 2/0.05, got %g/%g", surface, spacing)
	}
}

func TestFloatArgs_Invalid(t *testing.T) {
	_, err := floatArgs([]string{"abc"}, 1)
	pe, ok := errors.AsPlotError(err)
	if !ok {
		t.Fatalf("expected *errors.PlotError, got %T", err)
	}
	if pe.Code != errors.ErrCommandInvalidSyntax {
		t.Errorf("expected code %q, got %q", errors.ErrCommandInvalidSyntax, pe.Code)
	}
}
