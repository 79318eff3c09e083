package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks the user to confirm an action, such as overwriting an
// existing plot file. The interface enables easy mocking for testing.
type Prompter interface {
	// Confirm displays a message and waits for the user to confirm.
	// Returns true if the user confirms (enters "yes" or "y"), false otherwise.
	Confirm(message string) (bool, error)
}

// InteractivePrompter implements Prompter for real user interaction.
// It reads from stdin and writes prompts to stdout.
type InteractivePrompter struct {
	reader io.Reader
	writer io.Writer
}

// NewInteractivePrompter creates a new InteractivePrompter using stdin/stdout.
func NewInteractivePrompter() *InteractivePrompter {
	return &InteractivePrompter{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewInteractivePrompterWithIO creates an InteractivePrompter with custom I/O.
func NewInteractivePrompterWithIO(reader io.Reader, writer io.Writer) *InteractivePrompter {
	return &InteractivePrompter{
		reader: reader,
		writer: writer,
	}
}

// Confirm implements Prompter.Confirm for interactive prompts.
// It displays the message followed by " [y/N]: " and reads user input.
// Returns true only if the user enters "yes" or "y" (case-insensitive).
// Empty input and EOF default to "no".
func (p *InteractivePrompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.writer, "%s [y/N]: ", message)

	scanner := bufio.NewScanner(p.reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		return false, nil
	}

	response := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return response == "yes" || response == "y", nil
}

var _ Prompter = (*InteractivePrompter)(nil)

// MockPrompter is a test implementation of Prompter that returns predefined
// responses. It records all prompts for verification in tests.
type MockPrompter struct {
	// Response is the predefined response to return from Confirm.
	Response bool
	// Error is an optional error to return from Confirm.
	Error error
	// Prompts records all messages passed to Confirm.
	Prompts []string
	// CallCount tracks how many times Confirm was called.
	CallCount int
}

// NewMockPrompter creates a MockPrompter that will return the given response.
func NewMockPrompter(response bool) *MockPrompter {
	return &MockPrompter{
		Response: response,
		Prompts:  make([]string, 0),
	}
}

// Confirm implements Prompter.Confirm for testing.
func (m *MockPrompter) Confirm(message string) (bool, error) {
	m.CallCount++
	m.Prompts = append(m.Prompts, message)

	if m.Error != nil {
		return false, m.Error
	}
	return m.Response, nil
}

// LastPrompt returns the most recent prompt message, or empty string if none.
func (m *MockPrompter) LastPrompt() string {
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

var _ Prompter = (*MockPrompter)(nil)
