// Package progress provides a terminal progress bar for long-running plot
// computations. Output falls back to occasional plain lines when stderr is
// not a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	carriageReturn = "\r"
	barFilled      = "█"
	barEmpty       = "░"
)

// Config holds configuration options for a progress bar.
type Config struct {
	// Total is the number of items to process.
	Total int

	// Message is the text displayed before the bar.
	Message string

	// Width is the bar width in characters.
	// Defaults to 20.
	Width int

	// Writer is the output destination.
	// Defaults to os.Stderr.
	Writer io.Writer

	// IsTTY overrides terminal auto-detection when set.
	IsTTY *bool
}

// Bar displays a visual progress bar in the terminal.
type Bar struct {
	mu sync.Mutex

	config    Config
	current   int
	startTime time.Time
	active    bool
	isTTY     bool

	// lastOutput stores the length of the last printed line for clearing.
	lastOutput int
}

// New creates a progress bar with the given total and message.
func New(total int, message string) *Bar {
	return NewWithConfig(Config{Total: total, Message: message})
}

// NewWithConfig creates a progress bar with custom configuration.
func NewWithConfig(config Config) *Bar {
	if config.Total <= 0 {
		config.Total = 100
	}
	if config.Width <= 0 {
		config.Width = 20
	}
	if config.Writer == nil {
		config.Writer = os.Stderr
	}

	isTTY := isTerminalWriter(config.Writer)
	if config.IsTTY != nil {
		isTTY = *config.IsTTY
	}

	return &Bar{
		config: config,
		isTTY:  isTTY,
	}
}

func isTerminalWriter(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Current returns the current progress count.
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// IsActive returns true if the bar is running.
func (b *Bar) IsActive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// Start begins progress tracking and displays the initial bar.
// Starting an already running bar is a no-op.
func (b *Bar) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.active {
		return
	}
	b.active = true
	b.startTime = time.Now()
	b.current = 0
	b.render()
}

// Increment advances the progress by one.
func (b *Bar) Increment() {
	b.Set(b.Current() + 1)
}

// Set moves the progress to n, clamped to [0, Total].
func (b *Bar) Set(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > b.config.Total {
		n = b.config.Total
	}

	previous := b.current
	b.current = n

	if b.isTTY {
		b.render()
		return
	}

	// Non-TTY: one line per 10% step.
	if tenth(b.current, b.config.Total) > tenth(previous, b.config.Total) ||
		b.current == b.config.Total {
		fmt.Fprintln(b.config.Writer, b.buildOutput())
	}
}

// Done stops the bar and prints the final state on its own line.
// Finishing an inactive bar is a no-op.
func (b *Bar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return
	}
	b.active = false

	if b.isTTY {
		b.clearLine()
	}
	elapsed := time.Since(b.startTime)
	fmt.Fprintf(b.config.Writer, "%s done (%.1fs)\n", b.config.Message, elapsed.Seconds())
}

func tenth(n, total int) int {
	if total <= 0 {
		return 0
	}
	return n * 10 / total
}

// render redraws the bar in place. Caller must hold the mutex.
func (b *Bar) render() {
	if !b.isTTY {
		return
	}
	output := b.buildOutput()
	if b.lastOutput > 0 {
		spaces := strings.Repeat(" ", b.lastOutput)
		fmt.Fprint(b.config.Writer, carriageReturn+spaces+carriageReturn)
	}
	fmt.Fprint(b.config.Writer, output)
	b.lastOutput = len(output)
}

// buildOutput formats "Message [████░░░░] 40% (8/20)".
// Caller must hold the mutex.
func (b *Bar) buildOutput() string {
	filled := 0
	if b.config.Total > 0 {
		filled = b.current * b.config.Width / b.config.Total
	}
	if filled > b.config.Width {
		filled = b.config.Width
	}

	var sb strings.Builder
	if b.config.Message != "" {
		sb.WriteString(b.config.Message)
		sb.WriteString(" ")
	}
	sb.WriteString("[")
	sb.WriteString(strings.Repeat(barFilled, filled))
	sb.WriteString(strings.Repeat(barEmpty, b.config.Width-filled))
	sb.WriteString("]")

	pct := 0
	if b.config.Total > 0 {
		pct = b.current * 100 / b.config.Total
	}
	fmt.Fprintf(&sb, " %d%% (%d/%d)", pct, b.current, b.config.Total)
	return sb.String()
}

// clearLine erases the in-place bar. Caller must hold the mutex.
func (b *Bar) clearLine() {
	if b.lastOutput > 0 {
		spaces := strings.Repeat(" ", b.lastOutput)
		fmt.Fprint(b.config.Writer, carriageReturn+spaces+carriageReturn)
		b.lastOutput = 0
	}
}
