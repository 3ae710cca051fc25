package cmdlogger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// invalidConfigPrefix marks the error logged when a config file is rejected,
// which the CLI turns into its own exit code.
const invalidConfigPrefix = "Ignored invalid config file"

type Handler struct {
	mu sync.Mutex

	stdout             io.Writer
	stderr             io.Writer
	hasErrored         bool
	everythingToStderr bool
	Level              slog.Leveler

	hasErroredBecauseInvalidConfig bool
}

// SendEverythingToStderr tells the logger to send all logs to stderr regardless
// of their level.
//
// This is useful if we're expecting to output structured data to stdout such
// as JSON, which cannot be mixed with other output.
func (c *Handler) SendEverythingToStderr() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.everythingToStderr = true
}

func (c *Handler) SetLevel(level slog.Leveler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Level = level
}

func (c *Handler) writer(level slog.Level) io.Writer {
	if c.everythingToStderr || level >= slog.LevelWarn {
		return c.stderr
	}

	return c.stdout
}

func (c *Handler) Enabled(_ context.Context, level slog.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level == slog.LevelError {
		c.hasErrored = true
	}

	return level >= c.Level.Level()
}

func (c *Handler) Handle(_ context.Context, record slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if record.Level == slog.LevelError {
		c.hasErrored = true

		if strings.HasPrefix(record.Message, invalidConfigPrefix) {
			c.hasErroredBecauseInvalidConfig = true
		}
	}

	var sb strings.Builder

	sb.WriteString(record.Message)

	// attributes are only used for debugging details, so a flat key=value
	// rendering is enough
	record.Attrs(func(attr slog.Attr) bool {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		sb.WriteString(attr.Value.String())

		return true
	})

	sb.WriteString("\n")

	_, err := io.WriteString(c.writer(record.Level), sb.String())

	return err
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError]
func (c *Handler) HasErrored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErrored
}

// HasErroredBecauseInvalidConfig returns true if there have been any calls to
// Handle with a level of [slog.LevelError] due to a config file being invalid
func (c *Handler) HasErroredBecauseInvalidConfig() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErroredBecauseInvalidConfig
}

func (c *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

func (c *Handler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}

var _ CmdLogger = &Handler{}

func New(stdout, stderr io.Writer) CmdLogger {
	return &Handler{
		stdout: stdout,
		stderr: stderr,
		Level:  slog.LevelInfo,
	}
}
