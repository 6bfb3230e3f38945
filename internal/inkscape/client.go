package inkscape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultActions selects every text element and converts the selection
// to path geometry.
const DefaultActions = "select-by-element:text;object-to-path;"

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stderr string, err error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithActions replaces the default action list.
func WithActions(actions string) Option {
	return func(c *Client) {
		if strings.TrimSpace(actions) != "" {
			c.actions = actions
		}
	}
}

// Client wraps text-to-path conversions through the Inkscape CLI.
type Client struct {
	binary  string
	actions string
	timeout time.Duration
	exec    Executor
}

// New constructs a converter client. timeoutSeconds bounds a single
// invocation; zero disables the bound.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("inkscape binary required")
	}
	client := &Client{
		binary:  binary,
		actions: DefaultActions,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Binary returns the configured executable name.
func (c *Client) Binary() string {
	return c.binary
}

// Convert writes doc to inPath, runs the conversion, and leaves the
// converted document at outPath. The input file is overwritten when it
// already exists; cleanup of both transfer files is the caller's job.
func (c *Client) Convert(ctx context.Context, doc string, inPath, outPath string) error {
	if err := os.WriteFile(inPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write converter input: %w", err)
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	args := []string{"--actions", c.actions, inPath, "-o", outPath}
	stderr, err := c.exec.Run(runCtx, c.binary, args)
	if err != nil {
		if tail := stderrTail(stderr); tail != "" {
			return fmt.Errorf("inkscape convert: %w: %s", err, tail)
		}
		return fmt.Errorf("inkscape convert: %w", err)
	}

	if _, err := os.Stat(outPath); errors.Is(err, os.ErrNotExist) {
		return errors.New("inkscape convert: tool exited cleanly but produced no output file")
	} else if err != nil {
		return fmt.Errorf("inspect converter output: %w", err)
	}
	return nil
}

// stderrTail reduces tool chatter to the last few lines, which is where
// Inkscape reports the actual failure.
func stderrTail(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	joined := strings.TrimSpace(strings.Join(lines, "; "))
	return joined
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stderr.String(), fmt.Errorf("run %s: %w", binary, err)
	}
	return stderr.String(), nil
}
