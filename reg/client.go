package reg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/regcli/internal/regexec"
	"github.com/joshuapare/regcli/pkg/types"
)

// Runner executes one external command and reports its exit status. It is
// the collaborator boundary for process handling: stdin is closed, stderr is
// discarded, stdout is streamed to the sink. A non-zero exit status is not a
// Runner error; the error return is reserved for spawn failures.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdout io.Writer) (exitCode int, err error)
}

// Client is the operation facade over the registry tool. Each method builds
// the argument vector, hands it to the Runner, and parses the captured
// output. A Client holds no per-operation state and is safe for concurrent
// use; every call owns its own process and output buffer.
type Client struct {
	runner Runner
	tool   string
	log    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRunner substitutes the process runner (used by tests and by callers
// that wrap process supervision around the tool).
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// WithTool sets the tool executable name or path. Default "reg".
func WithTool(path string) Option {
	return func(c *Client) { c.tool = path }
}

// WithLogger sets the logger for command traces.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client backed by the real process runner.
func New(opts ...Option) *Client {
	c := &Client{
		runner: regexec.New(),
		tool:   "reg",
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes one argument vector, buffering stdout until the process has
// exited so the parser always sees complete line boundaries. A non-zero exit
// becomes a ToolError carrying the code.
func (c *Client) run(ctx context.Context, args []string) (string, error) {
	var buf bytes.Buffer
	c.log.Debug("running registry tool", "tool", c.tool, "args", args)
	code, err := c.runner.Run(ctx, c.tool, args, &buf)
	if err != nil {
		return "", fmt.Errorf("running %s: %w", c.tool, err)
	}
	if code != 0 {
		c.log.Debug("registry tool failed", "tool", c.tool, "exit", code)
		return "", &types.ToolError{ExitCode: code, Args: args}
	}
	return decodeOutput(buf.Bytes()), nil
}

// decodeOutput converts captured bytes to UTF-8. The tool writes the ANSI
// code page, which is typically Windows-1252.
func decodeOutput(b []byte) string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// ListValues returns every named value under loc, in the order the tool
// emitted them. A key with no values yields an empty slice, not an error.
func (c *Client) ListValues(ctx context.Context, loc Location) ([]ValueRecord, error) {
	out, err := c.run(ctx, queryArgs(loc))
	if err != nil {
		return nil, err
	}
	return parseValues(out, loc), nil
}

// ListSubkeys returns the direct children of loc. No children yields an
// empty slice.
func (c *Client) ListSubkeys(ctx context.Context, loc Location) ([]Location, error) {
	out, err := c.run(ctx, queryArgs(loc))
	if err != nil {
		return nil, err
	}
	return parseSubkeys(out, loc), nil
}

// GetValue returns the named value under loc, or nil if the tool reported
// success but emitted no matching record. Not-found is not an error; a
// failed process exit is.
func (c *Client) GetValue(ctx context.Context, loc Location, name string) (*ValueRecord, error) {
	out, err := c.run(ctx, getValueArgs(loc, name))
	if err != nil {
		return nil, err
	}
	return parseSingleValue(out, loc), nil
}

// SetValue writes a value under loc, overwriting any existing value of the
// same name. An empty name addresses the key's default value. The type is
// validated before any process is spawned.
func (c *Client) SetValue(ctx context.Context, loc Location, name string, typ types.RegType, data string) error {
	args, err := setValueArgs(loc, name, typ, data)
	if err != nil {
		return err
	}
	_, err = c.run(ctx, args)
	return err
}

// RemoveValue deletes one named value. The tool's own fatal condition for a
// missing key is surfaced, not masked.
func (c *Client) RemoveValue(ctx context.Context, loc Location, name string) error {
	_, err := c.run(ctx, removeValueArgs(loc, name))
	return err
}

// EraseKey deletes every value under loc but keeps the key itself.
func (c *Client) EraseKey(ctx context.Context, loc Location) error {
	_, err := c.run(ctx, eraseKeyArgs(loc))
	return err
}

// CreateKey creates loc. Creating an existing key succeeds (idempotent).
func (c *Client) CreateKey(ctx context.Context, loc Location) error {
	_, err := c.run(ctx, createKeyArgs(loc))
	return err
}

// DeleteKey removes loc and all descendants. Destructive and irreversible.
func (c *Client) DeleteKey(ctx context.Context, loc Location) error {
	_, err := c.run(ctx, deleteKeyArgs(loc))
	return err
}

// KeyExists reports whether loc exists. A failed tool exit means "no";
// anything else (spawn failure) is a real error.
func (c *Client) KeyExists(ctx context.Context, loc Location) (bool, error) {
	_, err := c.run(ctx, queryArgs(loc))
	if err != nil {
		var te *types.ToolError
		if errors.As(err, &te) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ValueExists reports whether the named value exists under loc, mapped from
// GetValue the same way KeyExists is mapped from a listing.
func (c *Client) ValueExists(ctx context.Context, loc Location, name string) (bool, error) {
	rec, err := c.GetValue(ctx, loc, name)
	if err != nil {
		var te *types.ToolError
		if errors.As(err, &te) {
			return false, nil
		}
		return false, err
	}
	return rec != nil, nil
}
