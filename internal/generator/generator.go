// Package generator runs a local text-generation CLI (ollama by default)
// as a blocking subprocess.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Instructions precede every topic and steer the model toward JSON output.
const Instructions = "You are a meticulous Python 3.12+ expert. " +
	"Return a concise but thorough JSON object with keys: " +
	"title, summary, key_points (list), code_examples (list of objects with language and code), " +
	"version_notes (list), caveats (list). Use only valid JSON."

// DefaultCommand is the generation command the model name is appended to.
var DefaultCommand = []string{"ollama", "run"}

// Opts configures a Generator.
type Opts struct {
	Command     []string // binary and leading args, default DefaultCommand
	Model       string
	MaxTokens   int    // passed as OLLAMA_NUM_PREDICT when non-zero; -1 means no limit
	Temperature string // passed verbatim as OLLAMA_TEMPERATURE when set
	NumCtx      int    // passed as OLLAMA_NUM_CTX unless already set in the environment
	Env         []string
}

// Generator invokes the generation command once per prompt.
type Generator struct {
	opts Opts
}

// New returns a Generator for opts.
func New(opts Opts) *Generator {
	if len(opts.Command) == 0 {
		opts.Command = DefaultCommand
	}
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	return &Generator{opts: opts}
}

// Binary is the name of the executable that will be run.
func (g *Generator) Binary() string {
	return g.opts.Command[0]
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.opts.Model
}

// ComposePrompt prefixes prompt with the JSON instructions.
func ComposePrompt(prompt string) string {
	return Instructions + "\n\nTOPIC:\n" + prompt
}

// ExitError reports a non-zero exit of the generation command.
type ExitError struct {
	Binary string
	Code   int
	Stderr string
	Stdout string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed: %d\n%s\n%s", e.Binary, e.Code, e.Stderr, e.Stdout)
}

// Generate runs the command with the composed prompt on stdin and returns
// its trimmed stdout. It blocks until the process exits.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	cmd := g.buildCommand(ctx, ComposePrompt(prompt))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Binary: g.Binary(),
				Code:   exitErr.ExitCode(),
				Stderr: errOut,
				Stdout: out,
			}
		}
		return "", fmt.Errorf("generator: start %s: %w", g.Binary(), err)
	}
	return out, nil
}

// buildCommand constructs the exec.Cmd for the generation CLI.
func (g *Generator) buildCommand(ctx context.Context, input string) *exec.Cmd {
	args := append([]string{}, g.opts.Command[1:]...)
	args = append(args, g.opts.Model)

	cmd := exec.CommandContext(ctx, g.opts.Command[0], args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = g.environ()
	return cmd
}

// environ returns the child environment: the base environment plus the
// ollama tuning variables.
func (g *Generator) environ() []string {
	env := append([]string{}, g.opts.Env...)

	if _, ok := lookup(env, "OLLAMA_NUM_CTX"); !ok {
		numCtx := g.opts.NumCtx
		if numCtx <= 0 {
			numCtx = 4096
		}
		env = append(env, "OLLAMA_NUM_CTX="+strconv.Itoa(numCtx))
	}
	if g.opts.MaxTokens != 0 {
		env = setEnv(env, "OLLAMA_NUM_PREDICT", strconv.Itoa(g.opts.MaxTokens))
	}
	if g.opts.Temperature != "" {
		env = setEnv(env, "OLLAMA_TEMPERATURE", g.opts.Temperature)
	}
	return env
}

func lookup(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}

func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	out := env[:0]
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			out = append(out, kv)
		}
	}
	return append(out, prefix+value)
}
