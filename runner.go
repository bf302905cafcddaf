package arbor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Runner handles the interactive conversation loop using provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Prompt   string
	Renderer ContentRenderer
}

// ContentRenderer transforms an answer before outputting it. It allows for
// TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner. Input and Output must be set by the caller
// (typically os.Stdin and os.Stdout).
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{
		Input:  in,
		Output: out,
		Prompt: "> ",
	}
}

// Run greets the user with the root node's answer, then loops: read a line,
// route it through the engine, print the reply. "exit" and "quit" end the
// conversation, as does EOF.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return errors.New("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return errors.New("output writer must be set (use os.Stdout)")
	}
	reader := bufio.NewReader(r.Input)

	greeting, err := engine.Greet(ctx)
	if err != nil {
		return fmt.Errorf("greeting error: %w", err)
	}
	r.print(greeting)

	for {
		fmt.Fprint(r.Output, r.Prompt)
		text, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// Graceful exit on EOF
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		input := strings.TrimSpace(text)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Fprintln(r.Output, "Bye!")
			return nil
		}

		reply, err := engine.ReceiveMessage(ctx, input)
		if err != nil {
			return fmt.Errorf("conversation error: %w", err)
		}
		r.print(reply)
	}
}

func (r *Runner) print(answer string) {
	output := answer
	if r.Renderer != nil {
		if rendered, err := r.Renderer(answer); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimSpace(output))
}
