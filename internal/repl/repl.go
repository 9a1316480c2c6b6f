package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"StockPilot/internal/agent"
)

// Loop reads commands one line at a time, dispatches them, and prints the
// result until the user types "exit" or input ends.
type Loop struct {
	In     io.Reader
	Out    io.Writer
	Agent  *agent.Agent
	Prompt string
}

// NewLoop creates a Loop with the standard ">> " prompt.
func NewLoop(in io.Reader, out io.Writer, a *agent.Agent) *Loop {
	return &Loop{In: in, Out: out, Agent: a, Prompt: ">> "}
}

// Run blocks until the exit command or EOF.
func (l *Loop) Run() error {
	scanner := bufio.NewScanner(l.In)
	for {
		fmt.Fprint(l.Out, l.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			fmt.Fprintln(l.Out, "Goodbye!")
			return nil
		}
		fmt.Fprintln(l.Out, l.Agent.Handle(line))
	}
}
