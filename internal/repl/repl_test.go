package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockPilot/internal/agent"
	"StockPilot/internal/chart"
	"StockPilot/internal/collector"
	"StockPilot/internal/model"
)

func runScript(t *testing.T, input string) string {
	t.Helper()
	fetcher := &collector.MockFetcher{
		Series: map[string]*model.PriceSeries{"BADTICKER": {Symbol: "BADTICKER"}},
		Price:  100,
	}
	a := agent.NewAgent(fetcher, chart.NewNoopRenderer(), "", "")
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader(input), &out, a)
	require.NoError(t, loop.Run())
	return out.String()
}

func TestRun_ExitTerminates(t *testing.T) {
	out := runScript(t, "exit\n")
	assert.Contains(t, out, ">> ")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_ExitIsCaseInsensitive(t *testing.T) {
	out := runScript(t, "  EXIT  \n")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_DispatchesAndKeepsGoing(t *testing.T) {
	out := runScript(t, "foobar\nstats badticker\nhelp\nexit\n")
	assert.Contains(t, out, "Unknown command. Use 'help' to see available commands.")
	assert.Contains(t, out, "No data available for ticker BADTICKER")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_EmptyLinePrintsNotice(t *testing.T) {
	out := runScript(t, "\nexit\n")
	assert.Contains(t, out, "Empty command. Use 'help' to see available commands.")
}

func TestRun_EOFEndsLoop(t *testing.T) {
	out := runScript(t, "help\n")
	assert.Contains(t, out, "Available commands:")
	assert.NotContains(t, out, "Goodbye!")
}
