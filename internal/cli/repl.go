package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubealg"
)

// replHistory is how many past evaluations stay on screen.
const replHistory = 8

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively expand expressions",
	Long: `Start an interactive session: type an expression and press Enter to see
its expansion, inverse and move count.

Keys:
  Enter     - Expand the current expression
  Up        - Recall the previous expression
  Esc/Ctrl+C - Quit`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newReplModel(algOptions()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("repl error: %w", err)
	}
	return nil
}

// replEntry is one evaluated expression.
type replEntry struct {
	expr    string
	result  string
	inverse string
	moves   int
	err     error
}

type replModel struct {
	input    textinput.Model
	history  []replEntry
	opts     []cubealg.Option
	quitting bool
}

func newReplModel(opts []cubealg.Option) *replModel {
	ti := textinput.New()
	ti.Placeholder = "[[D, R U R'], F]"
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return &replModel{
		input: ti,
		opts:  opts,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" {
				return m, nil
			}
			if expr == "quit" || expr == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.history = append(m.history, m.evaluate(expr))
			m.input.Reset()
			return m, nil

		case "up":
			if len(m.history) > 0 {
				m.input.SetValue(m.history[len(m.history)-1].expr)
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) evaluate(expr string) replEntry {
	entry := replEntry{expr: expr}

	result, err := cubealg.Simplify(expr, m.opts...)
	if err != nil {
		logger.Debug("repl evaluation failed", zap.String("expression", expr), zap.Error(err))
		entry.err = err
		return entry
	}

	entry.result = result
	entry.inverse = cubealg.Invert(result)
	entry.moves = len(strings.Fields(result))
	return entry
}

func (m *replModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubealg"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  %d evaluated", len(m.history))))
	b.WriteString("\n\n")

	start := 0
	if len(m.history) > replHistory {
		start = len(m.history) - replHistory
	}
	for _, e := range m.history[start:] {
		b.WriteString(exprStyle.Render(e.expr))
		b.WriteString("\n")
		if e.err != nil {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(e.err.Error()))
			b.WriteString("\n\n")
			continue
		}
		b.WriteString("  = ")
		b.WriteString(moveStyle.Render(e.result))
		b.WriteString(statusStyle.Render(fmt.Sprintf("  (%d moves)", e.moves)))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("  inverse: " + e.inverse))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter=expand  up=recall  esc=quit"))
	b.WriteString("\n")

	return b.String()
}
