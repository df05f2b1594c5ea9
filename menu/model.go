// SPDX-License-Identifier: MIT
// Package: chaosgame/menu
//
// model.go - Bubble Tea model collecting one Selection.

package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/chaosgame/geometry"
)

// Choice is a top-level menu entry.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceChaos
	ChoiceSequence
	ChoiceQuit
)

// Selection is what the user asked for. Fields not prompted for by the
// chosen entry keep their defaults.
type Selection struct {
	Choice   Choice
	Sides    int
	Points   int
	Fraction float64
	Path     string
}

type stage int

const (
	stageMenu stage = iota
	stageSides
	stagePoints
	stageFraction
	stagePath
	stageDone
)

const invalidChoice = "Please enter a valid input choice from the above."

// Model is the Bubble Tea model of one menu round.
type Model struct {
	input  textinput.Model
	stage  stage
	sel    Selection
	status string
}

// New creates a model whose prompts default to def. Empty answers keep the
// default.
func New(def Selection) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256

	m := Model{input: ti, sel: def}
	m.sel.Choice = ChoiceNone
	m.prepare()

	return m
}

// Selection returns the collected answers.
func (m Model) Selection() Selection { return m.sel }

// Done reports whether the round has finished.
func (m Model) Done() bool { return m.stage == stageDone }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.sel.Choice = ChoiceQuit
			m.stage = stageDone
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(strings.TrimSpace(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates one answer and advances.
func (m Model) submit(v string) (tea.Model, tea.Cmd) {
	var err error
	switch m.stage {
	case stageMenu:
		switch v {
		case "1":
			m.sel.Choice = ChoiceChaos
			m.stage = stageSides
		case "2":
			m.sel.Choice = ChoiceSequence
			m.stage = stageFraction
		case "3":
			m.sel.Choice = ChoiceQuit
			m.stage = stageDone
		default:
			err = errors.New(invalidChoice)
		}
	case stageSides:
		if m.sel.Sides, err = parseInt(v, m.sel.Sides, geometry.MinSides); err == nil {
			m.stage = stagePoints
		}
	case stagePoints:
		if m.sel.Points, err = parseInt(v, m.sel.Points, 1); err == nil {
			m.stage = stageFraction
		}
	case stageFraction:
		if m.sel.Fraction, err = parseFloat(v, m.sel.Fraction); err == nil {
			if m.sel.Choice == ChoiceSequence {
				m.stage = stagePath
			} else {
				m.stage = stageDone
			}
		}
	case stagePath:
		if v != "" {
			m.sel.Path = v
		}
		if m.sel.Path == "" {
			err = errors.New("a sequence file is required")
		} else {
			m.stage = stageDone
		}
	}

	if err != nil {
		m.status = err.Error()
		m.input.SetValue("")
		return m, nil
	}
	m.status = ""
	if m.stage == stageDone {
		return m, tea.Quit
	}
	m.prepare()

	return m, nil
}

// prepare resets the input for the current stage.
func (m *Model) prepare() {
	m.input.SetValue("")
	switch m.stage {
	case stageSides:
		m.input.Placeholder = strconv.Itoa(m.sel.Sides)
	case stagePoints:
		m.input.Placeholder = strconv.Itoa(m.sel.Points)
	case stageFraction:
		m.input.Placeholder = strconv.FormatFloat(m.sel.Fraction, 'g', -1, 64)
	case stagePath:
		m.input.Placeholder = m.sel.Path
	default:
		m.input.Placeholder = "1, 2 or 3"
	}
}

func (m Model) prompt() string {
	switch m.stage {
	case stageSides:
		return "Enter number of sides that the polygon should have:"
	case stagePoints:
		return "Enter number of iterations:"
	case stageFraction:
		return "Enter the fraction of distance:"
	case stagePath:
		return "Enter the sequence file:"
	default:
		return "Enter the choice of your display:"
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	entryStyle  = lipgloss.NewStyle().PaddingLeft(2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// View renders the menu, the current prompt and any validation error.
func (m Model) View() string {
	if m.stage == stageDone {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chaos Game") + "\n")
	for _, e := range []string{"1: Chaos Game", "2: Genetic Sequence", "3: Quit"} {
		b.WriteString(entryStyle.Render(e) + "\n")
	}
	b.WriteString("\n" + m.prompt() + "\n")
	b.WriteString(inputStyle.Render(m.input.View()) + "\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	return b.String()
}

// Run shows one menu round on in/out and returns the selection. Interrupting
// the program yields ChoiceQuit.
func Run(def Selection, in io.Reader, out io.Writer) (Selection, error) {
	p := tea.NewProgram(New(def), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Selection{}, fmt.Errorf("menu: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.Done() {
		return Selection{Choice: ChoiceQuit}, nil
	}

	return m.Selection(), nil
}

func parseInt(v string, def, floor int) (int, error) {
	if v == "" {
		v = strconv.Itoa(def)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%q is not a whole number", v)
	}
	if n < floor {
		return def, fmt.Errorf("%d is below the minimum of %d", n, floor)
	}
	return n, nil
}

func parseFloat(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%q is not a number", v)
	}
	return f, nil
}
