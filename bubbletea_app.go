// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/cybrota/arbor/console"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input        textinput.Model
	canvas       viewport.Model
	helpViewport viewport.Model

	// Data
	manager   *console.Manager
	helpCache *cache.Cache
	config    *Config

	// State
	showHelp   bool
	status     console.Result
	history    []string
	historyIdx int

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Tab            lipgloss.Style
	TabActive      lipgloss.Style

	Node         lipgloss.Style
	NodeSelected lipgloss.Style
	Cell         lipgloss.Style
	CellSelected lipgloss.Style
	Connector    lipgloss.Style
	Muted        lipgloss.Style
}

// NewStyles creates the styles for the current colour scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(scheme.OnPrimary).
			Background(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		Node: lipgloss.NewStyle().
			Foreground(scheme.Text).
			Bold(true),
		NodeSelected: lipgloss.NewStyle().
			Foreground(scheme.OnPrimary).
			Background(scheme.Warning).
			Bold(true),
		Cell: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border).
			Padding(0, 1),
		CellSelected: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(scheme.Warning).
			Padding(0, 1).
			Bold(true),
		Connector: lipgloss.NewStyle().
			Foreground(scheme.Border),
		Muted: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
	}
}

// clipboardMsg reports the outcome of a ctrl+y copy
type clipboardMsg struct {
	text string
	err  error
}

// InitialModel creates the initial model
func InitialModel(manager *console.Manager, hc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. insert 10 20 30 (help lists them)"
	ti.Prompt = "❯ "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	canvas := viewport.New(0, 0)
	helpViewport := viewport.New(0, 0)

	glamourRenderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		log.Warn().Err(err).Msg("help pages will be shown as plain markdown")
		glamourRenderer = nil
	}

	model := Model{
		input:           ti,
		canvas:          canvas,
		helpViewport:    helpViewport,
		manager:         manager,
		helpCache:       hc,
		config:          config,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.input.PromptStyle = model.styles.InputPrompt
	model.status = console.Result{Status: "Tip: " + GetRandomTip()}
	model.refreshCanvas()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.status = console.Result{Status: "Copy failed: " + msg.err.Error(), Err: msg.err}
		} else {
			m.status = console.Result{Status: "Copied to clipboard: " + msg.text}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshCanvas()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.switchStructure(m.manager.ActiveIndex() + 1)
		return m, nil
	case "shift+tab":
		m.switchStructure(m.manager.ActiveIndex() - 1)
		return m, nil
	case "f1":
		m.showHelp = !m.showHelp
		m.updateLayout()
		m.updateHelp()
		return m, nil
	case "ctrl+y":
		text := m.status.Status
		if text == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
		}
	case "enter":
		m.execute(m.input.Value())
		return m, nil
	case "up":
		m.recall(-1)
		return m, nil
	case "down":
		m.recall(1)
		return m, nil
	case "pgup":
		vp := m.scrollTarget()
		vp.LineUp(vp.Height)
		return m, nil
	case "pgdown":
		vp := m.scrollTarget()
		vp.LineDown(vp.Height)
		return m, nil
	case "home":
		m.scrollTarget().GotoTop()
		return m, nil
	case "end":
		m.scrollTarget().GotoBottom()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one command line against the active structure.
func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	before := m.manager.ActiveIndex()

	m.status = m.manager.Exec(line)
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	m.input.Reset()

	if m.manager.ActiveIndex() != before {
		m.updateHelp()
	}
	m.refreshCanvas()
}

func (m *Model) switchStructure(idx int) {
	m.manager.Select(idx)
	m.status = console.Result{Status: "Using " + m.manager.Active().Title()}
	m.updateHelp()
	m.refreshCanvas()
	m.canvas.GotoTop()
}

// recall walks the command history; stepping past the newest entry clears
// the input.
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIdx = min(max(m.historyIdx+step, 0), len(m.history))
	if m.historyIdx == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m *Model) scrollTarget() *viewport.Model {
	if m.showHelp {
		return &m.helpViewport
	}
	return &m.canvas
}

func (m *Model) refreshCanvas() {
	m.canvas.SetContent(renderSnapshot(m.manager.Active().Snapshot(), m.styles, m.config.UI.ShowHeights))
}

// updateHelp loads the active structure's help page into the help viewport
func (m *Model) updateHelp() {
	if !m.showHelp {
		return
	}
	m.helpViewport.SetContent(GetOrFillHelp(m.helpCache, m.manager.Active(), m.glamourRenderer))
	m.helpViewport.GotoTop()
}

// layout returns the canvas and help pane sizes for the current window
func (m Model) layout() (canvasWidth, helpWidth, bodyHeight int) {
	// tabs, input box, status line and footer
	const chrome = 1 + 3 + 1 + 2
	bodyHeight = max(m.height-chrome, 5)

	if m.showHelp {
		helpWidth = max(m.width*4/10, 20)
	}
	canvasWidth = max(m.width-helpWidth, 20)
	return canvasWidth, helpWidth, bodyHeight
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	canvasWidth, helpWidth, bodyHeight := m.layout()

	// borders and the title line
	m.canvas.Width = canvasWidth - 2
	m.canvas.Height = bodyHeight - 3
	m.helpViewport.Width = max(helpWidth-2, 0)
	m.helpViewport.Height = bodyHeight - 3
	m.input.Width = m.width - 6
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	canvasWidth, helpWidth, bodyHeight := m.layout()
	active := m.manager.Active()

	canvasBox := m.styles.BorderFocused.
		Width(canvasWidth - 2).
		Height(bodyHeight - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf(" 🌳 %s ", active.Title())),
			m.canvas.View(),
		))

	body := canvasBox
	if m.showHelp {
		helpBox := m.styles.BorderBlurred.
			Width(helpWidth - 2).
			Height(bodyHeight - 2).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📖 Commands "),
				m.helpViewport.View(),
			))
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvasBox, helpBox)
	}

	inputBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Render(m.input.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		body,
		inputBox,
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.manager.Handlers()))
	for i, h := range m.manager.Handlers() {
		style := m.styles.Tab
		if i == m.manager.ActiveIndex() {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(h.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatus() string {
	if m.status.Status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.status.Err != nil {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		MaxWidth(m.width).
		Render(style.Render(m.status.Status))
}

// renderFooter renders the key help line
func (m Model) renderFooter() string {
	keys := []string{"enter", "tab", "↑/↓", "pgup/pgdn", "f1", "ctrl+y", "esc"}
	descs := []string{"run", "next structure", "history", "scroll", "commands", "copy status", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(manager *console.Manager, hc *cache.Cache, config *Config) error {
	InitializeColors()

	model := InitialModel(manager, hc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
