package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/monopoly-council/internal/models"
	"github.com/tatianab/monopoly-council/internal/orchestrator"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateWorking
	stateGameOver
	stateError
)

type model struct {
	state       sessionState
	orch        *orchestrator.Orchestrator
	textInput   textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model
	err         error
	gameLog     string
	width       int
	height      int
	cycleCount  int
	lastVerdict *models.Verdict
}

var (
	proposalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	approveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F"))

	abstainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(orch *orchestrator.Orchestrator) model {
	ti := textinput.New()
	ti.Placeholder = "Press Enter to run a council cycle..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		state:     stateIdle,
		orch:      orch,
		textInput: ti,
		spinner:   sp,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type cycleDoneMsg struct {
	report *models.CycleReport
	err    error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != stateIdle {
				return m, nil
			}
			input := m.textInput.Value()
			m.textInput.Reset()

			if input == "/quit" {
				return m, tea.Quit
			}

			m.state = stateWorking
			return m, tea.Batch(m.spinner.Tick, m.runCycle())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)

	case cycleDoneMsg:
		if msg.err != nil && msg.report == nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.appendReport(msg.report, msg.err)
		if msg.report.GameOver {
			m.state = stateGameOver
		} else {
			m.state = stateIdle
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == stateWorking {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.state == stateIdle {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) appendReport(report *models.CycleReport, err error) {
	logWidth := int(float64(m.width) * 0.75)
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(logWidth, m.height-6)
	}

	header := gameStyle.Bold(true).Render(fmt.Sprintf("Cycle %d (round %d)", m.cycleCount+1, report.Round))
	m.cycleCount++
	m.gameLog += "\n" + header + "\n"

	if report.GameOver {
		m.gameLog += gameStyle.Render("A player has lost. Game over.") + "\n"
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		return
	}

	m.gameLog += proposalStyle.Width(logWidth).Render("Proposal: "+report.Proposal.Decision) + "\n"
	m.gameLog += gameStyle.Width(logWidth).Render(report.Proposal.Reasoning) + "\n\n"

	for _, outcome := range report.Outcomes {
		label := fmt.Sprintf("%s (%s)", outcome.Advisor.Name, outcome.Advisor.Strategy)
		switch {
		case outcome.Abstained:
			m.gameLog += abstainStyle.Render(fmt.Sprintf("%s abstained: %s", label, outcome.Reason)) + "\n"
		case outcome.Approved:
			m.gameLog += approveStyle.Render(label+" votes to approve") + "\n"
		default:
			m.gameLog += rejectStyle.Render(label+" votes to reject") + "\n"
		}
	}

	verdict := report.Verdict
	m.lastVerdict = &verdict
	banner := rejectStyle.Render(fmt.Sprintf("Proposal rejected (%d-%d, %d abstained)",
		verdict.Approvals, verdict.Rejections, verdict.Abstentions))
	if verdict.Accepted {
		banner = approveStyle.Render(fmt.Sprintf("Proposal accepted (%d-%d, %d abstained)",
			verdict.Approvals, verdict.Rejections, verdict.Abstentions))
	}
	if errors.Is(err, orchestrator.ErrAllAbstained) {
		banner = abstainStyle.Render("No usable votes: every advisor abstained. Proposal discarded.")
	}
	m.gameLog += "\n" + banner + "\n"
	m.gameLog += helpStyle.Render(fmt.Sprintf("Tokens used so far: %d", report.Usage.TotalTokens)) + "\n"

	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()

	name := fmt.Sprintf("cycle-%d-%d", m.cycleCount, time.Now().Unix())
	report.Save(name, nil)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateIdle, stateGameOver:
		logView := m.viewport.View()
		stateView := m.renderState()

		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			logView,
			stateView,
		)

		bottom := "\n" + m.textInput.View()
		help := helpStyle.Render("Commands: Enter to run a cycle, /quit to exit.")
		if m.state == stateGameOver {
			bottom = ""
			help = helpStyle.Render("Game over. Press Esc to quit.")
		}

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			bottom,
			"\n"+help,
		)

	case stateWorking:
		s = fmt.Sprintf("\n  %s Playing rounds and consulting the council...\n", m.spinner.View())

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	game := m.orch.Game()
	if game == nil {
		return ""
	}

	content := titleStyle.Render("GAME") + "\n"
	content += fmt.Sprintf("Round: %d\nPhase: %s\nBank: %d\n\n", game.Round, m.orch.Phase(), game.Bank.Cash)

	content += titleStyle.Render("PLAYERS") + "\n"
	for _, p := range game.Players {
		status := ""
		if p.Lost {
			status = " (lost)"
		}
		content += fmt.Sprintf("%s%s\n  cash %d, cell %d\n  holdings %d\n",
			p.Name, status, p.Cash, p.Position, len(p.Roads)+len(p.Properties))
	}

	if m.lastVerdict != nil {
		content += "\n" + titleStyle.Render("LAST VERDICT") + "\n"
		if m.lastVerdict.Accepted {
			content += "accepted\n"
		} else {
			content += "rejected\n"
		}
		content += fmt.Sprintf("%d approve / %d reject / %d abstain\n",
			m.lastVerdict.Approvals, m.lastVerdict.Rejections, m.lastVerdict.Abstentions)
	}

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) runCycle() tea.Cmd {
	return func() tea.Msg {
		report, err := m.orch.RunCycle(context.Background())
		return cycleDoneMsg{report, err}
	}
}

func Run(orch *orchestrator.Orchestrator) error {
	p := tea.NewProgram(NewModel(orch), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
