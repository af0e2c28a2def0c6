package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"vesuvius/internal/driver"
)

const (
	labelQueued = "queued"
	labelDone   = "done"
	labelError  = "error"
)

type progressModel struct {
	title     string
	events    <-chan driver.Event
	lastStage driver.Stage
	spinner   spinner.Model
	prog      progress.Model
	items     []fileItem
	index     map[string]int
	width     int
	done      bool
}

type fileItem struct {
	path   string
	status string
	stage  driver.Stage
	// fraction of the file's pipeline finished, 0..1
	share float64
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file front-end
// progress. lastStage is the stage after which a file counts as done
// (StageParse, or StageValidate when validation runs). The model quits once
// events is closed.
func NewProgressModel(title string, files []string, lastStage driver.Stage, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: labelQueued})
		index[fileKey(file)] = i
	}
	return &progressModel{
		title:     title,
		events:    events,
		lastStage: lastStage,
		spinner:   sp,
		prog:      prog,
		items:     items,
		index:     index,
		width:     80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.finished(), len(m.items))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := max(m.width-statusWidth-4, 20)
	for _, item := range m.items {
		status := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		fmt.Fprintf(&b, "  %s %s\n", status, truncate(item.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	idx, ok := m.index[fileKey(ev.File)]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	if item.status == labelError {
		return nil
	}
	switch ev.Status {
	case driver.StatusQueued:
		item.status = labelQueued
	case driver.StatusWorking:
		item.status = stageLabel(ev.Stage)
		item.stage = ev.Stage
	case driver.StatusError:
		item.status = labelError
		item.share = 1
	case driver.StatusDone:
		item.stage = ev.Stage
		item.share = max(item.share, stageShare(ev.Stage, m.lastStage))
		if ev.Stage == m.lastStage {
			item.status = labelDone
		}
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		total += item.share
	}
	return total / float64(len(m.items))
}

func (m *progressModel) finished() int {
	n := 0
	for _, item := range m.items {
		if item.status == labelDone || item.status == labelError {
			n++
		}
	}
	return n
}

// fileKey совпадает с нормализацией путей в source.FileSet.
func fileKey(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

var stageOrder = []driver.Stage{driver.StageRead, driver.StageLex, driver.StageParse, driver.StageValidate}

// stageShare — доля пайплайна файла, завершённая вместе со stage.
func stageShare(stage, last driver.Stage) float64 {
	pos, end := -1, -1
	for i, s := range stageOrder {
		if s == stage {
			pos = i
		}
		if s == last {
			end = i
		}
	}
	if pos < 0 || end < 0 {
		return 0
	}
	return min(float64(pos+1)/float64(end+1), 1)
}

func stageLabel(stage driver.Stage) string {
	switch stage {
	case driver.StageRead:
		return "reading"
	case driver.StageLex:
		return "lexing"
	case driver.StageParse:
		return "parsing"
	case driver.StageValidate:
		return "validating"
	default:
		return string(stage)
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case labelDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case labelError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "reading", "lexing", "parsing", "validating":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
