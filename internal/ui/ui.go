package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysview/internal/config"
	"github.com/Dicklesworthstone/sysview/internal/logger"
	"github.com/Dicklesworthstone/sysview/internal/model"
	"github.com/Dicklesworthstone/sysview/internal/sampler"
	"github.com/Dicklesworthstone/sysview/internal/view"
)

// Model hosts the system view and feeds it snapshots from a stream.
type Model struct {
	store     *model.Store
	tree      *view.Tree
	sys       *view.SystemView
	stream    <-chan model.Snapshot
	ctxCancel context.CancelFunc
	log       logger.Logger
	width     int
	height    int
}

// New constructs the system view against an empty snapshot and registers it
// in a fresh view tree.
func New(stream <-chan model.Snapshot, cancel context.CancelFunc, log logger.Logger) *Model {
	if log == nil {
		log = logger.Noop()
	}
	m := &Model{
		store:     model.NewStore(model.Zero()),
		tree:      view.NewTree(),
		stream:    stream,
		ctxCancel: cancel,
		log:       log,
		width:     120,
		height:    40,
	}
	m.sys = view.Construct(m.tree, m.store)
	return m
}

// Messages
type (
	tickMsg struct{}
)

func tickCmd() tea.Cmd { return tea.Tick(time.Second/5, func(time.Time) tea.Msg { return tickMsg{} }) }

func (m *Model) Init() tea.Cmd { return tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.ctxCancel != nil {
				m.ctxCancel()
			}
			return m, tea.Quit
		}
	case tickMsg:
		select {
		case snap, ok := <-m.stream:
			if ok {
				m.store.Set(snap)
				m.sys.Refresh(m.store)
				m.log.Debug("refreshed at %s", snap.Timestamp.Format(time.RFC3339))
			}
		default:
		}
		return m, tickCmd()
	}
	return m, nil
}

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m *Model) View() string {
	header := titleStyle.Render("System Summary") + "  " +
		subtleStyle.Render(m.store.Timestamp().Format("Mon Jan 2 15:04:05 MST 2006"))

	body := m.sys.List().View()
	footer := subtleStyle.Render("q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// RunTUI starts the sampler and the Bubble Tea program.
func RunTUI(cfg config.Config, log logger.Logger) error {
	s, err := sampler.New(cfg.Interval, cfg.ProcPath, cfg.SysPath, log)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prog := tea.NewProgram(New(s.Stream(ctx), cancel, log), tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

// PrintOnce samples twice, one interval apart so rates are populated, and
// returns the rendered system rows.
func PrintOnce(cfg config.Config, log logger.Logger) (string, error) {
	s, err := sampler.New(cfg.Interval, cfg.ProcPath, cfg.SysPath, log)
	if err != nil {
		return "", err
	}
	s.Sample(time.Now())
	time.Sleep(cfg.Interval)

	store := model.NewStore(s.Sample(time.Now()))
	v := view.Construct(view.NewTree(), store)
	return v.List().View(), nil
}
