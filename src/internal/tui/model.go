// FILE: logviewer/src/internal/tui/model.go
package tui

import (
	"context"
	"errors"
	"time"

	"logviewer/src/internal/config"
	"logviewer/src/internal/core"
	"logviewer/src/internal/service"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lixenwraith/log"
)

// PageSource reads one page of a named log file
type PageSource interface {
	Page(ctx context.Context, name string, page, pageLength int) (*service.PageView, error)
}

// Options configures the pager.
type Options struct {
	Context    context.Context
	Source     PageSource
	File       string
	Page       int
	PageLength int
	Refresh    config.RefreshConfig
	Full       bool
	Logger     *log.Logger
}

// Model is the pager state for Bubble Tea.
type Model struct {
	ctx        context.Context
	source     PageSource
	logger     *log.Logger
	file       string
	page       int
	pageLength int

	// Refresh behaviour
	interval       time.Duration
	autoRefresh    bool
	autoScroll     bool
	onlyWhenActive bool
	focused        bool

	// Fetch sequence; responses for older requests are dropped
	seq int

	view *service.PageView
	err  error
	full bool

	keys     keyMap
	help     help.Model
	styles   Styles
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates the pager model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}

	return Model{
		ctx:            ctx,
		source:         opts.Source,
		logger:         opts.Logger,
		file:           opts.File,
		page:           page,
		pageLength:     opts.PageLength,
		interval:       time.Duration(opts.Refresh.IntervalMS) * time.Millisecond,
		autoRefresh:    opts.Refresh.AutoRefreshDefault,
		autoScroll:     opts.Refresh.AutoScrollToBottom,
		onlyWhenActive: opts.Refresh.OnlyWhenActive,
		focused:        true,
		seq:            1,
		full:           opts.Full,
		keys:           defaultKeyMap(),
		help:           help.New(),
		styles:         defaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchCmd(m.seq, false)}
	if m.interval > 0 {
		cmds = append(cmds, tickCmd(m.interval))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-2, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-2, 1)
		}
		m.help.Width = msg.Width
		m.updateViewport(false)
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		return m, nil

	case tickMsg:
		return m.handleTick()

	case pageMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.handlePage(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := renderHeader(m.file, m.view, m.styles, m.width)
	footer := m.renderFooter()

	vp := m.viewport
	vp.Height = max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	return lipgloss.JoinVertical(lipgloss.Left, header, vp.View(), footer)
}

func (m Model) renderFooter() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}

	status := "auto refresh off"
	if m.autoRefresh {
		status = "auto refresh on"
		if m.onlyWhenActive && !m.focused {
			status += " (paused)"
		}
	}
	return m.styles.Status.Render(status) + "  " + m.help.View(m.keys)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.view != nil && m.page < m.view.TotalPages {
			return m.gotoPage(m.page + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.page > 1 {
			return m.gotoPage(m.page - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		return m.gotoPage(1)

	case key.Matches(msg, m.keys.LastPage):
		if m.view != nil {
			return m.gotoPage(m.view.TotalPages)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.AutoRefresh):
		m.autoRefresh = !m.autoRefresh
		return m, nil

	case key.Matches(msg, m.keys.ToggleFull):
		m.full = !m.full
		m.updateViewport(false)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) gotoPage(page int) (tea.Model, tea.Cmd) {
	m.page = max(page, 1)
	m.seq++
	return m, m.fetchCmd(m.seq, false)
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.seq++
	return m, m.fetchCmd(m.seq, true)
}

// handleTick re-arms the timer and refreshes unless paused
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	tick := tickCmd(m.interval)
	if !m.autoRefresh || (m.onlyWhenActive && !m.focused) {
		return m, tick
	}

	next, fetch := m.refresh()
	return next, tea.Batch(fetch, tick)
}

func (m *Model) handlePage(msg pageMsg) {
	if msg.err != nil {
		m.err = msg.err
		if errors.Is(msg.err, core.ErrNotFound) {
			m.view = nil
		}
		if m.logger != nil {
			m.logger.Debug("msg", "Page fetch failed",
				"component", "pager",
				"file", m.file,
				"page", m.page,
				"error", msg.err)
		}
		m.updateViewport(false)
		return
	}

	m.view = msg.view
	m.err = msg.view.Err
	m.updateViewport(msg.refresh)
}

// updateViewport re-renders the current page. A refresh keeps the
// reader at the bottom when auto scroll is set; navigation starts at the top.
func (m *Model) updateViewport(refresh bool) {
	if !m.ready {
		return
	}

	var entries []core.FormattedEntry
	if m.view != nil {
		entries = m.view.Entries
	}
	m.viewport.SetContent(renderEntries(entries, m.styles, m.full))

	if refresh {
		if m.autoScroll {
			m.viewport.GotoBottom()
		}
		return
	}
	m.viewport.GotoTop()
}

// Messages

type tickMsg time.Time

type pageMsg struct {
	seq     int
	view    *service.PageView
	err     error
	refresh bool
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchCmd(seq int, refresh bool) tea.Cmd {
	ctx, source, file, page, pageLength := m.ctx, m.source, m.file, m.page, m.pageLength
	return func() tea.Msg {
		view, err := source.Page(ctx, file, page, pageLength)
		return pageMsg{seq: seq, view: view, err: err, refresh: refresh}
	}
}

// Run starts the pager and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
