// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/query"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL = 5 * time.Second

	// tableChrome is the number of terminal rows used around the table.
	tableChrome = 16
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenStatistics
)

type modelConfig struct {
	auth     service.ClientAuthService
	stats    service.ClientStatisticsService
	tabs     []resourceTab
	active   int
	signedIn bool
	copy     func(string) error
	footer   string
}

type appModel struct {
	ctx    context.Context
	auth   service.ClientAuthService
	stats  service.ClientStatisticsService
	copy   func(string) error
	footer string

	tabs        []resourceTab
	lists       []listModel
	active      int
	changes     chan string
	tableHeight int

	currentScreen screen
	login         loginModel
	statistics    statisticsModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	status    string
	statusErr bool
	statusID  int
}

func newAppModel(ctx context.Context, cfg modelConfig) appModel {
	m := appModel{
		ctx:           ctx,
		auth:          cfg.auth,
		stats:         cfg.stats,
		copy:          cfg.copy,
		footer:        cfg.footer,
		tabs:          cfg.tabs,
		lists:         make([]listModel, len(cfg.tabs)),
		active:        cfg.active,
		changes:       make(chan string, 4*len(cfg.tabs)+1),
		tableHeight:   defaultTableHeight,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		statistics:    newStatisticsModel(),
	}

	for i, tab := range cfg.tabs {
		m.lists[i] = newListModel(tab.columns(), tab.sync().State())

		name, changes := tab.name(), m.changes
		tab.sync().OnChange(func(query.State) {
			select {
			case changes <- name:
			default:
			}
		})
	}

	if cfg.signedIn && len(m.tabs) > 0 {
		m.currentScreen = screenList
		m.lists[m.active].loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForChange()}
	if m.currentScreen == screenLogin {
		cmds = append(cmds, textinput.Blink)
	} else {
		cmds = append(cmds, m.cmdLoad(m.active, false), m.lists[m.active].spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.tableHeight = max(msg.Height-tableChrome, 3)
		for i := range m.lists {
			m.lists[i].table.SetHeight(m.tableHeight)
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case stateChangedMsg:
		cmds := []tea.Cmd{m.waitForChange()}
		if i, ok := m.tabIndex(msg.resource); ok && m.currentScreen != screenLogin {
			var cmd tea.Cmd
			m, cmd = m.startLoad(i, false)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case pageLoadedMsg:
		return m.handlePage(msg)
	case itemDeletedMsg:
		return m.handleDeleted(msg)
	case loggedInMsg:
		return m.handleLoggedIn(msg)
	case loggedOutMsg:
		m = m.toLogin()
		return m.setStatus("Signed out", false)
	case sessionEndedMsg:
		if msg.reason == nil || m.currentScreen == screenLogin {
			return m, nil
		}
		m = m.toLogin()
		return m.setStatus(msgSessionExpired, true)
	case statisticsLoadedMsg:
		return m.handleStatistics(msg)
	case copiedMsg:
		if msg.err != nil {
			return m.setError(msg.err)
		}
		return m.setStatus("Copied "+msg.text, false)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenStatistics:
		return m.updateStatistics(msg)
	default:
		return m.updateList(msg)
	}
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		id := m.pendingDelete
		m.pendingDelete = ""
		if id == "" {
			return m, nil
		}
		return m, m.cmdDelete(m.active, id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.lists {
		if !m.lists[i].loading {
			continue
		}
		var cmd tea.Cmd
		m.lists[i].spinner, cmd = m.lists[i].spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.statistics.loading {
		var cmd tea.Cmd
		m.statistics.spinner, cmd = m.statistics.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.nextField):
			m.login = m.login.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.prevField):
			m.login = m.login.moveFocus(-1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email, password, err := m.login.credentials()
			if err != nil {
				return m.setError(err)
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.tabs) == 0 {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	l := &m.lists[m.active]
	sync := m.tabs[m.active].sync()

	if l.searching {
		switch {
		case key.Matches(keyMsg, keys.enter):
			l.searching = false
			l.search.Blur()
			sync.SearchNow(l.search.Value())
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			l.searching = false
			l.search.Blur()
			return m, nil
		}

		before := l.search.Value()
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(keyMsg)
		if value := l.search.Value(); value != before {
			sync.Search(value)
		}
		return m, cmd
	}

	state := sync.State()
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.nextTab):
		m.active = (m.active + 1) % len(m.tabs)
		return m.startLoad(m.active, false)
	case key.Matches(keyMsg, keys.prevTab):
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		return m.startLoad(m.active, false)
	case key.Matches(keyMsg, keys.prevPage):
		if state.Page > 1 {
			sync.SetPage(state.Page - 1)
		}
	case key.Matches(keyMsg, keys.nextPage):
		if state.Page < l.pagination.Pages {
			sync.SetPage(state.Page + 1)
		}
	case key.Matches(keyMsg, keys.moreRows):
		sync.SetLimit(state.Limit + limitStep)
	case key.Matches(keyMsg, keys.fewerRows):
		sync.SetLimit(state.Limit - limitStep)
	case key.Matches(keyMsg, keys.search):
		l.searching = true
		l.search.SetValue(state.Search)
		l.search.CursorEnd()
		return m, l.search.Focus()
	case key.Matches(keyMsg, keys.sort):
		if field, ok := l.sortField(int(keyMsg.String()[0] - '0')); ok {
			sync.SetSort(field)
		}
	case key.Matches(keyMsg, keys.reset):
		l.search.SetValue("")
		sync.Reset()
	case key.Matches(keyMsg, keys.refetch):
		return m.startLoad(m.active, true)
	case key.Matches(keyMsg, keys.delete):
		id, label, ok := l.selected()
		if !ok {
			return m.setError(errNothingSelected)
		}
		m.showConfirm = true
		m.confirm.message = label
		m.pendingDelete = id
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy(m.tabs[m.active].location())
	case key.Matches(keyMsg, keys.statistics):
		m.currentScreen = screenStatistics
		if !m.statistics.loaded {
			return m.startStatistics()
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	default:
		var cmd tea.Cmd
		l.table, cmd = l.table.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateStatistics(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.statistics.editing {
		switch {
		case key.Matches(keyMsg, keys.enter):
			r, err := m.statistics.parseRange()
			if err != nil {
				return m.setError(err)
			}
			m.statistics = m.statistics.stopEditing()
			m.statistics.rng = r
			return m.startStatistics()
		case key.Matches(keyMsg, keys.esc):
			m.statistics = m.statistics.stopEditing()
			return m, nil
		case key.Matches(keyMsg, keys.nextField):
			m.statistics = m.statistics.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.prevField):
			m.statistics = m.statistics.moveFocus(-1)
			return m, nil
		}

		var cmd tea.Cmd
		f := m.statistics.focus
		m.statistics.inputs[f], cmd = m.statistics.inputs[f].Update(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.statistics):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.refetch):
		m.stats.Invalidate()
		return m.startStatistics()
	case key.Matches(keyMsg, keys.dateRange):
		m.statistics = m.statistics.startEditing()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m appModel) handlePage(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	i, ok := m.tabIndex(msg.resource)
	if !ok {
		return m, nil
	}
	sync := m.tabs[i].sync()
	if msg.state.Key() != sync.State().Key() {
		// A newer state is being loaded.
		return m, nil
	}

	m.lists[i] = m.lists[i].apply(msg)
	if msg.err != nil {
		return m.setError(msg.err)
	}

	// The page disappeared, for example after deleting its last row.
	if len(msg.rows) == 0 && msg.pagination.Pages > 0 && msg.state.Page > msg.pagination.Pages {
		sync.SetPage(msg.pagination.Pages)
	}
	return m, nil
}

func (m appModel) handleDeleted(msg itemDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.setError(msg.err)
	}
	m, status := m.setStatus("Deleted", false)
	i, ok := m.tabIndex(msg.resource)
	if !ok {
		return m, status
	}
	m, load := m.startLoad(i, false)
	return m, tea.Batch(status, load)
}

func (m appModel) handleLoggedIn(msg loggedInMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		return m.setError(msg.err)
	}

	m.login = m.login.reset()
	m.currentScreen = screenList

	name := "user"
	if msg.user != nil {
		name = orDash(clean(msg.user.Name))
	}
	m, status := m.setStatus("Signed in as "+name, false)
	if len(m.tabs) == 0 {
		return m, status
	}
	m, load := m.startLoad(m.active, false)
	return m, tea.Batch(status, load)
}

func (m appModel) handleStatistics(msg statisticsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.rng.Key() != m.statistics.rng.Key() {
		return m, nil
	}
	m.statistics.loading = false
	m.statistics.loaded = true
	m.statistics.stats = msg.stats
	if msg.err != nil {
		return m.setError(msg.err)
	}
	return m, nil
}

// toLogin shows the login screen and drops everything shown for the previous
// session.
func (m appModel) toLogin() appModel {
	m.currentScreen = screenLogin
	m.showConfirm = false
	m.pendingDelete = ""
	m.login = m.login.reset()
	for i, tab := range m.tabs {
		m.lists[i] = newListModel(tab.columns(), tab.sync().State())
		m.lists[i].table.SetHeight(m.tableHeight)
	}
	m.statistics = newStatisticsModel()
	return m
}

func (m appModel) startLoad(i int, refetch bool) (appModel, tea.Cmd) {
	m.lists[i].loading = true
	return m, tea.Batch(m.cmdLoad(i, refetch), m.lists[i].spinner.Tick)
}

func (m appModel) startStatistics() (appModel, tea.Cmd) {
	m.statistics.loading = true
	return m, tea.Batch(m.cmdStatistics(m.statistics.rng), m.statistics.spinner.Tick)
}

func (m appModel) setStatus(text string, isErr bool) (appModel, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusErr = isErr

	id := m.statusID
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m appModel) setError(err error) (appModel, tea.Cmd) {
	return m.setStatus(humanizeError(err), true)
}

func (m appModel) tabIndex(resource string) (int, bool) {
	for i, tab := range m.tabs {
		if tab.name() == resource {
			return i, true
		}
	}
	return 0, false
}

func (m appModel) View() string {
	switch m.currentScreen {
	case screenLogin:
		return renderPage(m.title("SIGN IN"), m.login.View()+m.statusLine(),
			"tab: next field │ enter: sign in")
	case screenStatistics:
		hotKeys := "f: date range │ ctrl+r: refresh │ esc: back │ L: logout │ q: quit"
		if m.statistics.editing {
			hotKeys = "tab: next field │ enter: apply │ esc: cancel"
		}
		return renderPage(m.title("STATISTICS"), m.statistics.View()+m.statusLine(), hotKeys)
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")
	if len(m.lists) > 0 {
		b.WriteString(m.lists[m.active].View())
	}
	b.WriteString(m.statusLine())
	if m.showConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	hotKeys := "←/→: page │ +/-: limit │ /: search │ 1-9: sort │ r: reset │ ctrl+r: refetch\n" +
		"d: delete │ y: copy link │ tab: next list │ s: statistics │ L: logout │ q: quit"
	if len(m.lists) > 0 && m.lists[m.active].searching {
		hotKeys = "enter: apply │ esc: close"
	}
	return renderPage(m.title("INVENTORY"), b.String(), hotKeys)
}

func (m appModel) title(screen string) string {
	if m.footer == "" {
		return screen
	}
	return screen + "  " + helpStyle.Render(m.footer)
}

func (m appModel) tabBar() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.active {
			parts = append(parts, activeTabStyle.Render(tab.title()))
			continue
		}
		parts = append(parts, inactiveTabStyle.Render(tab.title()))
	}
	return strings.Join(parts, "│")
}

func (m appModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return "\n\n" + errorStyle.Render(m.status)
	}
	return "\n\n" + infoStyle.Render(m.status)
}

func (m appModel) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		return stateChangedMsg{resource: <-changes}
	}
}

func (m appModel) cmdLoad(i int, refetch bool) tea.Cmd {
	ctx, tab := m.ctx, m.tabs[i]
	return func() tea.Msg {
		return tab.fetch(ctx, refetch)
	}
}

func (m appModel) cmdDelete(i int, id string) tea.Cmd {
	ctx, tab := m.ctx, m.tabs[i]
	return func() tea.Msg {
		return itemDeletedMsg{resource: tab.name(), err: tab.remove(ctx, id)}
	}
}

func (m appModel) cmdStatistics(r models.DateRange) tea.Cmd {
	ctx, svc := m.ctx, m.stats
	return func() tea.Msg {
		stats, err := loadStatistics(ctx, svc, r)
		return statisticsLoadedMsg{rng: r, stats: stats, err: err}
	}
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.Login(ctx, email, password)
		return loggedInMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}
