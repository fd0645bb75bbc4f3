package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habitflow/internal/dateutil"
	"habitflow/internal/stats"
	"habitflow/internal/storage"
	"habitflow/internal/store"
	"habitflow/internal/ui"
)

type focusArea int

const (
	focusGrid focusArea = iota
	focusNotes
)

type inputMode int

const (
	modeNone inputMode = iota
	modeAddHabit
	modeAddNote
)

type dashboardModel struct {
	ctx context.Context
	st  *store.Store
	kv  *storage.KV

	width  int
	height int

	year  int
	month time.Month

	habits []store.Habit
	notes  []store.Note

	cursorHabit int
	cursorDay   int // 1-based day of month
	cursorNote  int
	focus       focusArea

	mode       inputMode
	nameInput  textinput.Model
	emojiInput textinput.Model
	goalInput  textinput.Model
	noteInput  textinput.Model
	noteDate   string // date key for a dated note, empty for quick
	inputField int

	accent string

	refreshCh chan struct{}
	cancelSub func()

	lastLog string
}

type refreshMsg struct{}

type mutatedMsg struct {
	action string
	err    error
}

type accentSavedMsg struct {
	accent string
	err    error
}

func newDashboardModel(ctx context.Context, st *store.Store, kv *storage.KV) *dashboardModel {
	now := time.Now()

	name := textinput.New()
	name.Placeholder = "habit name"
	name.CharLimit = 60
	emoji := textinput.New()
	emoji.Placeholder = "🎯"
	emoji.CharLimit = 8
	goal := textinput.New()
	goal.Placeholder = "30"
	goal.CharLimit = 3
	note := textinput.New()
	note.Placeholder = "write a note…"
	note.CharLimit = 280

	m := &dashboardModel{
		ctx:        ctx,
		st:         st,
		kv:         kv,
		year:       now.Year(),
		month:      now.Month(),
		cursorDay:  now.Day(),
		nameInput:  name,
		emojiInput: emoji,
		goalInput:  goal,
		noteInput:  note,
		accent:     loadAccent(ctx, kv),
		refreshCh:  make(chan struct{}, 1),
		lastLog:    "Loaded.",
	}
	m.habits = st.Habits()
	m.notes = st.Notes()

	// Re-render is driven by the store's subscription contract: every
	// successful mutation+persist cycle pushes one refresh.
	m.cancelSub = st.Subscribe(func() {
		select {
		case m.refreshCh <- struct{}{}:
		default:
		}
	})
	return m
}

func loadAccent(ctx context.Context, kv *storage.KV) string {
	v, ok, err := kv.Get(ctx, store.AccentKey)
	if err != nil || !ok || v == "" {
		return ui.DefaultAccent
	}
	return v
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.waitRefresh()
}

func (m *dashboardModel) waitRefresh() tea.Cmd {
	return func() tea.Msg {
		<-m.refreshCh
		return refreshMsg{}
	}
}

func (m *dashboardModel) toggleCmd(habitID, dateKey string) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{action: "toggle", err: m.st.ToggleCompletion(m.ctx, habitID, dateKey)}
	}
}

func (m *dashboardModel) addHabitCmd(name, emoji string, goal int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.st.AddHabit(m.ctx, name, emoji, goal)
		return mutatedMsg{action: "add habit", err: err}
	}
}

func (m *dashboardModel) deleteHabitCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{action: "delete habit", err: m.st.DeleteHabit(m.ctx, id)}
	}
}

func (m *dashboardModel) addNoteCmd(text, date string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.st.AddNote(m.ctx, text, date)
		return mutatedMsg{action: "add note", err: err}
	}
}

func (m *dashboardModel) deleteNoteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{action: "delete note", err: m.st.DeleteNote(m.ctx, id)}
	}
}

func (m *dashboardModel) saveAccentCmd(accent string) tea.Cmd {
	return func() tea.Msg {
		return accentSavedMsg{accent: accent, err: m.kv.Set(m.ctx, store.AccentKey, accent)}
	}
}

func (m *dashboardModel) reload() {
	m.habits = m.st.Habits()
	m.notes = m.st.Notes()
	m.clampCursors()
}

func (m *dashboardModel) clampCursors() {
	if m.cursorHabit >= len(m.habits) {
		m.cursorHabit = len(m.habits) - 1
	}
	if m.cursorHabit < 0 {
		m.cursorHabit = 0
	}
	days := dateutil.DaysInMonth(m.year, m.month)
	if m.cursorDay > days {
		m.cursorDay = days
	}
	if m.cursorDay < 1 {
		m.cursorDay = 1
	}
	visible := len(m.visibleNotes())
	if m.cursorNote >= visible {
		m.cursorNote = visible - 1
	}
	if m.cursorNote < 0 {
		m.cursorNote = 0
	}
}

// visibleNotes is the notes panel content: notes pinned to the selected
// day first, then quick notes, both newest first.
func (m *dashboardModel) visibleNotes() []store.Note {
	selected := dateutil.Key(m.year, m.month, m.cursorDay)
	var out []store.Note
	for _, n := range m.notes {
		if n.Date == selected {
			out = append(out, n)
		}
	}
	for _, n := range m.notes {
		if n.Quick() {
			out = append(out, n)
		}
	}
	return out
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.reload()
		return m, m.waitRefresh()

	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = msg.action + " failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = strings.ToUpper(msg.action[:1]) + msg.action[1:] + " ok."
		return m, nil

	case accentSavedMsg:
		if msg.err != nil {
			m.lastLog = "Accent not saved: " + msg.err.Error()
			return m, nil
		}
		m.accent = msg.accent
		m.lastLog = "Accent saved."
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNone {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *dashboardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if m.focus == focusGrid {
			m.focus = focusNotes
		} else {
			m.focus = focusGrid
		}
		return m, nil

	case "shift+left", "p":
		if m.month == time.January {
			m.month = time.December
			m.year--
		} else {
			m.month--
		}
		m.clampCursors()
		return m, nil

	case "shift+right", "n":
		if m.month == time.December {
			m.month = time.January
			m.year++
		} else {
			m.month++
		}
		m.clampCursors()
		return m, nil

	case "[":
		m.year--
		m.clampCursors()
		return m, nil

	case "]":
		m.year++
		m.clampCursors()
		return m, nil

	case "t":
		now := time.Now()
		m.year, m.month, m.cursorDay = now.Year(), now.Month(), now.Day()
		return m, nil

	case "up", "k":
		if m.focus == focusNotes {
			if m.cursorNote > 0 {
				m.cursorNote--
			}
		} else if m.cursorHabit > 0 {
			m.cursorHabit--
		}
		return m, nil

	case "down", "j":
		if m.focus == focusNotes {
			if m.cursorNote < len(m.visibleNotes())-1 {
				m.cursorNote++
			}
		} else if m.cursorHabit < len(m.habits)-1 {
			m.cursorHabit++
		}
		return m, nil

	case "left", "h":
		if m.focus == focusGrid && m.cursorDay > 1 {
			m.cursorDay--
		}
		return m, nil

	case "right", "l":
		if m.focus == focusGrid && m.cursorDay < dateutil.DaysInMonth(m.year, m.month) {
			m.cursorDay++
		}
		return m, nil

	case " ", "enter":
		if m.focus != focusGrid || len(m.habits) == 0 {
			return m, nil
		}
		h := m.habits[m.cursorHabit]
		key := dateutil.Key(m.year, m.month, m.cursorDay)
		return m, m.toggleCmd(h.ID, key)

	case "a":
		m.mode = modeAddHabit
		m.inputField = 0
		m.nameInput.SetValue("")
		m.emojiInput.SetValue("")
		m.goalInput.SetValue("")
		m.nameInput.Focus()
		return m, textinput.Blink

	case "D":
		if len(m.habits) == 0 {
			return m, nil
		}
		return m, m.deleteHabitCmd(m.habits[m.cursorHabit].ID)

	case "N":
		m.mode = modeAddNote
		m.noteDate = ""
		m.noteInput.SetValue("")
		m.noteInput.Focus()
		return m, textinput.Blink

	case "M":
		m.mode = modeAddNote
		m.noteDate = dateutil.Key(m.year, m.month, m.cursorDay)
		m.noteInput.SetValue("")
		m.noteInput.Focus()
		return m, textinput.Blink

	case "x":
		notes := m.visibleNotes()
		if m.focus != focusNotes || len(notes) == 0 {
			return m, nil
		}
		return m, m.deleteNoteCmd(notes[m.cursorNote].ID)

	case "b":
		next := ui.AccentSwatches[0]
		for i, s := range ui.AccentSwatches {
			if s == m.accent {
				next = ui.AccentSwatches[(i+1)%len(ui.AccentSwatches)]
				break
			}
		}
		return m, m.saveAccentCmd(next)
	}
	return m, nil
}

func (m *dashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNone
		m.blurInputs()
		return m, nil

	case "enter":
		if m.mode == modeAddNote {
			text := strings.TrimSpace(m.noteInput.Value())
			m.mode = modeNone
			m.blurInputs()
			if text == "" {
				m.lastLog = "Empty note discarded."
				return m, nil
			}
			return m, m.addNoteCmd(text, m.noteDate)
		}
		// Add habit: enter advances, submits from the last field.
		if m.inputField < 2 {
			m.inputField++
			m.focusHabitField()
			return m, textinput.Blink
		}
		name := strings.TrimSpace(m.nameInput.Value())
		emoji := strings.TrimSpace(m.emojiInput.Value())
		if emoji == "" {
			emoji = "🎯"
		}
		goal, err := strconv.Atoi(strings.TrimSpace(m.goalInput.Value()))
		if err != nil || goal <= 0 {
			goal = store.DefaultGoal
		}
		m.mode = modeNone
		m.blurInputs()
		if name == "" {
			m.lastLog = "Habit needs a name."
			return m, nil
		}
		return m, m.addHabitCmd(name, emoji, goal)

	case "tab", "shift+tab":
		if m.mode == modeAddHabit {
			if msg.String() == "tab" {
				m.inputField = (m.inputField + 1) % 3
			} else {
				m.inputField = (m.inputField + 2) % 3
			}
			m.focusHabitField()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	if m.mode == modeAddNote {
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}
	switch m.inputField {
	case 0:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case 1:
		m.emojiInput, cmd = m.emojiInput.Update(msg)
	default:
		m.goalInput, cmd = m.goalInput.Update(msg)
	}
	return m, cmd
}

func (m *dashboardModel) blurInputs() {
	m.nameInput.Blur()
	m.emojiInput.Blur()
	m.goalInput.Blur()
	m.noteInput.Blur()
}

func (m *dashboardModel) focusHabitField() {
	m.blurInputs()
	switch m.inputField {
	case 0:
		m.nameInput.Focus()
	case 1:
		m.emojiInput.Focus()
	default:
		m.goalInput.Focus()
	}
}

func (m *dashboardModel) accentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.accent))
}

func (m *dashboardModel) View() string {
	var b strings.Builder

	now := time.Now()
	header := ui.Heading(ui.IconTarget, "habitflow") + "  " +
		ui.Muted.Render(now.Format("Monday, January 2, 2006")) + "  " +
		m.accentStyle().Render("●")
	b.WriteString(header + "\n")
	b.WriteString(m.viewMonthTabs() + "\n\n")

	left := m.viewGrid()
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.viewOverview(),
		m.viewTrends(),
		m.viewNotes(),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	if m.mode != modeNone {
		b.WriteString(m.viewInput() + "\n")
	}

	help := "space toggle · ←→↑↓ move · shift+←→ month · [ ] year · t today · a add · D del habit · N/M note · x del note · b accent · tab notes · q quit"
	b.WriteString(ui.Dim.Render(help) + "\n")
	b.WriteString(ui.Muted.Render(m.lastLog) + "\n")
	return b.String()
}

func (m *dashboardModel) viewMonthTabs() string {
	var tabs []string
	for mo := time.January; mo <= time.December; mo++ {
		label := mo.String()[:3]
		if mo == m.month {
			tabs = append(tabs, ui.SelectedRow.Render(" "+label+" "))
		} else {
			tabs = append(tabs, ui.Muted.Render(" "+label+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + ui.Key.Render(fmt.Sprintf("  %d", m.year))
}

func (m *dashboardModel) viewGrid() string {
	days := dateutil.DaysInMonth(m.year, m.month)
	todayKey := dateutil.TodayKey()

	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconGrid+" DAILY HABITS") + "\n")

	// Weekday letters, with week boundaries marked after Saturdays.
	var wd strings.Builder
	wd.WriteString(fmt.Sprintf("%-22s", ""))
	for d := 1; d <= days; d++ {
		letter := dateutil.Weekday(m.year, m.month, d).String()[:1]
		if d == m.cursorDay && m.focus == focusGrid {
			wd.WriteString(ui.SelectedRow.Render(letter + " "))
		} else {
			wd.WriteString(ui.Muted.Render(letter + " "))
		}
	}
	b.WriteString(wd.String() + "\n")

	var dn strings.Builder
	dn.WriteString(fmt.Sprintf("%-22s", ""))
	for d := 1; d <= days; d++ {
		dn.WriteString(ui.Dim.Render(fmt.Sprintf("%-2d", d%10)))
	}
	b.WriteString(dn.String() + "\n")

	accent := m.accentStyle()
	for i, h := range m.habits {
		label := trim(fmt.Sprintf("%s %s", h.Emoji, h.Name), 18)
		st := stats.ForHabit(h, m.year, m.month)
		row := fmt.Sprintf("%-19s %2d ", label, h.Goal)
		if i == m.cursorHabit && m.focus == focusGrid {
			row = ui.SelectedRow.Render(row)
		}
		var cells strings.Builder
		for d := 1; d <= days; d++ {
			key := dateutil.Key(m.year, m.month, d)
			mark := "·"
			if h.Done(key) {
				mark = "✓"
			}
			cell := mark + " "
			switch {
			case i == m.cursorHabit && d == m.cursorDay && m.focus == focusGrid:
				cell = ui.SelectedRow.Render(cell)
			case h.Done(key):
				cell = accent.Render(cell)
			case key == todayKey:
				cell = ui.Key.Render(cell)
			default:
				cell = ui.Dim.Render(cell)
			}
			cells.WriteString(cell)
		}
		b.WriteString(row + cells.String() +
			ui.Muted.Render(fmt.Sprintf(" %d done · %d left · %d%%", st.Completed, st.Left, st.Percentage)) + "\n")
	}
	if len(m.habits) == 0 {
		b.WriteString(ui.Muted.Render("No habits yet — press a to add one.") + "\n")
	}
	return ui.Panel.Render(b.String())
}

func (m *dashboardModel) viewOverview() string {
	today := stats.Today(m.habits, time.Now())
	monthly := stats.Monthly(m.habits, m.year, m.month)
	accent := m.accentStyle()

	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconTarget+" OVERVIEW") + "\n")
	b.WriteString(fmt.Sprintf("Today   %s %s\n",
		ui.Bar(today.Percentage, 12),
		accent.Render(fmt.Sprintf("%d%% (%d/%d)", today.Percentage, today.Completed, today.Total))))
	b.WriteString(fmt.Sprintf("Month   %s %s\n",
		ui.Bar(monthly.Percentage, 12),
		ui.Key.Render(fmt.Sprintf("%d%% (%d/%d)", monthly.Percentage, monthly.Completed, monthly.Total))))

	b.WriteString(ui.PanelTitle.Render(ui.IconTrophy+" TOP HABITS") + "\n")
	for i, r := range stats.TopHabits(m.habits, m.year, m.month, 5) {
		b.WriteString(fmt.Sprintf("%d %s %-14s %s %3d%%\n",
			i+1, r.Habit.Emoji, trim(r.Habit.Name, 14), ui.Bar(r.Stats.Percentage, 8), r.Stats.Percentage))
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *dashboardModel) viewTrends() string {
	daily := stats.DailyTrend(m.habits, m.year, m.month)
	vals := make([]int, len(daily))
	for i, p := range daily {
		vals[i] = p.Percentage
	}

	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconChart+" TRENDS") + "\n")
	b.WriteString(fmt.Sprintf("Daily (%d days)\n", len(daily)))
	b.WriteString(m.accentStyle().Render(ui.Sparkline(vals)) + "\n")

	b.WriteString("Year to date\n")
	for _, p := range stats.MonthlyTrend(m.habits, m.year, m.month) {
		b.WriteString(fmt.Sprintf("%s %s %3d%%\n", p.Month.String()[:3], ui.Bar(p.Percentage, 10), p.Percentage))
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *dashboardModel) viewNotes() string {
	selected := dateutil.Key(m.year, m.month, m.cursorDay)
	notes := m.visibleNotes()

	var b strings.Builder
	b.WriteString(ui.PanelTitle.Render(ui.IconNote+" NOTES") + " " + ui.Muted.Render(selected) + "\n")
	if len(notes) == 0 {
		b.WriteString(ui.Muted.Render("No notes. N quick note, M note on selected day."))
	}
	for i, n := range notes {
		icon := ui.IconNote
		if !n.Quick() {
			icon = ui.IconPin
		}
		line := fmt.Sprintf("%s %s %s", icon, trim(n.Text, 32), ui.Dim.Render(n.CreatedAt.Format("Jan 2 15:04")))
		if m.focus == focusNotes && i == m.cursorNote {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return ui.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *dashboardModel) viewInput() string {
	var b strings.Builder
	if m.mode == modeAddNote {
		title := "Quick note"
		if m.noteDate != "" {
			title = "Note for " + m.noteDate
		}
		b.WriteString(ui.PanelTitle.Render(title) + "\n")
		b.WriteString(m.noteInput.View())
	} else {
		b.WriteString(ui.PanelTitle.Render("New habit") + "\n")
		b.WriteString(ui.LabelValue("Name", m.nameInput.View()) + "\n")
		b.WriteString(ui.LabelValue("Emoji", m.emojiInput.View()) + "\n")
		b.WriteString(ui.LabelValue("Goal", m.goalInput.View()))
	}
	return ui.Panel.Render(b.String())
}

func trim(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
