package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysview/internal/render"
)

// List is a named vertical list of rows.
type List struct {
	name string
	rows []render.Row
}

func NewList(name string) *List { return &List{name: name} }

func (l *List) Name() string { return l.name }

// SetRows replaces the list's contents.
func (l *List) SetRows(rows []render.Row) {
	l.rows = append(l.rows[:0:0], rows...)
}

func (l *List) Rows() []render.Row { return l.rows }

// Lines returns each row as unstyled text.
func (l *List) Lines() []string {
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Plain()
	}
	return out
}

// View renders the rows stacked top to bottom.
func (l *List) View() string {
	lines := make([]string, len(l.rows))
	for i, r := range l.rows {
		lines[i] = r.Render()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Tree is the host's registry of named views. It is only touched from the
// UI goroutine.
type Tree struct {
	named map[string]*List
}

func NewTree() *Tree { return &Tree{named: make(map[string]*List)} }

// Add registers l under its name, replacing any previous list of that name.
func (t *Tree) Add(l *List) { t.named[l.name] = l }

func (t *Tree) Find(name string) (*List, bool) {
	l, ok := t.named[name]
	return l, ok
}
