// Package sidebar implements the application shell's navigation layout:
// a content stack plus duplicated desktop and mobile menus that stay
// visually synchronized as the internal path changes.
package sidebar

import (
	"strings"
	"sync"

	"stylus/internal/ui/theme"
)

// Panel is a reference to a content panel managed by the layout's stack.
// The layout only switches which panel is visible; it never inspects one.
type Panel interface {
	Name() string
}

// MenuItem is one visible menu entry. Each registered path owns two items,
// a desktop one and a mobile twin, highlighted and unhighlighted together.
type MenuItem struct {
	name        string
	icon        string
	highlighted bool
}

// Name returns the menu item's display name.
func (m *MenuItem) Name() string { return m.name }

// Icon returns the icon tag bound at registration.
func (m *MenuItem) Icon() string { return m.icon }

// Highlighted reports whether the item is currently selected.
func (m *MenuItem) Highlighted() bool { return m.highlighted }

// StyleClasses returns the item's current class list, role classes first.
func (m *MenuItem) StyleClasses() string {
	classes := theme.Classes(theme.RoleMenuItem)
	if m.highlighted {
		classes += " " + theme.Classes(theme.RoleMenuItemSelected)
	}

	return classes
}

type menuEntry struct {
	path    string // "/" + registered name
	panel   Panel
	desktop *MenuItem
	mobile  *MenuItem
}

// SidebarLayout tracks which panel is visible and which menu pair is
// highlighted. Registration is append-only at setup time; path changes may
// arrive from concurrent request handlers, so all state is mutex-guarded.
type SidebarLayout struct {
	mu       sync.Mutex
	entries  []*menuEntry
	current  *menuEntry
	visible  Panel
	selected []*MenuItem
}

// NewSidebarLayout returns an empty layout with nothing selected.
func NewSidebarLayout() *SidebarLayout {
	return &SidebarLayout{}
}

// AddMenuItem registers a named entry bound to a panel and an icon tag.
// The entry answers to the internal path "/" + name. Entries cannot be
// removed or reordered.
func (l *SidebarLayout) AddMenuItem(name string, panel Panel, icon string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, &menuEntry{
		path:    "/" + name,
		panel:   panel,
		desktop: &MenuItem{name: name, icon: icon},
		mobile:  &MenuItem{name: name, icon: icon},
	})
}

// PathChanged handles an internal path-change notification. A registered
// path switches the visible panel and moves the highlight to that entry's
// desktop and mobile items. An unregistered path changes nothing.
func (l *SidebarLayout) PathChanged(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.entries {
		if entry.path != path {
			continue
		}

		l.visible = entry.panel

		for _, item := range l.selected {
			item.highlighted = false
		}
		l.selected = []*MenuItem{entry.desktop, entry.mobile}
		for _, item := range l.selected {
			item.highlighted = true
		}

		l.current = entry

		return
	}
}

// CurrentPanel returns the visible panel, nil before any navigation.
func (l *SidebarLayout) CurrentPanel() Panel {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.visible
}

// CurrentPath returns the active entry's path, empty before any navigation.
func (l *SidebarLayout) CurrentPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return ""
	}

	return l.current.path
}

// MenuItems returns the desktop and mobile items registered for a name.
// Both returns are nil for an unknown name.
func (l *SidebarLayout) MenuItems(name string) (desktop, mobile *MenuItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.entries {
		if strings.TrimPrefix(entry.path, "/") == name {
			return entry.desktop, entry.mobile
		}
	}

	return nil, nil
}

// HighlightedItems returns the currently highlighted items, at most one
// desktop/mobile pair.
func (l *SidebarLayout) HighlightedItems() []*MenuItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]*MenuItem, len(l.selected))
	copy(items, l.selected)

	return items
}
