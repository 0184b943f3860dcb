package sidebar

import (
	"testing"

	"stylus/internal/ui/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPanel struct {
	name string
}

func (p *testPanel) Name() string { return p.name }

func newTestLayout() (*SidebarLayout, *testPanel, *testPanel) {
	layout := NewSidebarLayout()
	home := &testPanel{name: "home-panel"}
	about := &testPanel{name: "about-panel"}
	layout.AddMenuItem("home", home, "heroicon-home")
	layout.AddMenuItem("about", about, "heroicon-info")

	return layout, home, about
}

func TestSidebarLayout_InitialState(t *testing.T) {
	layout, _, _ := newTestLayout()

	assert.Nil(t, layout.CurrentPanel())
	assert.Empty(t, layout.CurrentPath())
	assert.Empty(t, layout.HighlightedItems())
}

func TestSidebarLayout_PathChangedSwitchesPanel(t *testing.T) {
	layout, _, about := newTestLayout()

	layout.PathChanged("/about")

	assert.Same(t, Panel(about), layout.CurrentPanel())
	assert.Equal(t, "/about", layout.CurrentPath())
}

func TestSidebarLayout_HighlightsExactlyOnePair(t *testing.T) {
	layout, _, _ := newTestLayout()

	layout.PathChanged("/about")

	highlighted := layout.HighlightedItems()
	require.Len(t, highlighted, 2)
	for _, item := range highlighted {
		assert.Equal(t, "about", item.Name())
		assert.True(t, item.Highlighted())
	}

	homeDesktop, homeMobile := layout.MenuItems("home")
	require.NotNil(t, homeDesktop)
	require.NotNil(t, homeMobile)
	assert.False(t, homeDesktop.Highlighted())
	assert.False(t, homeMobile.Highlighted())
}

func TestSidebarLayout_NavigationMovesHighlight(t *testing.T) {
	layout, home, _ := newTestLayout()

	layout.PathChanged("/about")
	layout.PathChanged("/home")

	assert.Same(t, Panel(home), layout.CurrentPanel())

	aboutDesktop, aboutMobile := layout.MenuItems("about")
	assert.False(t, aboutDesktop.Highlighted())
	assert.False(t, aboutMobile.Highlighted())

	homeDesktop, homeMobile := layout.MenuItems("home")
	assert.True(t, homeDesktop.Highlighted())
	assert.True(t, homeMobile.Highlighted())
}

func TestSidebarLayout_UnknownPathIsNoOp(t *testing.T) {
	layout, _, about := newTestLayout()

	layout.PathChanged("/about")
	layout.PathChanged("/missing")

	// Previous panel and highlighting are untouched.
	assert.Same(t, Panel(about), layout.CurrentPanel())
	assert.Equal(t, "/about", layout.CurrentPath())

	highlighted := layout.HighlightedItems()
	require.Len(t, highlighted, 2)
	assert.Equal(t, "about", highlighted[0].Name())
}

func TestSidebarLayout_UnknownPathBeforeFirstNavigation(t *testing.T) {
	layout, _, _ := newTestLayout()

	layout.PathChanged("/missing")

	assert.Nil(t, layout.CurrentPanel())
	assert.Empty(t, layout.HighlightedItems())
}

func TestSidebarLayout_PartialPathDoesNotMatch(t *testing.T) {
	layout, _, _ := newTestLayout()

	layout.PathChanged("/hom")
	layout.PathChanged("/home/extra")

	assert.Nil(t, layout.CurrentPanel())
}

func TestMenuItem_StyleClasses(t *testing.T) {
	layout, _, _ := newTestLayout()

	desktop, _ := layout.MenuItems("home")
	assert.NotContains(t, desktop.StyleClasses(), theme.Classes(theme.RoleMenuItemSelected))

	layout.PathChanged("/home")
	assert.Contains(t, desktop.StyleClasses(), theme.Classes(theme.RoleMenuItemSelected))

	assert.Equal(t, "heroicon-home", desktop.Icon())
}

func TestSidebarLayout_MenuItemsUnknownName(t *testing.T) {
	layout, _, _ := newTestLayout()

	desktop, mobile := layout.MenuItems("missing")
	assert.Nil(t, desktop)
	assert.Nil(t, mobile)
}
