package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClasses(t *testing.T) {
	assert.Equal(t, "!bg-surface-alt !text-primary", Classes(RoleMenuItemSelected))
	assert.Empty(t, Classes(RoleNone))
	assert.Empty(t, Classes(StyleRole(999)))
}

func TestIsDark(t *testing.T) {
	assert.False(t, IsDark(""))
	assert.False(t, IsDark("h-full antialiased"))
	assert.True(t, IsDark("h-full dark antialiased"))
	// Substrings of other classes don't count.
	assert.False(t, IsDark("h-full darker"))
}

func TestWithDark(t *testing.T) {
	assert.Equal(t, "dark", WithDark("", true))
	assert.Equal(t, "", WithDark("dark", false))
	assert.Equal(t, "h-full antialiased dark", WithDark("h-full antialiased", true))
	assert.Equal(t, "h-full antialiased", WithDark("h-full dark antialiased", false))

	// Toggling twice is stable.
	on := WithDark("h-full", true)
	assert.Equal(t, on, WithDark(on, true))
}
