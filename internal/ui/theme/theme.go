// Package theme maps style roles to CSS class lists for the rendering
// layer. Widgets carry an explicit role tag set at construction; the class
// set is resolved through a lookup table, never by inspecting widget types.
package theme

import "strings"

// StyleRole tags a UI element with its visual role.
type StyleRole int

const (
	RoleNone StyleRole = iota
	RoleMenuItem
	RoleMenuItemIcon
	RoleMenuItemSelected
	RoleButton
	RoleButtonPrimary
	RolePanel
	RolePanelTitleBar
	RolePanelBody
	RoleDialog
	RoleDialogTitleBar
	RoleDialogBody
	RoleDialogFooter
	RoleInput
	RoleDarkModeToggle
)

// styleClasses is the single dispatch table for role styling.
var styleClasses = map[StyleRole]string{
	RoleMenuItem:         "px-4 py-2 text-sm text-gray-700 dark:text-gray-200 hover:bg-gray-100 dark:hover:bg-gray-700 transition-colors",
	RoleMenuItemIcon:     "w-4 h-4 text-gray-500 dark:text-gray-400",
	RoleMenuItemSelected: "!bg-surface-alt !text-primary",
	RoleButton:           "inline-flex items-center justify-center gap-2 rounded-lg px-4 py-2 text-sm font-medium transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2",
	RoleButtonPrimary:    "bg-blue-600 text-white hover:bg-blue-500 focus:ring-blue-500 dark:bg-blue-500 dark:hover:bg-blue-400 dark:focus:ring-blue-400",
	RolePanel:            "rounded-xl border border-gray-200 dark:border-gray-700 bg-white dark:bg-gray-800 shadow",
	RolePanelTitleBar:    "px-4 py-2 font-semibold text-gray-900 dark:text-gray-100 border-b border-gray-200 dark:border-gray-700",
	RolePanelBody:        "px-4 py-3 space-y-3",
	RoleDialog:           "bg-white dark:bg-gray-900 rounded-2xl shadow-2xl border border-gray-200 dark:border-gray-700",
	RoleDialogTitleBar:   "px-6 py-4 text-lg font-semibold text-gray-900 dark:text-gray-100 border-b border-gray-200 dark:border-gray-700",
	RoleDialogBody:       "px-6 py-4 space-y-4",
	RoleDialogFooter:     "px-6 py-4 border-t border-gray-200 dark:border-gray-700 bg-gray-50 dark:bg-gray-800 flex justify-end gap-2",
	RoleInput:            "block w-full rounded-lg border border-gray-300 dark:border-gray-700 bg-white dark:bg-gray-900 px-3 py-2 text-sm text-gray-900 dark:text-gray-100 focus:outline-none focus:ring-2 focus:ring-blue-500 focus:border-blue-500 transition",
	RoleDarkModeToggle:   "flex items-center justify-center p-2 text-md font-bold !rounded-full w-10 bg-primary/20",
}

// Classes returns the space-separated class list for a role. Unknown roles
// resolve to the empty string.
func Classes(role StyleRole) string {
	return styleClasses[role]
}

// DisabledClass is applied to any disabled element.
const DisabledClass = "opacity-60"

// ActiveClass is applied to the active element of a group.
const ActiveClass = "bg-blue-600"

// darkToken is the html class enabling the dark variant of every style.
const darkToken = "dark"

// IsDark reports whether the html class set enables dark mode.
func IsDark(htmlClass string) bool {
	for _, cls := range strings.Fields(htmlClass) {
		if cls == darkToken {
			return true
		}
	}

	return false
}

// WithDark returns the html class set with dark mode switched on or off.
// The remaining classes keep their order.
func WithDark(htmlClass string, enabled bool) string {
	classes := strings.Fields(htmlClass)
	kept := classes[:0]
	for _, cls := range classes {
		if cls != darkToken {
			kept = append(kept, cls)
		}
	}

	if enabled {
		kept = append(kept, darkToken)
	}

	return strings.Join(kept, " ")
}
