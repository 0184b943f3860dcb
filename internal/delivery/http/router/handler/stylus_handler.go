package handler

import (
	"net/http"

	"stylus/internal/delivery/http/response"
	"stylus/internal/ui/theme"

	"github.com/labstack/echo/v4"
)

// StylusHandler serves the permission-gated drawing area. Access control
// happens in the route middleware; by the time a request lands here the
// STYLUS permission has been verified.
type StylusHandler struct{}

// NewStylusHandler creates a new StylusHandler instance
func NewStylusHandler() *StylusHandler {
	return &StylusHandler{}
}

// brushColors are the selectable pen colors of the drawing toolbar, first
// one active by default.
var brushColors = []string{"black", "red", "green", "blue"}

type colorButtonState struct {
	Color   string `json:"color"`
	Classes string `json:"classes"`
}

type toolbarState struct {
	Colors       []colorButtonState `json:"colors"`
	UndoClasses  string             `json:"undoClasses"`
	ClearClasses string             `json:"clearClasses"`
	TitleInput   string             `json:"titleInput"`
	TitleClasses string             `json:"titleClasses"`
}

type dialogState struct {
	Classes       string `json:"classes"`
	TitleClasses  string `json:"titleClasses"`
	BodyClasses   string `json:"bodyClasses"`
	FooterClasses string `json:"footerClasses"`
}

type workspaceState struct {
	Panel           string       `json:"panel"`
	PanelClasses    string       `json:"panelClasses"`
	TitleBarClasses string       `json:"titleBarClasses"`
	BodyClasses     string       `json:"bodyClasses"`
	Toolbar         toolbarState `json:"toolbar"`
	ClearConfirm    dialogState  `json:"clearConfirm"`
}

// GetWorkspace returns the stylus workspace: the panel chrome, the drawing
// toolbar, and the clear-canvas confirmation dialog, each carrying its
// resolved style classes. A fresh canvas has nothing to undo, so the undo
// button starts disabled.
func (h *StylusHandler) GetWorkspace(c echo.Context) error {
	button := theme.Classes(theme.RoleButton)

	colors := make([]colorButtonState, 0, len(brushColors))
	for i, color := range brushColors {
		classes := button
		if i == 0 {
			classes += " " + theme.ActiveClass
		}
		colors = append(colors, colorButtonState{Color: color, Classes: classes})
	}

	return response.Success(c, http.StatusOK, workspaceState{
		Panel:           "stylus-panel",
		PanelClasses:    theme.Classes(theme.RolePanel),
		TitleBarClasses: theme.Classes(theme.RolePanelTitleBar),
		BodyClasses:     theme.Classes(theme.RolePanelBody),
		Toolbar: toolbarState{
			Colors:       colors,
			UndoClasses:  button + " " + theme.DisabledClass,
			ClearClasses: button + " " + theme.Classes(theme.RoleButtonPrimary),
			TitleInput:   "untitled",
			TitleClasses: theme.Classes(theme.RoleInput),
		},
		ClearConfirm: dialogState{
			Classes:       theme.Classes(theme.RoleDialog),
			TitleClasses:  theme.Classes(theme.RoleDialogTitleBar),
			BodyClasses:   theme.Classes(theme.RoleDialogBody),
			FooterClasses: theme.Classes(theme.RoleDialogFooter),
		},
	}, "")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
