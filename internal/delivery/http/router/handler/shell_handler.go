package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"stylus/internal/delivery/http/middleware"
	"stylus/internal/delivery/http/response"
	"stylus/internal/ui/sidebar"
	"stylus/internal/ui/theme"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// contentPanel is a named placeholder for a server-rendered content area.
type contentPanel struct {
	name string
}

func (p *contentPanel) Name() string { return p.name }

// ShellHandler exposes the navigation state of the application shell: the
// sidebar menu, the visible panel, and path-change dispatch. Navigation is
// per signed-in identity; one user's path changes never leak into another
// user's shell.
type ShellHandler struct {
	mu      sync.Mutex
	layouts map[uuid.UUID]*sidebar.SidebarLayout
	names   []string
	logger  *slog.Logger
}

// NewShellHandler is the constructor for ShellHandler, injected by Fx.
func NewShellHandler(logger *slog.Logger) *ShellHandler {
	return &ShellHandler{
		layouts: make(map[uuid.UUID]*sidebar.SidebarLayout),
		names:   []string{"home", "stylus"},
		logger:  logger,
	}
}

// newShellLayout builds a layout with the fixed menu entries.
func newShellLayout() *sidebar.SidebarLayout {
	layout := sidebar.NewSidebarLayout()
	layout.AddMenuItem("home", &contentPanel{name: "home-panel"}, "heroicon-home")
	layout.AddMenuItem("stylus", &contentPanel{name: "stylus-panel"}, "heroicon-pencil")

	return layout
}

// layoutFor returns the layout owned by the request's authenticated
// identity, building it on first use.
func (h *ShellHandler) layoutFor(c echo.Context) *sidebar.SidebarLayout {
	authInfoID, _ := c.Get(middleware.KeyAuthInfoID).(uuid.UUID)

	h.mu.Lock()
	defer h.mu.Unlock()

	layout, ok := h.layouts[authInfoID]
	if !ok {
		layout = newShellLayout()
		h.layouts[authInfoID] = layout
	}

	return layout
}

type navigateRequest struct {
	Path string `json:"path" validate:"required"`
}

type menuItemState struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	IconClasses  string `json:"iconClasses"`
	Highlighted  bool   `json:"highlighted"`
	StyleClasses string `json:"styleClasses"`
}

type shellState struct {
	CurrentPath  string          `json:"currentPath"`
	CurrentPanel string          `json:"currentPanel,omitempty"`
	Desktop      []menuItemState `json:"desktop"`
	Mobile       []menuItemState `json:"mobile"`
}

// GetState returns the signed-in identity's current navigation state.
func (h *ShellHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.state(h.layoutFor(c)), "")
}

// Navigate dispatches a path-change notification. Unknown paths leave the
// state untouched and still return 200; dead paths are not errors.
func (h *ShellHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	layout := h.layoutFor(c)
	layout.PathChanged(req.Path)

	return response.Success(c, http.StatusOK, h.state(layout), "")
}

func (h *ShellHandler) state(layout *sidebar.SidebarLayout) shellState {
	state := shellState{CurrentPath: layout.CurrentPath()}
	if panel := layout.CurrentPanel(); panel != nil {
		state.CurrentPanel = panel.Name()
	}

	for _, name := range h.names {
		desktop, mobile := layout.MenuItems(name)
		state.Desktop = append(state.Desktop, itemState(desktop))
		state.Mobile = append(state.Mobile, itemState(mobile))
	}

	return state
}

func itemState(item *sidebar.MenuItem) menuItemState {
	return menuItemState{
		Name:         item.Name(),
		Icon:         item.Icon(),
		IconClasses:  theme.Classes(theme.RoleMenuItemIcon),
		Highlighted:  item.Highlighted(),
		StyleClasses: item.StyleClasses(),
	}
}
