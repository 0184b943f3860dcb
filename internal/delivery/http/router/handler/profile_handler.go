package handler

import (
	"log/slog"
	"net/http"

	"stylus/internal/delivery/http/middleware"
	"stylus/internal/delivery/http/response"
	"stylus/internal/ui/theme"
	"stylus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the signed-in user's profile and preferences.
type ProfileHandler struct {
	sessions usecase.SessionUsecase
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(sessions usecase.SessionUsecase, profiles usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		sessions: sessions,
		profiles: profiles,
		logger:   logger,
	}
}

type darkModeRequest struct {
	Enabled bool `json:"enabled"`
}

type profileResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	DarkMode      bool     `json:"darkMode"`
	Permissions   []string `json:"permissions"`
	HTMLClass     string   `json:"htmlClass"`
	ToggleClasses string   `json:"toggleClasses"`
}

// currentUser resolves the signed-in user behind the request, nil when the
// authenticated identity has no linked user yet.
func (h *ProfileHandler) currentUser(c echo.Context) (*uuid.UUID, error) {
	authInfoID, ok := c.Get(middleware.KeyAuthInfoID).(uuid.UUID)
	if !ok {
		return nil, nil
	}

	return &authInfoID, nil
}

// GetProfile returns the signed-in user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	authInfoID, _ := h.currentUser(c)

	user, err := h.sessions.CurrentUser(c.Request().Context(), authInfoID)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return response.NotFound(c, "USER_NOT_FOUND", "No user linked to this login")
	}

	permissions := make([]string, 0, len(user.Permissions))
	for _, p := range user.Permissions {
		permissions = append(permissions, p.Name)
	}

	return response.Success(c, http.StatusOK, profileResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		DarkMode:      user.DarkMode,
		Permissions:   permissions,
		HTMLClass:     theme.WithDark("h-full", user.DarkMode),
		ToggleClasses: theme.Classes(theme.RoleDarkModeToggle),
	}, "")
}

// SetDarkMode persists the signed-in user's dark-mode preference and
// returns the resulting html class set.
func (h *ProfileHandler) SetDarkMode(c echo.Context) error {
	var req darkModeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	authInfoID, _ := h.currentUser(c)

	user, err := h.sessions.CurrentUser(c.Request().Context(), authInfoID)
	if err != nil {
		return errors.WithStack(err)
	}
	if user == nil {
		return response.NotFound(c, "USER_NOT_FOUND", "No user linked to this login")
	}

	if err := h.profiles.SetDarkMode(c.Request().Context(), user.ID, req.Enabled); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"darkMode":      req.Enabled,
		"htmlClass":     theme.WithDark("h-full", req.Enabled),
		"toggleClasses": theme.Classes(theme.RoleDarkModeToggle),
	}, "Preference saved")
}
