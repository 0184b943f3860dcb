package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylus/internal/ui/theme"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylusHandler_GetWorkspace(t *testing.T) {
	e := echo.New()
	h := NewStylusHandler()

	req := httptest.NewRequest(http.MethodGet, "/stylus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetWorkspace(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data workspaceState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	ws := envelope.Data

	assert.Equal(t, "stylus-panel", ws.Panel)
	assert.Equal(t, theme.Classes(theme.RolePanel), ws.PanelClasses)
	assert.Equal(t, theme.Classes(theme.RolePanelTitleBar), ws.TitleBarClasses)
	assert.Equal(t, theme.Classes(theme.RolePanelBody), ws.BodyClasses)

	assert.Equal(t, theme.Classes(theme.RoleDialog), ws.ClearConfirm.Classes)
	assert.Equal(t, theme.Classes(theme.RoleDialogFooter), ws.ClearConfirm.FooterClasses)
	assert.Equal(t, theme.Classes(theme.RoleInput), ws.Toolbar.TitleClasses)

	// Only the default color carries the active marker; undo starts disabled.
	require.Len(t, ws.Toolbar.Colors, 4)
	assert.Contains(t, ws.Toolbar.Colors[0].Classes, theme.ActiveClass)
	for _, btn := range ws.Toolbar.Colors[1:] {
		assert.NotContains(t, btn.Classes, theme.ActiveClass)
	}
	assert.True(t, strings.HasSuffix(ws.Toolbar.UndoClasses, theme.DisabledClass))
	assert.Contains(t, ws.Toolbar.ClearClasses, theme.Classes(theme.RoleButtonPrimary))
}
