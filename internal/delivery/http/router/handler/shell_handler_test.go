package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylus/internal/delivery/http/middleware"
	"stylus/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShellTestServer() (*echo.Echo, *ShellHandler) {
	e := echo.New()
	e.Validator = validator.New()
	h := NewShellHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return e, h
}

func navigateAs(t *testing.T, e *echo.Echo, h *ShellHandler, authInfoID uuid.UUID, path string) shellState {
	t.Helper()

	body := strings.NewReader(`{"path":"` + path + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/app/shell/navigate", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyAuthInfoID, authInfoID)

	require.NoError(t, h.Navigate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data shellState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func getStateAs(t *testing.T, e *echo.Echo, h *ShellHandler, authInfoID uuid.UUID) shellState {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/app/shell", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyAuthInfoID, authInfoID)

	require.NoError(t, h.GetState(c))

	var envelope struct {
		Data shellState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestShellHandler_InitialState(t *testing.T) {
	e, h := newShellTestServer()

	state := getStateAs(t, e, h, uuid.New())

	assert.Empty(t, state.CurrentPath)
	assert.Empty(t, state.CurrentPanel)
	require.Len(t, state.Desktop, 2)
	for _, item := range state.Desktop {
		assert.False(t, item.Highlighted)
		assert.NotEmpty(t, item.IconClasses)
	}
}

func TestShellHandler_NavigateSwitchesPanel(t *testing.T) {
	e, h := newShellTestServer()

	state := navigateAs(t, e, h, uuid.New(), "/stylus")

	assert.Equal(t, "/stylus", state.CurrentPath)
	assert.Equal(t, "stylus-panel", state.CurrentPanel)

	// Exactly the stylus pair is highlighted, desktop and mobile.
	require.Len(t, state.Desktop, 2)
	require.Len(t, state.Mobile, 2)
	for i, item := range state.Desktop {
		wantHighlight := item.Name == "stylus"
		assert.Equal(t, wantHighlight, item.Highlighted)
		assert.Equal(t, wantHighlight, state.Mobile[i].Highlighted)
	}
}

func TestShellHandler_UnknownPathKeepsState(t *testing.T) {
	e, h := newShellTestServer()
	id := uuid.New()

	navigateAs(t, e, h, id, "/home")
	state := navigateAs(t, e, h, id, "/missing")

	assert.Equal(t, "/home", state.CurrentPath)
	assert.Equal(t, "home-panel", state.CurrentPanel)
	for _, item := range state.Desktop {
		assert.Equal(t, item.Name == "home", item.Highlighted)
	}
}

func TestShellHandler_NavigationIsPerIdentity(t *testing.T) {
	e, h := newShellTestServer()
	alice := uuid.New()
	bob := uuid.New()

	navigateAs(t, e, h, alice, "/stylus")
	state := navigateAs(t, e, h, bob, "/home")

	assert.Equal(t, "/home", state.CurrentPath)

	// Alice still sees her own navigation, untouched by Bob's.
	aliceState := getStateAs(t, e, h, alice)
	assert.Equal(t, "/stylus", aliceState.CurrentPath)
	assert.Equal(t, "stylus-panel", aliceState.CurrentPanel)
	for _, item := range aliceState.Desktop {
		assert.Equal(t, item.Name == "stylus", item.Highlighted)
	}

	// Bob never inherited Alice's highlight either.
	for _, item := range state.Desktop {
		assert.Equal(t, item.Name == "home", item.Highlighted)
	}
}
