package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBoard/internal/config"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Session.JWTSecret = "test-secret"
	cfg.Session.BcryptCost = 4
	cfg.Metrics.Enabled = true

	app, err := buildApp(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	srv := httptest.NewServer(app.handler())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	resp := call(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestBoardFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "letan", "letan123")

	// Свободная кровать 2 в филиале 1
	resp := call(t, srv, http.MethodGet, "/api/v1/beds/2/timeline", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	draft := map[string]interface{}{
		"customerName": "Trần Thị Mai",
		"service":      "Massage body",
		"startTime":    "10:00",
		"endTime":      "11:30",
	}
	resp = call(t, srv, http.MethodPost, "/api/v1/beds/2/assignment", token, map[string]interface{}{"draft": draft})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved struct {
		Mode          string `json:"mode"`
		AppointmentID string `json:"appointmentId"`
		Bed           struct {
			Status string `json:"status"`
		} `json:"bed"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	assert.Equal(t, "create", saved.Mode)
	assert.Equal(t, "occupied", saved.Bed.Status)
	assert.NotEmpty(t, saved.AppointmentID)

	// Повторное создание на занятой кровати
	resp = call(t, srv, http.MethodPost, "/api/v1/beds/2/assignment", token, map[string]interface{}{"draft": draft})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Запись попала в журнал
	resp = call(t, srv, http.MethodGet, "/api/v1/appointments?bedId=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Appointments []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"appointments"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Appointments, 1)
	assert.Equal(t, saved.AppointmentID, list.Appointments[0].ID)

	// Завершение освобождает кровать под уборку
	resp = call(t, srv, http.MethodPost, "/api/v1/beds/2/complete", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var completed struct {
		Bed struct {
			Status string `json:"status"`
		} `json:"bed"`
		PreviousStatus         string `json:"previousStatus"`
		CompletedAppointmentID string `json:"completedAppointmentId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&completed))
	assert.Equal(t, "cleaning", completed.Bed.Status)
	assert.Equal(t, "occupied", completed.PreviousStatus)
	assert.Equal(t, saved.AppointmentID, completed.CompletedAppointmentID)
}

func TestAccessRules(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, http.MethodGet, "/api/v1/beds", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"username": "letan", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	therapist := login(t, srv, "kythuat", "kythuat123")

	// Просмотр разрешен, управление нет
	resp = call(t, srv, http.MethodGet, "/api/v1/beds", therapist, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, srv, http.MethodPatch, "/api/v1/beds/7/status", therapist, map[string]string{"status": "maintenance"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Кровать чужого филиала
	resp = call(t, srv, http.MethodGet, "/api/v1/beds/1/timeline", therapist, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// После выхода токен больше не действует
	resp = call(t, srv, http.MethodPost, "/api/v1/auth/logout", therapist, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = call(t, srv, http.MethodGet, "/api/v1/auth/session", therapist, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := call(t, srv, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `beds{service="spa-board",status="available"} 3`)
}

func TestAdvertisedActionsSucceed(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	resp := call(t, srv, http.MethodGet, "/api/v1/beds", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	type action struct {
		Name   string            `json:"name"`
		Method string            `json:"method"`
		Path   string            `json:"path"`
		Body   map[string]string `json:"body"`
	}
	var list struct {
		Beds []struct {
			ID      int64    `json:"id"`
			Status  string   `json:"status"`
			Actions []action `json:"actions"`
		} `json:"beds"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.NotEmpty(t, list.Beds)

	wantStatus := map[string]string{
		"start_use":          "occupied",
		"complete_service":   "cleaning",
		"finish_cleaning":    "available",
		"finish_maintenance": "available",
	}

	for _, bed := range list.Beds {
		require.NotEmpty(t, bed.Actions, "bed %d", bed.ID)
		for _, a := range bed.Actions {
			var body interface{}
			if a.Body != nil {
				body = a.Body
			}
			resp := call(t, srv, a.Method, "/api/v1"+a.Path, token, body)
			require.Equal(t, http.StatusOK, resp.StatusCode, "bed %d action %s", bed.ID, a.Name)

			if a.Name == "start_use" {
				// Форма записи открыта, сохранение переводит кровать в occupied
				var form struct {
					Draft map[string]interface{} `json:"draft"`
				}
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&form))
				form.Draft["customerName"] = "Võ Thị Ngọc"
				form.Draft["service"] = "Gội đầu dưỡng sinh"
				resp = call(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/beds/%d/assignment", bed.ID), token,
					map[string]interface{}{"draft": form.Draft})
				require.Equal(t, http.StatusCreated, resp.StatusCode, "bed %d", bed.ID)
			}

			resp = call(t, srv, http.MethodGet, fmt.Sprintf("/api/v1/beds/%d", bed.ID), token, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var after struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
			assert.Equal(t, wantStatus[a.Name], after.Status, "bed %d action %s", bed.ID, a.Name)
		}
	}
}

func TestSetStatusOccupiedStillRejected(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	resp := call(t, srv, http.MethodPatch, "/api/v1/beds/4/status", token, map[string]string{"status": "occupied"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
