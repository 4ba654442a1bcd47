package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zander1983/WindAndSolar/internal/config"
	"github.com/Zander1983/WindAndSolar/pkg/presets"
	"github.com/Zander1983/WindAndSolar/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.CacheSize = 32
	s, err := New(cfg, presets.Embedded(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CacheSize = 0
	_, err := New(cfg, presets.Embedded(), nil)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "cache")
}

func TestAssumptionsRoutes(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/assumptions", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Default  string   `json:"default"`
		Versions []string `json:"versions"`
	}](t, w)
	assert.Equal(t, "v2", list.Default)
	assert.Equal(t, []string{"v1", "v2"}, list.Versions)

	w = do(t, s, http.MethodGet, "/api/assumptions/v1", "")
	require.Equal(t, http.StatusOK, w.Code)
	set := decode[map[string]any](t, w)
	assert.Equal(t, "v1", set["version"])

	w = do(t, s, http.MethodGet, "/api/assumptions/v9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPresetRoutes(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Presets []presets.Summary `json:"presets"`
	}](t, w)
	assert.Contains(t, list.Presets, presets.Summary{Name: "ireland", Country: "Ireland"})

	w = do(t, s, http.MethodGet, "/api/presets/ireland", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"country":"Ireland"`)

	w = do(t, s, http.MethodGet, "/api/presets/atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type sizeResponse struct {
	Fingerprint string `json:"fingerprint"`
	Cached      bool   `json:"cached"`
	Result      *struct {
		Assumptions string `json:"assumptions"`
		Grid        struct {
			TotalNewTWh    float64 `json:"total_new_electricity_twh"`
			NumTurbines    int64   `json:"num_turbines"`
			NumSolarPanels int64   `json:"num_solar_panels"`
			ExtraWindGW    float64 `json:"extra_wind_capacity_gw"`
		} `json:"grid"`
		Storage struct {
			Enabled           bool  `json:"enabled"`
			ReservoirVolumeM3 int64 `json:"reservoir_volume_m3"`
		} `json:"storage"`
	} `json:"result"`
	Validation validation.Report `json:"validation"`
}

func TestSizePresetAndCache(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/size", `{"preset":"ireland"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[sizeResponse](t, w)

	require.NotNil(t, first.Result)
	assert.False(t, first.Cached)
	assert.Len(t, first.Fingerprint, 16)
	assert.Equal(t, "v2", first.Result.Assumptions)
	assert.InDelta(t, 77.3692827914, first.Result.Grid.TotalNewTWh, 1e-6)
	assert.Equal(t, int64(3543), first.Result.Grid.NumTurbines)
	assert.False(t, first.Result.Storage.Enabled)

	w = do(t, s, http.MethodPost, "/api/size", `{"preset":"ireland"}`)
	second := decode[sizeResponse](t, w)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestSizeParameterOverride(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/size",
		`{"preset":"ireland","parameters":{"storageEnabled":true,"storageDurationDays":2}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[sizeResponse](t, w)

	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.Storage.Enabled)
	assert.InEpsilon(t, 1568449791, float64(resp.Result.Storage.ReservoirVolumeM3), 1e-6)
	assert.Equal(t, int64(3543), resp.Result.Grid.NumTurbines, "defaults kept for unspecified parameters")
}

func TestSizeContributionInputs(t *testing.T) {
	s := newTestServer(t)

	body := `{"inputs":{"electricity":{"existingFossilFuelElectricity":"10","existingCarbonFreeElectricity":""},"railDiesel":null}}`
	w := do(t, s, http.MethodPost, "/api/size", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[sizeResponse](t, w)
	assert.InDelta(t, 10, resp.Result.Grid.TotalNewTWh, 1e-9)
}

func TestSizeInvalid(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/size", `{"parameters":{"windCapacityFactorPct":0}}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode[sizeResponse](t, w)
	assert.Nil(t, resp.Result)
	assert.False(t, resp.Validation.Valid)
	assert.True(t, resp.Validation.HasPath(validation.SeverityError, "parameters.wind_capacity_factor_pct"))
}

func TestSizeBadRequests(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/api/size", `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/api/size", `{"assumptions":"v9"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPost, "/api/size", `{"preset":"atlantis"}`).Code)
}

func TestValidateRoute(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/validate", `{"inputs":{"heat":{"industryHeat":-2}}}`)
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[validation.Report](t, w)
	assert.False(t, report.Valid)
	assert.True(t, report.HasPath(validation.SeverityError, "inputs.heat.industry_twh"))
}

// WebSocket sessions

func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	return env
}

func send(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	data, err := NewEnvelope(msgType, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

type wsResult struct {
	Revision uint64 `json:"revision"`
	sizeResponse
}

// readResult reads until a result for revision arrives.
func readResult(t *testing.T, conn *websocket.Conn, revision uint64) wsResult {
	t.Helper()
	for {
		env := readEnvelope(t, conn)
		require.Equal(t, TypeResult, env.Type, string(env.Payload))
		var r wsResult
		require.NoError(t, json.Unmarshal(env.Payload, &r))
		require.LessOrEqual(t, r.Revision, revision, "results arrive in revision order")
		if r.Revision == revision {
			return r
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)

	env := readEnvelope(t, conn)
	require.Equal(t, TypeSessionReady, env.Type)
	var ready SessionReadyPayload
	require.NoError(t, json.Unmarshal(env.Payload, &ready))
	assert.Len(t, ready.SessionID, 36)
	assert.Equal(t, "v2", ready.Assumptions)

	initial := readResult(t, conn, 0)
	require.NotNil(t, initial.Result)
	assert.Zero(t, initial.Result.Grid.TotalNewTWh)

	send(t, conn, TypePresetSelect, PresetSelectPayload{Name: "ireland"})
	r := readResult(t, conn, 1)
	assert.InDelta(t, 77.3692827914, r.Result.Grid.TotalNewTWh, 1e-6)
	assert.False(t, r.Result.Storage.Enabled)

	send(t, conn, TypeParametersUpdate, map[string]any{
		"parameters": map[string]any{"storageEnabled": true, "storageDurationDays": 2},
	})
	r = readResult(t, conn, 2)
	assert.True(t, r.Result.Storage.Enabled)
	assert.InDelta(t, 77.3692827914, r.Result.Grid.TotalNewTWh, 1e-6, "inputs survive a parameter update")

	send(t, conn, TypeSessionReset, nil)
	r = readResult(t, conn, 3)
	assert.Zero(t, r.Result.Grid.TotalNewTWh)
	assert.False(t, r.Result.Storage.Enabled, "reset disables storage")
}

func TestSessionRejectsBadMessages(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readEnvelope(t, conn)
	readResult(t, conn, 0)

	for _, tc := range []struct {
		msgType string
		payload any
	}{
		{"bogus", nil},
		{TypeAssumptionsSet, AssumptionsSetPayload{Version: "v9"}},
		{TypePresetSelect, PresetSelectPayload{Name: "atlantis"}},
	} {
		send(t, conn, tc.msgType, tc.payload)
		env := readEnvelope(t, conn)
		require.Equal(t, TypeError, env.Type, tc.msgType)

		var p ErrorPayload
		require.NoError(t, json.Unmarshal(env.Payload, &p))
		assert.NotEmpty(t, p.Message)
		assert.Zero(t, p.Revision, "rejected messages do not bump the revision")
	}
}

func TestSessionInvalidSnapshotReportsValidation(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readEnvelope(t, conn)
	readResult(t, conn, 0)

	send(t, conn, TypeParametersUpdate, map[string]any{
		"parameters": map[string]any{"turbineCapacityMW": 0},
	})
	r := readResult(t, conn, 1)
	assert.Nil(t, r.Result)
	assert.True(t, r.Validation.HasPath(validation.SeverityError, "parameters.turbine_capacity_mw"))
}

func TestSessionAssumptionsSwitch(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readEnvelope(t, conn)
	readResult(t, conn, 0)

	send(t, conn, TypeAssumptionsSet, AssumptionsSetPayload{Version: "v1"})
	r := readResult(t, conn, 1)
	require.NotNil(t, r.Result)
	assert.Equal(t, "v1", r.Result.Assumptions)
}

func TestSessionBurstDeliversLatest(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readEnvelope(t, conn)
	readResult(t, conn, 0)

	for i := 0; i < 10; i++ {
		send(t, conn, TypeInputsUpdate, map[string]any{
			"inputs": map[string]any{"electricity": map[string]any{"existingFossilFuelElectricity": i + 1}},
		})
	}
	r := readResult(t, conn, 10)
	assert.InDelta(t, 10, r.Result.Grid.TotalNewTWh, 1e-9)
}

func TestHubCountsSessions(t *testing.T) {
	s := newTestServer(t)
	conn := dial(t, s)
	readEnvelope(t, conn)

	assert.Equal(t, 1, s.hub.ClientCount())
	conn.Close()
	assert.Eventually(t, func() bool { return s.hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
