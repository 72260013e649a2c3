package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AwesomeTrading/ordercore/internal/adapter/in_memory"
	"github.com/AwesomeTrading/ordercore/internal/api/dto"
	"github.com/AwesomeTrading/ordercore/internal/core"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	eng := core.NewEngine(in_memory.NewMemoryStore(), in_memory.NewCache(), in_memory.NewPublisher(), zap.NewNop())
	srv := NewHTTPServer(eng)
	r := gin.New()
	srv.register(r)
	return r
}

func eventBody(typ string, extra string) string {
	return fmt.Sprintf(`{
		"type": %q,
		"trader_id": "TRADER-001",
		"strategy_id": "S-001",
		"instrument_id": "AUD/USD.SIM",
		"client_order_id": "O-123456789",
		%s
		"event_id": %q,
		"ts_event": 1,
		"ts_init": 1,
		"reconciliation": false
	}`, typ, extra, uuid.NewString())
}

func postEvent(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func initBody() string {
	return eventBody("OrderInitialized", `
		"order_side": "BUY",
		"order_type": "LIMIT",
		"quantity": "100000",
		"price": "1.1000",
		"time_in_force": "GTC",
		"post_only": false,
		"reduce_only": false,`)
}

func TestProcessEventEndpoint(t *testing.T) {
	r := newTestRouter()

	w := postEvent(t, r, initBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.ProcessEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "O-123456789", resp.ClientOrderID)
	assert.Equal(t, "OrderInitialized", resp.EventType)
	assert.Equal(t, "INITIALIZED", resp.Order.Status)
	assert.Equal(t, "100000", resp.Order.LeavesQty)
}

func TestProcessEventMalformedBody(t *testing.T) {
	r := newTestRouter()
	w := postEvent(t, r, `{"type":"OrderDenied"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessEventUnknownVariant(t *testing.T) {
	r := newTestRouter()
	w := postEvent(t, r, `{"type":"OrderTeleported","client_order_id":"O-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessEventIllegalTransitionConflicts(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, postEvent(t, r, initBody()).Code)

	// accepted without a prior submit
	w := postEvent(t, r, eventBody("OrderAccepted", `
		"venue_order_id": "V-001",
		"account_id": "SIM-001",`))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProcessEventUnknownOrderNotFound(t *testing.T) {
	r := newTestRouter()
	w := postEvent(t, r, eventBody("OrderSubmitted", `"account_id": "SIM-001",`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderEndpoint(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, postEvent(t, r, initBody()).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/O-123456789", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GetOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "O-123456789", resp.Order.ClientOrderID)
	assert.Equal(t, "1.1000", resp.Order.Price)
}

func TestGetOrderNotFound(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/O-MISSING", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEventsEndpoint(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, postEvent(t, r, initBody()).Code)
	require.Equal(t, http.StatusOK, postEvent(t, r, eventBody("OrderSubmitted", `"account_id": "SIM-001",`)).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/O-123456789/events", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GetEventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Events, 2)
}

func TestReplayEndpoint(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, postEvent(t, r, initBody()).Code)
	require.Equal(t, http.StatusOK, postEvent(t, r, eventBody("OrderSubmitted", `"account_id": "SIM-001",`)).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/O-123456789/replay", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReplayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.EventCount)
	assert.Equal(t, "SUBMITTED", resp.Order.Status)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
