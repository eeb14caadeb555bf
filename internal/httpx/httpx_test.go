package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type payload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestWriteNegotiates(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusCreated, payload{"a", 1.5})
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, ContentTypeJSON, rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"name":"a","value":1.5}`, rec.Body.String())
	})

	t.Run("msgpack on request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", "application/msgpack, application/json;q=0.5")
		rec := httptest.NewRecorder()
		Write(rec, req, http.StatusOK, payload{"a", 1.5})
		assert.Equal(t, ContentTypeMsgpack, rec.Header().Get("Content-Type"))

		var out map[string]interface{}
		require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "a", out["name"])
		assert.Equal(t, 1.5, out["value"])
	})
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, NewBadGatewayError("catalog unavailable", errors.New("dial tcp")))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var got APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "UPSTREAM_ERROR", got.Code)
	assert.Equal(t, "dial tcp", got.Details)
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("l4 must be > 0")
	cases := []struct {
		err    *APIError
		status int
		code   string
	}{
		{NewBadRequestError("bad", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewValidationError(cause), http.StatusBadRequest, "VALIDATION_ERROR"},
		{NewConfigurationError(cause), http.StatusBadRequest, "INVALID_CONFIGURATION"},
		{NewUnauthorizedError("no"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewNotFoundError("gone"), http.StatusNotFound, "NOT_FOUND"},
		{NewMethodNotAllowedError(), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{NewConflictError("taken"), http.StatusConflict, "CONFLICT"},
		{NewTooManyRequestsError(), http.StatusTooManyRequests, "RATE_LIMITED"},
		{NewInternalError("boom", cause), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
	}
	assert.Equal(t, "l4 must be > 0", NewConfigurationError(cause).Message)
}

func TestDecodeJSON(t *testing.T) {
	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","value":2}`))
	assert.Nil(t, DecodeJSON(httptest.NewRecorder(), req, &p))
	assert.Equal(t, payload{"x", 2}, p)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	apiErr := DecodeJSON(httptest.NewRecorder(), req, &p)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	big := `{"name":"` + strings.Repeat("a", MaxBodySize) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	assert.NotNil(t, DecodeJSON(httptest.NewRecorder(), req, &p))
}

func TestMiddlewareChain(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	h := RequestID(Logger(log)(CORS(inner)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, logs.String(), `"status":418`)
	assert.Contains(t, logs.String(), seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "given-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", seen)
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/calculate", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
}
