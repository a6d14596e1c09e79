// Package integration provides helpers and integration tests for the booking
// service. Integration tests verify that components work together correctly,
// including HTTP handlers, use cases, the session store, and providers.
package integration

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/skybooker/flight-booking-service/internal/adapter/http"
	"github.com/skybooker/flight-booking-service/internal/adapter/http/middleware"
	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/logger"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/session"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/token"
	"github.com/skybooker/flight-booking-service/internal/usecase"
)

// Now is the pinned "current time" for all integration tests. Departure
// dates in fixtures are a few days after it.
var Now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance wired with real use cases over the
// in-memory session store, and exposes the collaborators tests configure.
type TestServer struct {
	Echo    *echo.Echo
	Store   *session.MemoryStore
	Clock   *timeutil.FixedClock
	Tokens  *token.Manager

	Auth    usecase.AuthUseCase
	Search  usecase.SearchUseCase
	Booking usecase.BookingUseCase
	Payment usecase.PaymentUseCase
}

// NewTestServer builds a full server around the given search provider.
func NewTestServer(t *testing.T, provider domain.SearchProvider) *TestServer {
	t.Helper()

	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(func() { store.Close() })

	clock := timeutil.NewFixedClock(Now)
	tokens := token.NewManager("integration-secret", time.Hour)
	log := logger.Nop()

	authUC := usecase.NewAuthUseCase(store, tokens, clock, log)
	searchUC := usecase.NewSearchUseCase(store, provider, []string{"Delhi", "Mumbai", "Bangalore"}, clock, log)
	bookingUC := usecase.NewBookingUseCase(store, clock, rand.New(rand.NewSource(7)), log)
	paymentUC := usecase.NewPaymentUseCase(store, clock, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(authUC, searchUC, bookingUC, paymentUC)
	httpAdapter.RegisterRoutes(e, handler, tokens, middleware.NewLoginLimiter(1000, 1000))

	return &TestServer{
		Echo:    e,
		Store:   store,
		Clock:   clock,
		Tokens:  tokens,
		Auth:    authUC,
		Search:  searchUC,
		Booking: bookingUC,
		Payment: paymentUC,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Token  string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(t *testing.T, req Request) Response {
	t.Helper()

	var bodyReader *bytes.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(raw)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Decode unwraps the success envelope's data field into out.
func Decode(t *testing.T, resp Response, out interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", resp.Body)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// ErrorCode extracts the error code from a failure envelope.
func ErrorCode(t *testing.T, resp Response) string {
	t.Helper()

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body, &envelope))
	require.False(t, envelope.Success, "expected error envelope, got: %s", resp.Body)
	return envelope.Error.Code
}

// Login authenticates with the demo account and returns the session token.
func (ts *TestServer) Login(t *testing.T) string {
	t.Helper()

	resp := ts.Do(t, Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		Body:   map[string]string{"email": "demo@skybooker.com", "password": "demo123"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var auth struct {
		Token string `json:"token"`
	}
	Decode(t, resp, &auth)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}
