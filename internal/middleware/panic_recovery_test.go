package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "debt-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoversFromPanic() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/totals", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "panic-trace")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("index out of range")
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(apierrors.SystemInternalError), response.Error.Code)
	s.Equal("panic-trace", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "index out of range")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_PanicWithError() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrBodyNotAllowed)
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})
	s.Equal(http.StatusInternalServerError, c.Response().Status)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_AbortHandlerIsRepanicked() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})

	s.PanicsWithValue(http.ErrAbortHandler, func() {
		_ = handler(c)
	})
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponseUntouched() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("late failure")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoPanicPassesThrough() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("fine", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_ErrorReturnedUnchanged() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	want := echo.NewHTTPError(http.StatusBadRequest)

	handler := PanicRecovery()(func(c echo.Context) error {
		return want
	})

	s.Equal(want, handler(c))
}
