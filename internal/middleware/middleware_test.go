package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/soccermanager/internal/testutil"
)

type MiddlewareSuite struct {
	suite.Suite
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func (s *MiddlewareSuite) TestRequestIDGeneratedWhenMissing() {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := s.serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	s.NotEmpty(seen)
	s.Equal(seen, rr.Header().Get(RequestIDHeader))
	_, err := uuid.Parse(seen)
	s.NoError(err)
}

func (s *MiddlewareSuite) TestRequestIDReusesValidHeader() {
	incoming := uuid.NewString()
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rr := s.serve(h, req)

	s.Equal(incoming, seen)
	s.Equal(incoming, rr.Header().Get(RequestIDHeader))
}

func (s *MiddlewareSuite) TestRequestIDReplacesMalformedHeader() {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not a uuid\nspoofed")
	s.serve(h, req)

	s.NotEqual("not a uuid\nspoofed", seen)
}

func (s *MiddlewareSuite) TestRecoveryWritesDefault500() {
	logger, logs := testutil.NewLogBuffer()
	h := Recovery(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := s.serve(h, httptest.NewRequest(http.MethodGet, "/players", nil))

	s.Equal(http.StatusInternalServerError, rr.Code)
	s.Require().Len(logs.Records(), 1)
	rec := logs.Records()[0]
	s.Equal("panic recovered", rec["msg"])
	s.Equal("boom", rec["panic"])
	s.Equal("/players", rec["path"])
}

func (s *MiddlewareSuite) TestRecoveryUsesCustomHandler() {
	h := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, _ *http.Request, _ any) {
		w.WriteHeader(http.StatusTeapot)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := s.serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	s.Equal(http.StatusTeapot, rr.Code)
}

func (s *MiddlewareSuite) TestLoggingRecordsStatusAndRequestID() {
	logger, logs := testutil.NewLogBuffer()
	h := RequestID()(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})))

	rr := s.serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/players", nil))

	s.Require().Len(logs.Records(), 1)
	rec := logs.Records()[0]
	s.Equal(float64(http.StatusCreated), rec["status"])
	s.Equal(rr.Header().Get(RequestIDHeader), rec["request_id"])
	s.Equal(http.MethodPost, rec["method"])
}

func (s *MiddlewareSuite) TestResponseWriterDefaultsTo200() {
	rw := &ResponseWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	_, _ = rw.Write([]byte("hello"))

	s.Equal(http.StatusOK, rw.Status())
}
