package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/records-api/internal/auth"
	"github.com/heartmarshall/records-api/internal/config"
	"github.com/heartmarshall/records-api/internal/transport/middleware"
)

const (
	testSecret   = "rest-test-secret-that-is-at-least-32-chars"
	testIssuer   = "records-test"
	testMaxBytes = 1024
)

var testJWT = auth.NewJWTManager(testSecret, testIssuer)

type testServer struct {
	handler http.Handler
	apps    *oauthAppServiceMock
	data    *userDataServiceMock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	apps := &oauthAppServiceMock{}
	data := &userDataServiceMock{}

	h := NewRouter(logger, Handlers{
		Health:   NewHealthHandler("test"),
		Apps:     NewOAuthAppHandler(apps, logger, testMaxBytes),
		UserData: NewUserDataHandler(data, logger, testMaxBytes),
	}, Stack{
		CORS: middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		}),
		Auth: middleware.Auth(testJWT),
	})

	return &testServer{handler: h, apps: apps, data: data}
}

func bearer(t *testing.T, id uuid.UUID, role string) string {
	t.Helper()
	token, err := testJWT.GenerateAccessToken(id, role, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func (s *testServer) do(t *testing.T, method, target, authz, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
