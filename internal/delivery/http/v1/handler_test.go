package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/database/databasetest"
	"github.com/adanyl0v/go-task-manager/internal/repository"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

const (
	testIssuer     = "go-task-manager-test"
	testSigningKey = "0123456789abcdef0123456789abcdef"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	db := databasetest.New(t)
	users := repository.NewUserRepository(db)
	h := New(
		logger,
		services.NewAuthService(logger, users, testIssuer, []byte(testSigningKey), time.Hour),
		services.NewUserService(logger, users),
		services.NewTaskService(logger, repository.NewTaskRepository(db)),
	)

	router := gin.New()
	RegisterRoutes(router, h)
	return &testServer{router: router, db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	authHeader := ""
	if token != "" {
		authHeader = "Bearer " + token
	}
	return s.doWithAuthHeader(t, method, path, authHeader, body)
}

func (s *testServer) doWithAuthHeader(t *testing.T, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register signs a user up and in, returning the access token.
func (s *testServer) register(t *testing.T, username string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/auth/signin", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp signinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}
