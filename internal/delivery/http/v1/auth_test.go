package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

func TestHandleSignup(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully!", decode[messageResponse](t, w).Message)

	var user models.User
	require.NoError(t, s.db.Where("username = ?", "alice").Take(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestHandleSignup_Conflict(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice")

	w := s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": "alice",
		"email":    "new@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username is already taken", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": "bob",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email is already in use", errorMessage(t, w))
}

func TestHandleSignup_Invalid(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body any
		want string
	}{
		{
			name: "short username",
			body: gin.H{"username": "al", "email": "al@example.com", "password": "secret123"},
			want: "username must be at least 3 characters long",
		},
		{
			name: "bad email",
			body: gin.H{"username": "alice", "email": "not-an-email", "password": "secret123"},
			want: "email must be a valid email address",
		},
		{
			name: "short password",
			body: gin.H{"username": "alice", "email": "alice@example.com", "password": "123"},
			want: "password must be at least 6 characters long",
		},
		{
			name: "malformed json",
			body: `{"username":`,
			want: "invalid request body",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/auth/signup", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, errorMessage(t, w))
		})
	}
}

func TestHandleSignin(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice")

	w := s.do(t, http.MethodPost, "/api/auth/signin", "", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[signinResponse](t, w)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt.Time(), time.Minute)

	raw := decode[map[string]any](t, w)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`, raw["expiresAt"])
}

func TestHandleSignin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice")

	for _, body := range []gin.H{
		{"username": "alice", "password": "wrong-password"},
		{"username": "nobody", "password": "secret123"},
	} {
		w := s.do(t, http.MethodPost, "/api/auth/signin", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid username or password", errorMessage(t, w))
	}
}

func TestHandleAuthMiddleware(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice")

	t.Run("missing header", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/tasks", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/tasks", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := s.doWithAuthHeader(t, http.MethodGet, "/api/tasks", "Basic "+token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/tasks", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		require.NoError(t, s.db.Where("username = ?", "alice").Delete(&models.User{}).Error)
		w := s.do(t, http.MethodGet, "/api/tasks", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
