package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minwoopark/board-api/handlers"
	"github.com/minwoopark/board-api/models"
	"github.com/minwoopark/board-api/repository"
	"github.com/minwoopark/board-api/service"
	"github.com/minwoopark/board-api/token"
)

// In-memory repositories so handler tests can exercise the full
// handler -> service -> store path without a database.

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]models.User)}
}

func (r *memUsers) FindByID(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUsers) FindByNickname(_ context.Context, nickname string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Nickname == nickname {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUsers) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUsers) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return repository.ErrDuplicateKey
	}
	for _, u := range r.users {
		if u.Nickname == user.Nickname {
			return repository.ErrDuplicateKey
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memUsers) Transact(_ context.Context, fn func(repository.UserRepository) error) error {
	return fn(r)
}

type memArticles struct {
	mu       sync.Mutex
	articles []models.Article
}

func (r *memArticles) Create(_ context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	article.ID = uint(len(r.articles) + 1)
	r.articles = append(r.articles, *article)
	return nil
}

type testApp struct {
	router   *gin.Engine
	issuer   *token.Issuer
	articles *memArticles
}

func newTestApp(t *testing.T, ttl time.Duration) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := token.NewIssuer("test-secret", "HS256", ttl)
	require.NoError(t, err)

	users := newMemUsers()
	articles := &memArticles{}

	authHandler := handlers.NewAuthHandler(service.NewAuthService(users, issuer))
	articleHandler := handlers.NewArticleHandler(service.NewArticleService(articles, 9))

	router := gin.New()
	api := router.Group("/api")
	api.POST("/sign_up", authHandler.SignUp)
	api.POST("/login", authHandler.Login)
	authed := api.Group("")
	authed.Use(handlers.AuthRequired(issuer))
	authed.POST("/articles", articleHandler.Create)

	return &testApp{router: router, issuer: issuer, articles: articles}
}

func (a *testApp) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestSignUpLoginArticleFlow(t *testing.T) {
	app := newTestApp(t, time.Hour)

	// Register.
	w, resp := app.do(t, http.MethodPost, "/api/sign_up",
		gin.H{"username": "alice", "password": "pw1", "nickname": "Al"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice", resp["user_id"])

	// Same username again.
	w, _ = app.do(t, http.MethodPost, "/api/sign_up",
		gin.H{"username": "alice", "password": "pw2", "nickname": "Al2"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same nickname, different username.
	w, _ = app.do(t, http.MethodPost, "/api/sign_up",
		gin.H{"username": "bob", "password": "pw2", "nickname": "Al"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Wrong password.
	w, _ = app.do(t, http.MethodPost, "/api/login",
		gin.H{"username": "alice", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown user.
	w, _ = app.do(t, http.MethodPost, "/api/login",
		gin.H{"username": "ghost", "password": "pw1"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Correct credentials.
	w, resp = app.do(t, http.MethodPost, "/api/login",
		gin.H{"username": "alice", "password": "pw1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", resp["user_id"])
	assert.Equal(t, "Al", resp["nickname"])
	accessToken, _ := resp["access_token"].(string)
	require.NotEmpty(t, accessToken)

	// Create an article with the issued token.
	w, resp = app.do(t, http.MethodPost, "/api/articles",
		gin.H{"title": "t", "content": "c"},
		map[string]string{"Authorization": "Bearer " + accessToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["article_id"])

	// Author identity must come from the token, not the client.
	require.Len(t, app.articles.articles, 1)
	assert.Equal(t, "alice", app.articles.articles[0].AuthorID)
	assert.Equal(t, "Al", app.articles.articles[0].AuthorNickname)
}

func TestSignUp_InvalidBody(t *testing.T) {
	app := newTestApp(t, time.Hour)

	w, _ := app.do(t, http.MethodPost, "/api/sign_up",
		gin.H{"username": "alice"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticles_RejectsBadTokens(t *testing.T) {
	app := newTestApp(t, time.Hour)

	// No header.
	w, _ := app.do(t, http.MethodPost, "/api/articles",
		gin.H{"title": "t", "content": "c"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Not a bearer header.
	w, _ = app.do(t, http.MethodPost, "/api/articles",
		gin.H{"title": "t", "content": "c"},
		map[string]string{"Authorization": "Basic abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w, _ = app.do(t, http.MethodPost, "/api/articles",
		gin.H{"title": "t", "content": "c"},
		map[string]string{"Authorization": "Bearer not.a.jwt"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with a different secret.
	foreign, err := token.NewIssuer("other-secret", "HS256", time.Hour)
	require.NoError(t, err)
	forged, err := foreign.Issue("alice", "Al")
	require.NoError(t, err)
	w, _ = app.do(t, http.MethodPost, "/api/articles",
		gin.H{"title": "t", "content": "c"},
		map[string]string{"Authorization": "Bearer " + forged})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestArticles_RejectsExpiredToken(t *testing.T) {
	app := newTestApp(t, time.Hour)

	expiredIssuer, err := token.NewIssuer("test-secret", "HS256", -1*time.Second)
	require.NoError(t, err)
	expired, err := expiredIssuer.Issue("alice", "Al")
	require.NoError(t, err)

	w, resp := app.do(t, http.MethodPost, "/api/articles",
		gin.H{"title": "t", "content": "c"},
		map[string]string{"Authorization": "Bearer " + expired})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token expired", resp["error"])
}
