package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datarequests/internal/domain/identity"
	"datarequests/internal/infrastructure/auth"
	"datarequests/internal/infrastructure/config"
	"datarequests/internal/infrastructure/database"
	"datarequests/internal/infrastructure/migration"
	"datarequests/internal/infrastructure/repository"
	sharedConfig "datarequests/internal/shared/config"
	"datarequests/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine *gin.Engine
	tokens map[string]string
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type    string              `json:"type"`
		Message string              `json:"message"`
		Fields  map[string][]string `json:"fields"`
	} `json:"error"`
}

func testConfig() *config.Config {
	return &config.Config{
		Database: *database.MemoryConfig(),
		Auth: sharedConfig.AuthConfig{
			JWT: sharedConfig.JWTConfig{Secret: "test-secret", Issuer: "datarequests", AccessExpMinutes: 5},
		},
	}
}

// newTestServer starts a container on in-memory sqlite with three users:
// alice and bob are regular users, root is a sysadmin.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	cfg := testConfig()

	gdb, err := database.Open(&cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := gdb.DB()
		_ = sqlDB.Close()
	})
	require.NoError(t, migration.NewManager(gdb, migration.NewGormAutoMigrateStrategy()).EnsureSchema(ctx))

	users := repository.NewUserRepository(gdb)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())
	tokens := map[string]string{}
	for _, u := range []struct {
		name     string
		sysadmin bool
	}{{"alice", false}, {"bob", false}, {"root", true}} {
		user, err := identity.NewUser(u.name, u.name, u.sysadmin)
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, user))

		token, err := jwtSvc.Generate(user.ID())
		require.NoError(t, err)
		tokens[u.name] = token.AccessToken
	}

	c, err := NewContainer(ctx, gdb, cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(c.Shutdown)

	return &testServer{engine: c.Engine(), tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, as string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[as])
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestRouter_Lifecycle(t *testing.T) {
	s := newTestServer(t)

	// alice opens a request
	w, env := s.do(t, http.MethodPost, "/api/action/datarequest_create", "alice", map[string]string{
		"title":       "A",
		"description": "B",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID        string  `json:"id"`
		Status    string  `json:"status"`
		UserName  *string `json:"user_name"`
		CreatedAt *string `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "open", created.Status)
	require.NotNil(t, created.UserName)
	assert.Equal(t, "alice", *created.UserName)
	require.NotNil(t, created.CreatedAt)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z$`, *created.CreatedAt)

	// bob comments
	w, _ = s.do(t, http.MethodPost, "/api/action/datarequest_comment_create", "bob", map[string]string{
		"data_request_id": created.ID,
		"content":         "hi",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// bob cannot close it
	w, env = s.do(t, http.MethodPost, "/api/action/datarequest_status_update", "bob", map[string]string{
		"id":     created.ID,
		"status": "closed",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "forbidden", env.Error.Type)

	// root can
	w, env = s.do(t, http.MethodPost, "/api/action/datarequest_status_update", "root", map[string]string{
		"id":     created.ID,
		"status": "closed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":"`+created.ID+`","status":"closed"}`, string(env.Data))

	// anyone can look
	w, env = s.do(t, http.MethodGet, "/api/action/datarequest_show?id="+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var shown struct {
		Status       string `json:"status"`
		CommentCount int64  `json:"comment_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &shown))
	assert.Equal(t, "closed", shown.Status)
	assert.Equal(t, int64(1), shown.CommentCount)

	// REST list with comments
	w, env = s.do(t, http.MethodGet, "/datarequests?status=closed", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var listed []struct {
		ID       string `json:"id"`
		Comments []struct {
			Content  string  `json:"content"`
			UserName *string `json:"user_name"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Comments, 1)
	assert.Equal(t, "hi", listed[0].Comments[0].Content)
	require.NotNil(t, listed[0].Comments[0].UserName)
	assert.Equal(t, "bob", *listed[0].Comments[0].UserName)

	// nothing is open any more
	w, env = s.do(t, http.MethodGet, "/datarequests?status=open", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestRouter_ErrorKinds(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		as       string
		body     interface{}
		wantCode int
		wantType string
	}{
		{
			name: "anonymous create", method: http.MethodPost, path: "/api/action/datarequest_create",
			body: map[string]string{"title": "A", "description": "B"}, wantCode: http.StatusForbidden, wantType: "forbidden",
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/api/action/datarequest_create", as: "alice",
			body: map[string]string{}, wantCode: http.StatusBadRequest, wantType: "validation_error",
		},
		{
			name: "unknown request", method: http.MethodGet, path: "/api/action/datarequest_show?id=nope",
			wantCode: http.StatusNotFound, wantType: "not_found",
		},
		{
			name: "comment on unknown request", method: http.MethodPost, path: "/api/action/datarequest_comment_create", as: "bob",
			body: map[string]string{"data_request_id": "nope", "content": "hi"}, wantCode: http.StatusNotFound, wantType: "not_found",
		},
		{
			name: "bad status value", method: http.MethodPost, path: "/api/action/datarequest_status_update", as: "root",
			body: map[string]string{"id": "nope", "status": "pending"}, wantCode: http.StatusBadRequest, wantType: "validation_error",
		},
		{
			name: "unknown action", method: http.MethodPost, path: "/api/action/package_create", as: "alice",
			body: map[string]string{}, wantCode: http.StatusNotFound, wantType: "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(t, tt.method, tt.path, tt.as, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantType, env.Error.Type)
		})
	}
}

func TestRouter_InvalidTokenIsAnonymous(t *testing.T) {
	s := newTestServer(t)
	s.tokens["mallory"] = "not-a-jwt"

	w, env := s.do(t, http.MethodPost, "/datarequests", "mallory", map[string]string{"title": "A", "description": "B"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "forbidden", env.Error.Type)
}

func TestRouter_RESTShowAndComments(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/datarequests", "alice", map[string]string{"title": "Roads", "description": "All *roads*"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	for _, content := range []string{"first", "second"} {
		w, _ = s.do(t, http.MethodPost, "/datarequests/"+created.ID+"/comments", "bob", map[string]string{"content": content})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w, env = s.do(t, http.MethodGet, "/datarequests/"+created.ID+"?render=html", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page struct {
		DataRequest struct {
			CommentCount    int64  `json:"comment_count"`
			DescriptionHTML string `json:"description_html"`
		} `json:"data_request"`
		Comments []struct {
			Content string `json:"content"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(2), page.DataRequest.CommentCount)
	assert.Contains(t, page.DataRequest.DescriptionHTML, "<em>roads</em>")
	require.Len(t, page.Comments, 2)
	assert.Equal(t, "first", page.Comments[0].Content)
	assert.Equal(t, "second", page.Comments[1].Content)

	w, env = s.do(t, http.MethodGet, "/datarequests/"+created.ID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	assert.Len(t, comments, 2)

	w, _ = s.do(t, http.MethodPost, "/datarequests/"+created.ID+"/status", "root", map[string]string{"status": "closed"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, _ = s.do(t, http.MethodGet, "/api/action/datarequest_list", "", nil)

	w, _ = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="datarequest_list"`)
}
