package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/docflow-app/docflow/internal/autodoc"
	"github.com/docflow-app/docflow/internal/config"
	"github.com/docflow-app/docflow/internal/documents"
	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/sessions"
	"github.com/docflow-app/docflow/internal/tester"
	"github.com/docflow-app/docflow/internal/tokens"
	"github.com/docflow-app/docflow/internal/users"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	usersSvc    *users.Service
	docsSvc     *documents.Service
	sessionsSvc *sessions.Service
	router      *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := tester.NewDB(t)
	cfg := &config.Config{
		Session: config.SessionConfig{
			Secret:     testSecret,
			CookieName: "docflow_session",
			TTL:        time.Hour,
		},
	}

	usersSvc := users.NewService(users.NewGormRepository(db))
	docsSvc := documents.NewService(
		documents.NewGormRepository(db),
		usersSvc,
		autodoc.NewWriter(db, nil),
	)
	sessionsSvc := sessions.NewService(sessions.NewMemoryRepository())

	return &testEnv{
		db:          db,
		cfg:         cfg,
		usersSvc:    usersSvc,
		docsSvc:     docsSvc,
		sessionsSvc: sessionsSvc,
		router:      NewRouter(cfg, usersSvc, docsSvc, sessionsSvc),
	}
}

// addUser creates an account with the given role and status, bypassing
// signup for roles and states signup cannot produce.
func (e *testEnv) addUser(t *testing.T, email, role, status string) *models.User {
	t.Helper()
	u := &models.User{
		Email:        email,
		Name:         strings.SplitN(email, "@", 2)[0],
		Organization: "acme",
		PasswordHash: "!",
		UserType:     role,
		UserStatus:   status,
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

// sessionCookie logs the user in at the session layer and returns the
// cookie the browser would carry.
func (e *testEnv) sessionCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()
	sid, err := e.sessionsSvc.CreateSession(context.Background(), userID, e.cfg.Session.TTL)
	require.NoError(t, err)
	raw, err := tokens.NewSessionToken(e.cfg.Session.Secret, sid, e.cfg.Session.TTL)
	require.NoError(t, err)
	return &http.Cookie{Name: e.cfg.Session.CookieName, Value: raw}
}

// get performs a GET and returns the recorder.
func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// postForm performs a form-encoded POST and returns the recorder.
func (e *testEnv) postForm(path string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func requireRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, w.Code, "body: %s", w.Body.String())
	require.Equal(t, location, w.Header().Get("Location"))
}
