package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	httpapi "todo_api/internal/http"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	applyMigrations(t, db)
	if _, err := db.Exec(context.Background(), `TRUNCATE todos, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return db
}

func newAPIRouter(t *testing.T, db *pgxpool.Pool) *gin.Engine {
	t.Helper()
	t.Setenv("SECRET_KEY", "integration-test-secret")
	service.InitJWT()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, "test")
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email, password string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}
}

func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("token_type = %q; want bearer", resp.TokenType)
	}
	return resp.AccessToken
}

func decodeTodo(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode todo: %v (body %s)", err, w.Body.String())
	}
	return m
}
