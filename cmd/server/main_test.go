package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/icco/camfour/ai"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testRigKey = "rig-key"
	testSecret = "test-secret"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := getDB(sqlitePrefix + ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return db
}

func newTestServer(t *testing.T, engine ai.Engine) *server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testRigKey), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	mm, err := newMatchMetrics()
	if err != nil {
		t.Fatal(err)
	}

	h := newHub()
	return &server{
		cfg: Config{
			IsDev:      true,
			JWTSecret:  []byte(testSecret),
			RigKeyHash: hash,
			Revision:   "abc123",
		},
		db:    setupTestDB(t),
		table: newTable(engine, h, mm),
		hub:   h,
	}
}

func testToken(t *testing.T) string {
	t.Helper()
	token, _, err := generateJWT([]byte(testSecret), "test-rig", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	return token
}

// do sends a request through the full router.
func do(t *testing.T, s *server, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.routes().ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("could not decode %q: %v", rr.Body.String(), err)
	}
}

func TestHealthCheckHandler(t *testing.T) {
	s := newTestServer(t, &ai.StubEngine{})

	tests := map[string]int{
		"/healthz":    http.StatusOK,
		"/":           http.StatusOK,
		"/metrics":    http.StatusOK,
		"/match":      http.StatusOK,
		"/not-a-page": http.StatusNotFound,
	}

	for route, want := range tests {
		t.Run(route, func(t *testing.T) {
			rr := do(t, s, "GET", route, nil, "")
			if status := rr.Code; status != want {
				t.Errorf("handler returned wrong status code: got %v want %v", status, want)
			}
		})
	}

	var health HealthResponse
	decode(t, do(t, s, "GET", "/healthz", nil, ""), &health)
	if health.Healthy != "true" || health.Revision != "abc123" {
		t.Errorf("unexpected health response: %+v", health)
	}
}

func TestRootListsEndpoints(t *testing.T) {
	rr := httptest.NewRecorder()
	rootHandler(rr, httptest.NewRequest("GET", "/", http.NoBody))

	body := rr.Body.String()
	for _, want := range []string{"/match/move", "/auth/token", "/calibration/{name}"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %s", want)
		}
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}
