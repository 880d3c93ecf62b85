package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Amanpatel30/Fresh-Connect-sub000/internal/config"
)

func testRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		ListenAddr: ":0",
		AdminToken: "staff-token",
		Upstream: config.UpstreamConfig{
			BaseURL:        upstreamURL,
			MaxRetries:     0,
			BaseDelay:      time.Millisecond,
			AttemptTimeout: 2 * time.Second,
			FanoutLimit:    2,
		},
		Storage: config.StorageConfig{Driver: "local", LocalDir: t.TempDir()},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(cfg, logger, nil)
}

func fakeAPI() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/sellers":
			w.Write([]byte(`[{"_id":"s-1","name":"Ravi Kumar Farms","isVerified":false},{"_id":"s-2","name":"Coastal Greens","isVerified":true}]`))
		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/verify"):
			w.Write([]byte(`{"_id":"s-1","name":"Ravi Kumar Farms","isVerified":true}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func do(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	api := fakeAPI()
	defer api.Close()

	w := do(t, testRouter(t, api.URL), http.MethodGet, "/healthz", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestAdminAPIRequiresToken(t *testing.T) {
	api := fakeAPI()
	defer api.Close()
	r := testRouter(t, api.URL)

	if w := do(t, r, http.MethodGet, "/api/admin/sellers", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: want 401, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/admin/sellers", "wrong", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: want 401, got %d", w.Code)
	}
}

func TestListSellersServesLivePage(t *testing.T) {
	api := fakeAPI()
	defer api.Close()

	w := do(t, testRouter(t, api.URL), http.MethodGet, "/api/admin/sellers?sort=name&dir=asc", "staff-token", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	var page struct {
		Items      []map[string]any `json:"items"`
		TotalCount int              `json:"total_count"`
		Source     string           `json:"source"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.TotalCount != 2 || len(page.Items) != 2 {
		t.Fatalf("want 2 sellers, got %+v", page)
	}
	if page.Source != "live" {
		t.Fatalf("want live source, got %s", page.Source)
	}
	if page.Items[0]["name"] != "Coastal Greens" {
		t.Fatalf("name sort not applied: %v", page.Items[0])
	}
}

func TestActionEndpointApprovesSeller(t *testing.T) {
	api := fakeAPI()
	defer api.Close()
	r := testRouter(t, api.URL)

	// prime the collection
	if w := do(t, r, http.MethodGet, "/api/admin/sellers", "staff-token", ""); w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}

	w := do(t, r, http.MethodPost, "/api/admin/sellers/s-1/action", "staff-token",
		`{"action":"approve","note":"docs ok"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Record map[string]any `json:"record"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Record["status"] != "approved" {
		t.Fatalf("want approved, got %v", body.Record["status"])
	}
}

func TestActionEndpointRejectsBadPayload(t *testing.T) {
	api := fakeAPI()
	defer api.Close()
	r := testRouter(t, api.URL)

	w := do(t, r, http.MethodPost, "/api/admin/sellers/s-1/action", "staff-token", `{"note":"no action"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Fields["action"] == "" {
		t.Fatalf("want field error for action, got %v", body.Fields)
	}
}

func TestBulkEndpointReportsPerIDOutcomes(t *testing.T) {
	api := fakeAPI()
	defer api.Close()
	r := testRouter(t, api.URL)

	if w := do(t, r, http.MethodGet, "/api/admin/sellers", "staff-token", ""); w.Code != http.StatusOK {
		t.Fatalf("list: %d", w.Code)
	}

	// s-2 is already approved upstream, so approving it again is invalid
	w := do(t, r, http.MethodPost, "/api/admin/sellers/bulk", "staff-token",
		`{"ids":["s-1","s-2","ghost"],"action":"approve"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Results   map[string]string `json:"results"`
		Confirmed int               `json:"confirmed"`
		Failed    int               `json:"failed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Results["s-1"] != "confirmed" || body.Results["s-2"] != "invalid" || body.Results["ghost"] != "not_found" {
		t.Fatalf("unexpected outcome map: %v", body.Results)
	}
	if body.Confirmed != 1 || body.Failed != 2 {
		t.Fatalf("want 1 confirmed / 2 failed, got %d/%d", body.Confirmed, body.Failed)
	}
}
