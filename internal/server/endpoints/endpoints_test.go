package endpoints

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jackzampolin/pagina/internal/api"
	"github.com/jackzampolin/pagina/internal/pagination"
	"github.com/jackzampolin/pagina/internal/session"
	"github.com/jackzampolin/pagina/internal/svcctx"
)

// newTestServer serves All() with services attached to every request.
// A nil store leaves the session endpoints uninitialized.
func newTestServer(t *testing.T, store *session.Store) *httptest.Server {
	t.Helper()

	registry := api.NewRegistry()
	for _, ep := range All() {
		registry.Register(ep)
	}
	mux := http.NewServeMux()
	registry.RegisterRoutes(mux, func(h http.HandlerFunc) http.HandlerFunc { return h })

	services := &svcctx.Services{Sessions: store}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r.WithContext(svcctx.WithServices(r.Context(), services)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestHealthAndStatus(t *testing.T) {
	srv := newTestServer(t, session.NewStore(session.Config{MaxLabels: 42}))

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	var health HealthResponse
	decode(t, resp, &health)
	if health.Status != "ok" {
		t.Errorf("health.Status = %q, want ok", health.Status)
	}

	resp, err = http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	var status StatusResponse
	decode(t, resp, &status)
	if status.Sessions.Health != "healthy" || status.Sessions.MaxLabels != 42 {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.Config != "defaults" {
		t.Errorf("status.Config = %q, want defaults", status.Config)
	}
}

func TestReady_NotInitialized(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("ready failed: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
	var health HealthResponse
	decode(t, resp, &health)
	if health.Sessions != "not_initialized" {
		t.Errorf("health.Sessions = %q", health.Sessions)
	}
}

func TestLabelsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLabels []string
	}{
		{"roman", `{"pattern":"i","count":4}`, http.StatusOK, []string{"i", "ii", "iii", "iv"}},
		{"recto verso", `{"pattern":"1° ¡r¿v½","count":4}`, http.StatusOK, []string{"1 r", "1 v", "2 r", "2 v"}},
		{"default pattern", `{"count":3}`, http.StatusOK, []string{"1", "2", "3"}},
		{"zero count", `{"pattern":"1","count":0}`, http.StatusOK, []string{}},
		{"negative count", `{"pattern":"1","count":-2}`, http.StatusBadRequest, nil},
		{"over limit", `{"pattern":"1","count":10001}`, http.StatusBadRequest, nil},
		{"unknown field", `{"pattern":"1","size":2}`, http.StatusBadRequest, nil},
		{"malformed", `{"pattern":`, http.StatusBadRequest, nil},
		{"syntax error", `{"pattern":"1 ¡r","count":1}`, http.StatusUnprocessableEntity, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/labels", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				resp.Body.Close()
				return
			}
			var got LabelsResponse
			decode(t, resp, &got)
			if diff := cmp.Diff(tt.wantLabels, got.Labels); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabelsEndpoint_Pages(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/labels", `{"pattern":"i","pages":["cover.png","p1.png","p2.png"],"from":1}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got LabelsResponse
	decode(t, resp, &got)

	if diff := cmp.Diff([]string{"i", "ii"}, got.Labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if len(got.Pages) != 3 || got.Pages[0].Label != "" || got.Pages[2].Label != "ii" {
		t.Errorf("unexpected pages: %+v", got.Pages)
	}

	resp = postJSON(t, srv.URL+"/api/labels", `{"pattern":"i","pages":["a.png"],"from":3}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("out of range from: status = %d, want 400", resp.StatusCode)
	}
}

func TestCheckPatternEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	t.Run("valid", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/patterns/check", `{"pattern":"fol. 1¡r¿v"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var got CheckPatternResponse
		decode(t, resp, &got)
		if got.Pattern != "fol. 1¡r¿v" || len(got.Columns) != 2 {
			t.Errorf("unexpected response: %+v", got)
		}
	})

	t.Run("syntax error carries offset", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/patterns/check", `{"pattern":"1 2`+"`"+`"}`)
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", resp.StatusCode)
		}
		var got ErrorResponse
		decode(t, resp, &got)
		if got.Offset == nil || *got.Offset != 3 {
			t.Errorf("offset = %v, want 3", got.Offset)
		}
		if got.Error == "" {
			t.Error("expected error message")
		}
	})

	t.Run("missing pattern", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/patterns/check", `{}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestSessionEndpoints(t *testing.T) {
	srv := newTestServer(t, session.NewStore(session.Config{MaxLabels: 100}))

	resp := postJSON(t, srv.URL+"/api/sessions", `{"pattern":"ii"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var info session.Info
	decode(t, resp, &info)
	if info.ID == "" || info.Pattern != "ii" {
		t.Fatalf("unexpected session: %+v", info)
	}

	var all []string
	for i := 0; i < 2; i++ {
		resp = postJSON(t, srv.URL+"/api/sessions/"+info.ID+"/next", `{"count":2}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("next status = %d, want 200", resp.StatusCode)
		}
		var next NextLabelsResponse
		decode(t, resp, &next)
		all = append(all, next.Labels...)
		if next.Issued != (i+1)*2 {
			t.Errorf("Issued = %d, want %d", next.Issued, (i+1)*2)
		}
	}
	if diff := cmp.Diff([]string{"ii", "iii", "iv", "v"}, all); diff != "" {
		t.Errorf("session labels mismatch (-want +got):\n%s", diff)
	}

	resp, err := http.Get(srv.URL + "/api/sessions")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var list ListSessionsResponse
	decode(t, resp, &list)
	if len(list.Sessions) != 1 || list.Sessions[0].ID != info.ID {
		t.Errorf("unexpected list: %+v", list)
	}

	resp = postJSON(t, srv.URL+"/api/sessions/"+info.ID+"/next", `{"count":101}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("over limit status = %d, want 400", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/sessions/"+info.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/sessions/" + info.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestSessionEndpoints_InvalidPattern(t *testing.T) {
	srv := newTestServer(t, session.NewStore(session.Config{}))

	resp := postJSON(t, srv.URL+"/api/sessions", `{"pattern":"¡r¿v¿x"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestSessionEndpoints_NotInitialized(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/sessions", `{"pattern":"1"}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/settings")
	if err != nil {
		t.Fatalf("list settings failed: %v", err)
	}
	var list SettingsResponse
	decode(t, resp, &list)
	if len(list.Settings) == 0 {
		t.Fatal("expected settings")
	}

	resp, err = http.Get(srv.URL + "/api/settings/pagination.max_labels")
	if err != nil {
		t.Fatalf("get setting failed: %v", err)
	}
	var one SettingResponse
	decode(t, resp, &one)
	if one.Entry == nil || one.Entry.Key != "pagination.max_labels" {
		t.Errorf("unexpected entry: %+v", one)
	}

	resp, err = http.Get(srv.URL + "/api/settings/no.such.key")
	if err != nil {
		t.Fatalf("get setting failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown key status = %d, want 404", resp.StatusCode)
	}
}

func TestLabelsResponse_Text(t *testing.T) {
	r := LabelsResponse{Labels: []string{"i", "ii"}}
	if r.Text() != "i\nii" {
		t.Errorf("Text() = %q", r.Text())
	}

	r.Pages = []pagination.PageLabel{{Order: 1, Page: "a.png", Label: "i"}}
	if r.Text() != "a.png\ti" {
		t.Errorf("Text() with pages = %q", r.Text())
	}
}

func TestCheckPatternResponse_Text(t *testing.T) {
	r := CheckPatternResponse{
		Pattern: "1",
		Columns: [][]pagination.FieldInfo{{{Kind: "counter", System: "arabic", Start: "1", Step: "implicit"}}},
	}
	want := "pattern: 1\ncolumn 1:\n  counter arabic start=1 step=implicit"
	if r.Text() != want {
		t.Errorf("Text() = %q, want %q", r.Text(), want)
	}
}

func TestSwaggerEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/swagger.json")
	if err != nil {
		t.Fatalf("swagger failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var spec struct {
		Swagger string         `json:"swagger"`
		Paths   map[string]any `json:"paths"`
	}
	decode(t, resp, &spec)
	if spec.Swagger != "2.0" {
		t.Errorf("swagger = %q, want 2.0", spec.Swagger)
	}
	for _, ep := range All() {
		_, path, _ := ep.Route()
		if path == "/swagger.json" || path == "/swagger" || path == "/api/settings/{key...}" {
			continue
		}
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("spec is missing path %s", path)
		}
	}
}

func TestGenerateLabels_FromCheckedBeforeLimit(t *testing.T) {
	tests := []struct {
		name string
		from int
	}{
		{"negative", -1},
		{"past end", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := LabelsRequest{Pattern: "1", Pages: []string{"a", "b", "c"}, From: tt.from}
			_, err := GenerateLabels(req, 2)
			if !errors.Is(err, pagination.ErrPageOutOfRange) {
				t.Errorf("GenerateLabels error = %v, want ErrPageOutOfRange", err)
			}
		})
	}

	_, err := GenerateLabels(LabelsRequest{Pattern: "1", Pages: []string{"a", "b", "c"}}, 2)
	if !errors.Is(err, session.ErrLimit) {
		t.Errorf("GenerateLabels error = %v, want ErrLimit", err)
	}
}
