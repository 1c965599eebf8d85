package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"GreekStem/internal/analysis"
	"GreekStem/internal/stemmer"
	"GreekStem/internal/testutil"
)

func newTestServer(t *testing.T, opts analysis.GreekOptions, maxWords int) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(analysis.NewRegistryWithOptions(opts), maxWords, logger)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	mux := http.NewServeMux()
	NewHandler(svc, logger).RegisterRoutes(mux)
	srv := httptest.NewServer(WithRequestLogging(mux, logger))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHandleStem(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	resp := postJSON(t, srv.URL+"/stem", `{"words":["ΡΟΛΟΓΙΑ","αγριος","γράμματα","από","αβ"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Stems []StemResult `json:"stems"`
	}
	decodeBody(t, resp, &body)

	want := []StemResult{
		{"ΡΟΛΟΓΙΑ", "ρολοι"},
		{"αγριος", "αγρι"},
		{"γράμματα", "γραμμα"},
		{"από", "απο"},
		{"αβ", "αβ"},
	}
	if len(body.Stems) != len(want) {
		t.Fatalf("got %d stems, want %d", len(body.Stems), len(want))
	}
	for i := range want {
		if body.Stems[i] != want[i] {
			t.Errorf("stems[%d] = %+v, want %+v", i, body.Stems[i], want[i])
		}
	}
}

func TestHandleStem_SampleStems(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	samples := testutil.SampleStems()
	words := make([]string, len(samples))
	for i, c := range samples {
		words[i] = c.Word
	}
	payload, _ := json.Marshal(map[string]interface{}{"words": words, "raw": true})

	resp := postJSON(t, srv.URL+"/stem", string(payload))
	var body struct {
		Stems []StemResult `json:"stems"`
	}
	decodeBody(t, resp, &body)

	for i, c := range samples {
		if body.Stems[i].Stem != c.Stem {
			t.Errorf("stem(%q) = %q, want %q", c.Word, body.Stems[i].Stem, c.Stem)
		}
	}
}

func TestHandleStem_Raw(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	// Raw input skips folding, so the accented alpha matches no suffix.
	resp := postJSON(t, srv.URL+"/stem", `{"words":["ρολογιά"],"raw":true}`)
	var body struct {
		Stems []StemResult `json:"stems"`
	}
	decodeBody(t, resp, &body)
	if got := body.Stems[0].Stem; got != "ρολογιά" {
		t.Errorf("raw stem = %q, want ρολογιά", got)
	}
}

func TestHandleStem_Errors(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 2)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"words":`, http.StatusBadRequest},
		{"unknown field", `{"word":["x"]}`, http.StatusBadRequest},
		{"empty", `{"words":[]}`, http.StatusBadRequest},
		{"too many", `{"words":["α","β","γ"]}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/stem", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			decodeBody(t, resp, &body)
			if body.Error.Message == "" {
				t.Error("error message missing")
			}
		})
	}
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{Protected: stemmer.NewStopwords("διχτυα")}, 100)

	resp := postJSON(t, srv.URL+"/analyze", `{"analyzer":"greek","text":"Τα ρολόγια και τα δίχτυα"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Analyzer string          `json:"analyzer"`
		Tokens   []tokenResponse `json:"tokens"`
	}
	decodeBody(t, resp, &body)

	if body.Analyzer != "greek" {
		t.Errorf("analyzer = %q, want greek", body.Analyzer)
	}
	want := []string{"τα", "ρολοι", "και", "τα", "διχτυα"}
	if len(body.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(body.Tokens), len(want))
	}
	for i, w := range want {
		if body.Tokens[i].Term != w {
			t.Errorf("tokens[%d] = %q, want %q", i, body.Tokens[i].Term, w)
		}
		if body.Tokens[i].Position != i {
			t.Errorf("tokens[%d].position = %d", i, body.Tokens[i].Position)
		}
	}
	if !body.Tokens[4].Keyword {
		t.Error("protected token not keyword-marked")
	}
}

func TestHandleAnalyze_DefaultsToGreek(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	resp := postJSON(t, srv.URL+"/analyze", `{"text":"ΑΓΡΙΟΣ"}`)
	var body struct {
		Analyzer string          `json:"analyzer"`
		Tokens   []tokenResponse `json:"tokens"`
	}
	decodeBody(t, resp, &body)
	if body.Analyzer != analysis.AnalyzerGreek {
		t.Errorf("analyzer = %q, want greek", body.Analyzer)
	}
	if len(body.Tokens) != 1 || body.Tokens[0].Term != "αγρι" {
		t.Errorf("tokens = %+v, want [αγρι]", body.Tokens)
	}
}

func TestHandleAnalyze_UnknownAnalyzer(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	resp := postJSON(t, srv.URL+"/analyze", `{"analyzer":"klingon","text":"x"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHandleListAnalyzers(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	resp, err := http.Get(srv.URL + "/analyzers")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Analyzers []string `json:"analyzers"`
	}
	decodeBody(t, resp, &body)
	want := []string{"greek", "keyword", "standard"}
	if strings.Join(body.Analyzers, ",") != strings.Join(want, ",") {
		t.Errorf("analyzers = %v, want %v", body.Analyzers, want)
	}
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t, analysis.GreekOptions{}, 100)

	resp, err := http.Get(srv.URL + "/analyzers")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if id := resp.Header.Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("generated request id = %q, want a UUID", id)
	}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/stem", bytes.NewBufferString(`{"words":["αγριοσ"]}`))
	req.Header.Set(RequestIDHeader, "client-id-1")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if id := resp.Header.Get(RequestIDHeader); id != "client-id-1" {
		t.Errorf("request id = %q, want client-id-1", id)
	}
}

func TestNewService_MissingFilters(t *testing.T) {
	// A registry always carries the built-in filters; an empty zero value
	// does not.
	if _, err := NewService(&analysis.Registry{}, 10, nil); err == nil {
		t.Error("expected error for registry without filters")
	}
}

func TestHandlers_BodyTooLarge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(analysis.NewRegistry(), 100, logger)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	NewHandler(svc, logger).RegisterRoutes(mux)

	huge := `{"text":"` + strings.Repeat("α", maxBodyBytes) + `"}`
	for _, path := range []string{"/analyze", "/stem"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(huge)))
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("POST %s with oversized body: status = %d, want 413", path, rec.Code)
		}
	}

	// A body under the limit that is merely malformed stays a 400.
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text":`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", rec.Code)
	}
}
