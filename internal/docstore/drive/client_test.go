package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRunner struct {
	calls int
	out   string
	err   error
}

func (r *stubRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	r.calls++
	return []byte(r.out), nil, r.err
}

func TestListFollowsPageTokens(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		queries = append(queries, r.URL.Query().Get("q"))
		switch r.URL.Query().Get("pageToken") {
		case "":
			json.NewEncoder(w).Encode(map[string]any{
				"files": []map[string]string{
					{"id": "doc-1", "name": "alice.pdf"},
					{"id": "doc-2", "name": "bob.pdf"},
				},
				"nextPageToken": "page-2",
			})
		case "page-2":
			json.NewEncoder(w).Encode(map[string]any{
				"files": []map[string]string{
					{"id": "doc-3", "name": "carol.pdf"},
				},
			})
		default:
			t.Errorf("unexpected page token %q", r.URL.Query().Get("pageToken"))
		}
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, AccessToken: "tok"}, &stubRunner{}, nil)
	docs, err := c.List(context.Background(), "folder-9")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	if docs[2].ID != "doc-3" || docs[2].Name != "carol.pdf" {
		t.Errorf("unexpected last doc: %+v", docs[2])
	}
	if docs[0].ViewURL != "https://drive.google.com/file/d/doc-1/view" {
		t.Errorf("view url = %s", docs[0].ViewURL)
	}
	for _, q := range queries {
		want := "'folder-9' in parents and mimeType = 'application/pdf' and trashed = false"
		if q != want {
			t.Errorf("query = %q, want %q", q, want)
		}
	}
}

func TestListSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, &stubRunner{}, nil)
	if _, err := c.List(context.Background(), "folder"); err == nil {
		t.Fatal("expected error for non-2xx listing")
	}
}

func TestFetchTextConvertsDownloadedMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/doc-1" || r.URL.Query().Get("alt") != "media" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization = %q", got)
		}
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	runner := &stubRunner{out: "Jane Doe\nGPA 3.9\n"}
	c := NewClient(Config{BaseURL: srv.URL, AccessToken: "tok"}, runner, nil)
	text, err := c.FetchText(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if text != "Jane Doe\nGPA 3.9" {
		t.Errorf("text = %q", text)
	}
	if runner.calls != 1 {
		t.Errorf("runner calls = %d, want 1", runner.calls)
	}
}
