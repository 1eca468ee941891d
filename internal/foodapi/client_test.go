package foodapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/api" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

type recordedRequest struct {
	Method    string
	Path      string
	Query     string
	Body      string
	Agent     string
	RequestID string
	Type      string
}

func newRecordingServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.Query().Get("name"),
			Body:      string(body),
			Agent:     r.Header.Get("User-Agent"),
			RequestID: r.Header.Get(requestIDHeader),
			Type:      r.Header.Get("Content-Type"),
		})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), reqs...)
	}
}

func TestClient_CallsEndpoints(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/Food" && r.URL.Query().Get("name") == "":
			_, _ = w.Write([]byte(`[{"id":"1","name":"Pizza","rating":"4.5","open":true},{"id":"2","name":"Burger","rating":3}]`))
		case r.Method == http.MethodGet && r.URL.Path == "/Food":
			_, _ = w.Write([]byte(`[{"id":"2","name":"Burger","rating":3}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/Food":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"9","createdAt":"2025-01-01","name":"Taco","rating":4}`))
		case r.Method == http.MethodPut && r.URL.Path == "/Food/9":
			_, _ = w.Write([]byte(`{"id":"9","name":"Taco Supreme","rating":"5"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/Food/9":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	foods, err := c.ListFoods(ctx)
	if err != nil {
		t.Fatalf("ListFoods returned error: %v", err)
	}
	if len(foods) != 2 || foods[0].Rating != 4.5 || foods[1].Rating != 3 {
		t.Fatalf("ListFoods = %#v, want two items with coerced ratings", foods)
	}

	found, err := c.SearchFoods(ctx, "bur ger&x")
	if err != nil {
		t.Fatalf("SearchFoods returned error: %v", err)
	}
	if len(found) != 1 || found[0].ID != "2" {
		t.Fatalf("SearchFoods = %#v, want item 2", found)
	}

	input := FoodInput{Name: "Taco", Avatar: "https://x/t.png", Rating: 4, Open: true, Logo: "https://x/l.png", RestaurantName: "Casa"}
	created, err := c.CreateFood(ctx, input)
	if err != nil {
		t.Fatalf("CreateFood returned error: %v", err)
	}
	if created.ID != "9" || created.CreatedAt != "2025-01-01" {
		t.Fatalf("CreateFood = %#v, want id 9", created)
	}

	updated, err := c.UpdateFood(ctx, "9", input)
	if err != nil {
		t.Fatalf("UpdateFood returned error: %v", err)
	}
	if updated.Name != "Taco Supreme" || updated.Rating != 5 {
		t.Fatalf("UpdateFood = %#v, want renamed item rated 5", updated)
	}

	if err := c.DeleteFood(ctx, "9"); err != nil {
		t.Fatalf("DeleteFood returned error: %v", err)
	}

	reqs := requests()
	if len(reqs) != 5 {
		t.Fatalf("server saw %d requests, want 5", len(reqs))
	}
	if reqs[1].Query != "bur ger&x" {
		t.Fatalf("search query = %q, want it decoded intact", reqs[1].Query)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(reqs[2].Body), &body); err != nil {
		t.Fatalf("create body not JSON: %v", err)
	}
	for _, key := range []string{"name", "avatar", "rating", "open", "logo", "restaurantName"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("create body %v missing %q", body, key)
		}
	}
	if body["open"] != true || reqs[2].Type != "application/json" {
		t.Fatalf("create body/type = %v %q, want open=true JSON", body, reqs[2].Type)
	}
	if reqs[3].Method != http.MethodPut || reqs[4].Method != http.MethodDelete {
		t.Fatalf("methods = %s %s, want PUT DELETE", reqs[3].Method, reqs[4].Method)
	}

	seen := map[string]bool{}
	for _, r := range reqs {
		if !strings.HasPrefix(r.Agent, "foodwagen/") {
			t.Fatalf("User-Agent = %q, want foodwagen/*", r.Agent)
		}
		if r.RequestID == "" || seen[r.RequestID] {
			t.Fatalf("request id %q missing or reused", r.RequestID)
		}
		seen[r.RequestID] = true
	}
}

func TestClient_BasePathIsPreserved(t *testing.T) {
	t.Parallel()

	server, requests := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	c, err := NewClient(server.URL + "/api/v1/")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.ListFoods(context.Background()); err != nil {
		t.Fatalf("ListFoods returned error: %v", err)
	}
	if got := requests()[0].Path; got != "/api/v1/Food" {
		t.Fatalf("path = %q, want /api/v1/Food", got)
	}
}

func TestClient_FailuresAreFetchErrors(t *testing.T) {
	t.Parallel()

	server, _ := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case http.MethodDelete:
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.Error(w, "missing", http.StatusNotFound)
		}
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListFoods(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Op != OpList || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListFoods error = %v, want list decode FetchError", err)
	}

	err = c.DeleteFood(context.Background(), "1")
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusInternalServerError {
		t.Fatalf("DeleteFood error = %v, want status 500 FetchError", err)
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("DeleteFood error = %q, want it to mention the status", err.Error())
	}

	_, err = c.UpdateFood(context.Background(), "1", FoodInput{})
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusNotFound || fe.Op != OpUpdate {
		t.Fatalf("UpdateFood error = %v, want 404 FetchError", err)
	}
}

func TestClient_NetworkErrorIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	c, err := NewClient(base)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.SearchFoods(context.Background(), "pizza")
	if !IsFetchError(err) {
		t.Fatalf("SearchFoods error = %v, want FetchError", err)
	}
}

func TestClient_ItemCallsRequireID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.DeleteFood(context.Background(), "  "); !IsFetchError(err) {
		t.Fatalf("DeleteFood error = %v, want FetchError", err)
	}
	if _, err := c.UpdateFood(context.Background(), "", FoodInput{}); !IsFetchError(err) {
		t.Fatalf("UpdateFood error = %v, want FetchError", err)
	}
}
