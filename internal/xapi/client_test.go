package xapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fakeVendor is a minimal stand-in for the v2 blocking endpoints.
func fakeVendor(t *testing.T, blocked []UserObject, nextToken string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Unauthorized","detail":"bad token"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "777", "username": "moderator"}})
	})
	mux.HandleFunc("/2/users/777/blocking", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["target_user_id"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"title":"Invalid Request","detail":"target_user_id is required"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"blocking": true}})
		case http.MethodGet:
			out := map[string]any{
				"data": blocked,
				"meta": map[string]any{"result_count": len(blocked)},
			}
			if nextToken != "" {
				out["meta"].(map[string]any)["next_token"] = nextToken
			}
			if r.URL.Query().Get("expansions") != "" {
				out["includes"] = map[string]any{"tweets": []map[string]string{{"id": "t1", "text": "pinned"}}}
			}
			_ = json.NewEncoder(w).Encode(out)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/2/users/777/blocking/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"blocking": false}})
	})
	return httptest.NewServer(mux)
}

func TestClient_BlockUser(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	c := New(srv.URL, "test-token", WithHTTPClient(srv.Client()))
	ok, err := c.BlockUser(context.Background(), "12345")
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	if !ok {
		t.Fatalf("want blocking=true")
	}
}

func TestClient_UnblockUser(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	c := New(srv.URL, "test-token", WithHTTPClient(srv.Client()))
	ok, err := c.UnblockUser(context.Background(), "12345")
	if err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if !ok {
		t.Fatalf("want blocking removed")
	}
}

func TestClient_ListBlocked_ParallelLists(t *testing.T) {
	blocked := []UserObject{
		{ID: "12345", Username: "testuser1"},
		{ID: "67890", Username: "testuser2"},
	}
	srv := fakeVendor(t, blocked, "next-abc")
	defer srv.Close()

	c := New(srv.URL, "test-token", WithHTTPClient(srv.Client()))
	page, err := c.ListBlocked(context.Background(), ListParams{MaxResults: 10, Expansions: []string{"pinned_tweet_id"}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.UserIDs) != 2 || len(page.Usernames) != 2 {
		t.Fatalf("want 2 users, got ids=%v names=%v", page.UserIDs, page.Usernames)
	}
	for i := range page.UserIDs {
		if page.UserIDs[i] == "" || page.Usernames[i] == "" {
			t.Fatalf("position %d missing id or username", i)
		}
	}
	if page.UserIDs[0] != "12345" || page.Usernames[0] != "testuser1" {
		t.Fatalf("position 0 mismatch: %s/%s", page.UserIDs[0], page.Usernames[0])
	}
	if page.NextToken != "next-abc" {
		t.Fatalf("next token: %q", page.NextToken)
	}
	if page.Included == nil {
		t.Fatalf("includes missing despite expansions")
	}
}

func TestClient_Unauthorized(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	c := New(srv.URL, "wrong-token", WithHTTPClient(srv.Client()))
	_, err := c.BlockUser(context.Background(), "12345")
	if err == nil {
		t.Fatalf("want error")
	}
	msg := ErrorString(err)
	if !strings.Contains(msg, "unauthorized") {
		t.Fatalf("message: %q", msg)
	}
}

func TestClient_WithTimeout(t *testing.T) {
	c := New("http://example.invalid", "test-token", WithTimeout(3*time.Second))
	if c.httpc.Timeout != 3*time.Second {
		t.Fatalf("timeout: %v", c.httpc.Timeout)
	}
	c = New("http://example.invalid", "test-token", WithTimeout(0))
	if c.httpc.Timeout != 10*time.Second {
		t.Fatalf("non-positive timeout must keep the default: %v", c.httpc.Timeout)
	}
}

func TestClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"title":"Too Many Requests"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token", WithHTTPClient(srv.Client()))
	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatalf("want error")
	}
	if !strings.Contains(ErrorString(err), "rate limit") {
		t.Fatalf("message: %q", ErrorString(err))
	}
}
