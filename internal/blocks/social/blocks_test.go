package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/xapi"
)

// fakeVendor serves the handful of v2 endpoints the moderation blocks hit.
func fakeVendor(t *testing.T, blocked []xapi.UserObject, nextToken string) *httptest.Server {
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
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"blocking": true}})
		case http.MethodGet:
			out := map[string]any{
				"data": blocked,
				"meta": map[string]any{"result_count": len(blocked)},
			}
			if nextToken != "" {
				out["meta"].(map[string]any)["next_token"] = nextToken
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

func factoryFor(srv *httptest.Server) ClientFactory {
	return func(token string) *xapi.Client {
		return xapi.New(srv.URL, token, xapi.WithHTTPClient(srv.Client()))
	}
}

func TestBlockUserBlock_Success(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	b := NewBlockUserBlock(factoryFor(srv))
	out := b.Run(context.Background(), blocks.Input{
		AccessTokenKey:   "test-token",
		"target_user_id": "12345",
	})
	if out.Err() != "" {
		t.Fatalf("unexpected error output: %q", out.Err())
	}
	v, ok := out.Get("success")
	if !ok {
		t.Fatalf("success output missing")
	}
	if s, _ := v.(bool); !s {
		t.Fatalf("want success=true")
	}
}

func TestBlockUserBlock_RejectsNonNumericTarget(t *testing.T) {
	b := NewBlockUserBlock(func(string) *xapi.Client {
		t.Fatalf("client must not be built for invalid input")
		return nil
	})
	out := b.Run(context.Background(), blocks.Input{
		AccessTokenKey:   "test-token",
		"target_user_id": "not-a-user-id",
	})
	if out.Err() == "" {
		t.Fatalf("want error output")
	}
	if _, ok := out.Get("success"); ok {
		t.Fatalf("failed run must not emit success")
	}
}

func TestBlockUserBlock_MissingToken(t *testing.T) {
	b := NewBlockUserBlock(func(string) *xapi.Client {
		t.Fatalf("client must not be built without a token")
		return nil
	})
	out := b.Run(context.Background(), blocks.Input{"target_user_id": "12345"})
	if !strings.Contains(out.Err(), "missing access token") {
		t.Fatalf("error: %q", out.Err())
	}
}

func TestBlockUserBlock_VendorError(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	b := NewBlockUserBlock(factoryFor(srv))
	out := b.Run(context.Background(), blocks.Input{
		AccessTokenKey:   "wrong-token",
		"target_user_id": "12345",
	})
	if !strings.Contains(out.Err(), "unauthorized") {
		t.Fatalf("error: %q", out.Err())
	}
	if _, ok := out.Get("success"); ok {
		t.Fatalf("vendor failure must not emit success")
	}
}

func TestUnblockUserBlock_Success(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	b := NewUnblockUserBlock(factoryFor(srv))
	out := b.Run(context.Background(), blocks.Input{
		AccessTokenKey:   "test-token",
		"target_user_id": "67890",
	})
	if out.Err() != "" {
		t.Fatalf("unexpected error output: %q", out.Err())
	}
	v, _ := out.Get("success")
	if s, _ := v.(bool); !s {
		t.Fatalf("want success=true")
	}
}

func TestGetBlockedUsersBlock_ParallelLists(t *testing.T) {
	blocked := []xapi.UserObject{
		{ID: "12345", Username: "testuser1"},
		{ID: "67890", Username: "testuser2"},
	}
	srv := fakeVendor(t, blocked, "next-abc")
	defer srv.Close()

	b := NewGetBlockedUsersBlock(factoryFor(srv))
	out := b.Run(context.Background(), blocks.Input{
		AccessTokenKey: "test-token",
		"max_results":  2,
	})
	if out.Err() != "" {
		t.Fatalf("unexpected error output: %q", out.Err())
	}

	idsV, _ := out.Get("user_ids")
	namesV, _ := out.Get("usernames")
	ids, _ := idsV.([]string)
	names, _ := namesV.([]string)
	if len(ids) != 2 || len(names) != 2 {
		t.Fatalf("want 2 entries, got ids=%v names=%v", ids, names)
	}
	for i := range ids {
		if ids[i] == "" || names[i] == "" {
			t.Fatalf("position %d not filled on both lists", i)
		}
	}
	if ids[1] != "67890" || names[1] != "testuser2" {
		t.Fatalf("position 1 mismatch: %s/%s", ids[1], names[1])
	}

	nt, ok := out.Get("next_token")
	if !ok || nt != "next-abc" {
		t.Fatalf("next_token: %v", nt)
	}
}

func TestGetBlockedUsersBlock_EmptyIsError(t *testing.T) {
	srv := fakeVendor(t, nil, "")
	defer srv.Close()

	b := NewGetBlockedUsersBlock(factoryFor(srv))
	out := b.Run(context.Background(), blocks.Input{AccessTokenKey: "test-token"})
	if !strings.Contains(out.Err(), "no blocked users found") {
		t.Fatalf("error: %q", out.Err())
	}
	if _, ok := out.Get("user_ids"); ok {
		t.Fatalf("empty page must not emit user_ids")
	}
}

func TestGetBlockedUsersBlock_ClampsMaxResults(t *testing.T) {
	var gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/me") {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"id": "777", "username": "moderator"}})
			return
		}
		gotMax = r.URL.Query().Get("max_results")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []xapi.UserObject{{ID: "1", Username: "u"}},
			"meta": map[string]any{"result_count": 1},
		})
	}))
	defer srv.Close()

	b := NewGetBlockedUsersBlock(factoryFor(srv))
	out := b.Run(context.Background(), blocks.Input{
		AccessTokenKey: "test-token",
		"max_results":  5000,
	})
	if out.Err() != "" {
		t.Fatalf("unexpected error output: %q", out.Err())
	}
	if gotMax != "1000" {
		t.Fatalf("max_results not clamped: %q", gotMax)
	}
}

func TestBlockInfos_StableIDs(t *testing.T) {
	f := func(string) *xapi.Client { return nil }
	cases := []struct {
		b    blocks.Block
		id   string
		name string
	}{
		{NewBlockUserBlock(f), BlockUserID, "block_user"},
		{NewUnblockUserBlock(f), UnblockUserID, "unblock_user"},
		{NewGetBlockedUsersBlock(f), GetBlockedUsersID, "get_blocked_users"},
	}
	for _, c := range cases {
		info := c.b.Info()
		if info.ID != c.id {
			t.Fatalf("%s: id %s", c.name, info.ID)
		}
		if info.Name != c.name {
			t.Fatalf("name %s", info.Name)
		}
		if info.Category != CategorySocial {
			t.Fatalf("%s: category %s", c.name, info.Category)
		}
		var hasSecret bool
		for _, in := range info.Inputs {
			if in.Name == AccessTokenKey && in.Secret {
				hasSecret = true
			}
		}
		if !hasSecret {
			t.Fatalf("%s: credential input not marked secret", c.name)
		}
	}
}
