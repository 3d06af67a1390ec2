package xapi

import "testing"

func TestBuildListQuery(t *testing.T) {
	q := buildListQuery(ListParams{
		MaxResults:      25,
		PaginationToken: "tok",
		Expansions:      []string{"pinned_tweet_id"},
		TweetFields:     []string{"created_at", " text "},
		UserFields:      nil,
	})
	if q.Get("max_results") != "25" {
		t.Fatalf("max_results: %q", q.Get("max_results"))
	}
	if q.Get("pagination_token") != "tok" {
		t.Fatalf("pagination_token: %q", q.Get("pagination_token"))
	}
	if q.Get("expansions") != "pinned_tweet_id" {
		t.Fatalf("expansions: %q", q.Get("expansions"))
	}
	if q.Get("tweet.fields") != "created_at,text" {
		t.Fatalf("tweet.fields: %q", q.Get("tweet.fields"))
	}
	if _, ok := q["user.fields"]; ok {
		t.Fatalf("user.fields should be omitted when empty")
	}
}

func TestBuildListQuery_Empty(t *testing.T) {
	q := buildListQuery(ListParams{PaginationToken: ""})
	if len(q) != 0 {
		t.Fatalf("want empty query, got %v", q)
	}
}
