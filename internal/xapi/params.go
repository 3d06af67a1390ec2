package xapi

import (
	"net/url"
	"strconv"
	"strings"
)

// buildListQuery translates ListParams into v2 query parameters. Empty
// filters are left out entirely; the vendor rejects empty field lists.
func buildListQuery(p ListParams) url.Values {
	q := url.Values{}
	if p.MaxResults > 0 {
		q.Set("max_results", strconv.Itoa(p.MaxResults))
	}
	if p.PaginationToken != "" {
		q.Set("pagination_token", p.PaginationToken)
	}
	setCSV(q, "expansions", p.Expansions)
	setCSV(q, "tweet.fields", p.TweetFields)
	setCSV(q, "user.fields", p.UserFields)
	return q
}

func setCSV(q url.Values, key string, vals []string) {
	clean := make([]string, 0, len(vals))
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			clean = append(clean, t)
		}
	}
	if len(clean) > 0 {
		q.Set(key, strings.Join(clean, ","))
	}
}
