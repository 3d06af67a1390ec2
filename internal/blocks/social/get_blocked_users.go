package social

import (
	"context"

	"github.com/samber/lo"

	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/xapi"
)

const (
	defaultMaxResults = 10
	maxMaxResults     = 1000
)

// GetBlockedUsersBlock lists the users blocked by the connected account.
// An empty page is reported as an error rather than an empty success, so
// workflows can branch on "nothing to moderate" without inspecting lists.
type GetBlockedUsersBlock struct {
	newClient ClientFactory
}

func NewGetBlockedUsersBlock(f ClientFactory) *GetBlockedUsersBlock {
	return &GetBlockedUsersBlock{newClient: f}
}

func (b *GetBlockedUsersBlock) Info() blocks.Info {
	return blocks.Info{
		ID:          GetBlockedUsersID,
		Name:        "get_blocked_users",
		Description: "Retrieve the list of users blocked by the connected account.",
		Category:    CategorySocial,
		Inputs: []blocks.Field{
			credentialField(),
			{Name: "max_results", Type: "int", Description: "Maximum number of results to return (1-1000)", Default: defaultMaxResults, Advanced: true},
			{Name: "pagination_token", Type: "string", Description: "Token for retrieving the next/previous page of results", Advanced: true},
			{Name: "expansions", Type: "list[string]", Description: "Expansions to request (e.g. pinned_tweet_id)", Advanced: true},
			{Name: "tweet_fields", Type: "list[string]", Description: "Tweet fields to include for expanded tweets", Advanced: true},
			{Name: "user_fields", Type: "list[string]", Description: "User fields to include", Advanced: true},
		},
		Outputs: []blocks.Field{
			{Name: "user_ids", Type: "list[string]", Description: "List of blocked user IDs"},
			{Name: "usernames", Type: "list[string]", Description: "List of blocked usernames, position-matched with user_ids"},
			{Name: "included", Type: "object", Description: "Additional data requested via expansions"},
			{Name: "meta", Type: "object", Description: "Vendor metadata including pagination info"},
			{Name: "next_token", Type: "string", Description: "Token for the next page, when one exists"},
			{Name: "error", Type: "string", Description: "Error message if the request failed"},
		},
	}
}

func (b *GetBlockedUsersBlock) Run(ctx context.Context, in blocks.Input) blocks.Output {
	token := in.String(AccessTokenKey)
	if token == "" {
		return blocks.Fail("missing access token")
	}

	params := xapi.ListParams{
		MaxResults:      lo.Clamp(in.Int("max_results", defaultMaxResults), 1, maxMaxResults),
		PaginationToken: in.String("pagination_token"), // "" means first page
		Expansions:      in.StringSlice("expansions"),
		TweetFields:     in.StringSlice("tweet_fields"),
		UserFields:      in.StringSlice("user_fields"),
	}

	page, err := b.newClient(token).ListBlocked(ctx, params)
	if err != nil {
		return blocks.Fail(xapi.ErrorString(err))
	}
	if len(page.UserIDs) == 0 {
		return blocks.Fail("no blocked users found")
	}

	out := blocks.Output{
		{Key: "user_ids", Value: page.UserIDs},
		{Key: "usernames", Value: page.Usernames},
	}
	if len(page.Included) > 0 {
		out = append(out, blocks.Pair{Key: "included", Value: page.Included})
	}
	if len(page.Meta) > 0 {
		out = append(out, blocks.Pair{Key: "meta", Value: page.Meta})
	}
	if page.NextToken != "" {
		out = append(out, blocks.Pair{Key: "next_token", Value: page.NextToken})
	}
	return out
}
