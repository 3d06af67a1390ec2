// Package social provides the X user-moderation blocks: block a user,
// unblock a user, and list the users blocked by the connected account.
package social

import (
	"strings"

	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/xapi"
)

// Stable block ids. Workflow definitions reference blocks by id, so these
// never change once published.
const (
	BlockUserID       = "fc258b94-a630-11ef-abc3-df050b75b816"
	UnblockUserID     = "0f1b6570-a631-11ef-a3ea-230cbe9650dd"
	GetBlockedUsersID = "05f409e8-a631-11ef-ae89-93de863ee30d"
)

// CategorySocial groups the moderation blocks in the block catalog.
const CategorySocial = "social"

// AccessTokenKey is the input key the runner injects the decrypted account
// token under. It is stripped before inputs are audited.
const AccessTokenKey = "access_token"

// ClientFactory builds a vendor client for one access token. Injected so
// tests and the runner control the endpoint and caching.
type ClientFactory func(accessToken string) *xapi.Client

func credentialField() blocks.Field {
	return blocks.Field{
		Name:        AccessTokenKey,
		Type:        "string",
		Description: "OAuth2 access token of the acting account",
		Required:    true,
		Secret:      true,
	}
}

// validTargetID accepts the numeric user ids the vendor uses.
func validTargetID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func normalizeTargetID(in blocks.Input) (string, bool) {
	id := strings.TrimSpace(in.String("target_user_id"))
	return id, validTargetID(id)
}
