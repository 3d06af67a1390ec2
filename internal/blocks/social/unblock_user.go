package social

import (
	"context"

	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/xapi"
)

// UnblockUserBlock removes a block. Unblocking a user who is not blocked, or
// was already unblocked, succeeds with no action; the vendor guarantees that.
type UnblockUserBlock struct {
	newClient ClientFactory
}

func NewUnblockUserBlock(f ClientFactory) *UnblockUserBlock {
	return &UnblockUserBlock{newClient: f}
}

func (b *UnblockUserBlock) Info() blocks.Info {
	return blocks.Info{
		ID:          UnblockUserID,
		Name:        "unblock_user",
		Description: "Unblock a specific user on X.",
		Category:    CategorySocial,
		Inputs: []blocks.Field{
			credentialField(),
			{Name: "target_user_id", Type: "string", Description: "The user ID of the user to unblock", Required: true},
		},
		Outputs: []blocks.Field{
			{Name: "success", Type: "bool", Description: "Whether the unblock was successful"},
			{Name: "error", Type: "string", Description: "Error message if the request failed"},
		},
	}
}

func (b *UnblockUserBlock) Run(ctx context.Context, in blocks.Input) blocks.Output {
	target, ok := normalizeTargetID(in)
	if !ok {
		return blocks.Fail("target_user_id must be a numeric user id")
	}
	token := in.String(AccessTokenKey)
	if token == "" {
		return blocks.Fail("missing access token")
	}

	success, err := b.newClient(token).UnblockUser(ctx, target)
	if err != nil {
		return blocks.Fail(xapi.ErrorString(err))
	}
	return blocks.Output{{Key: "success", Value: success}}
}
