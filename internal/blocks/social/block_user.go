package social

import (
	"context"

	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/xapi"
)

// BlockUserBlock blocks a specific user on behalf of the connected account.
type BlockUserBlock struct {
	newClient ClientFactory
}

func NewBlockUserBlock(f ClientFactory) *BlockUserBlock {
	return &BlockUserBlock{newClient: f}
}

func (b *BlockUserBlock) Info() blocks.Info {
	return blocks.Info{
		ID:          BlockUserID,
		Name:        "block_user",
		Description: "Block a specific user on X.",
		Category:    CategorySocial,
		Inputs: []blocks.Field{
			credentialField(),
			{Name: "target_user_id", Type: "string", Description: "The user ID of the user to block", Required: true},
		},
		Outputs: []blocks.Field{
			{Name: "success", Type: "bool", Description: "Whether the block was successful"},
			{Name: "error", Type: "string", Description: "Error message if the request failed"},
		},
	}
}

func (b *BlockUserBlock) Run(ctx context.Context, in blocks.Input) blocks.Output {
	target, ok := normalizeTargetID(in)
	if !ok {
		return blocks.Fail("target_user_id must be a numeric user id")
	}
	token := in.String(AccessTokenKey)
	if token == "" {
		return blocks.Fail("missing access token")
	}

	success, err := b.newClient(token).BlockUser(ctx, target)
	if err != nil {
		return blocks.Fail(xapi.ErrorString(err))
	}
	return blocks.Output{{Key: "success", Value: success}}
}
