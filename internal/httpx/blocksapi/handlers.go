// Package blocksapi exposes the block catalog and block execution endpoints.
package blocksapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/httpx/accounts"
	"fiber-ent-x-moderation/internal/httpx/kit"
	"fiber-ent-x-moderation/internal/httpx/mw"
	"fiber-ent-x-moderation/internal/runner"
)

// RunRequest represents the block run request body
// swagger:model RunRequest
type RunRequest struct {
	AccountID uuid.UUID      `json:"account_id"`
	Input     map[string]any `json:"input,omitempty"`
	// Resume continues listing from the last checkpointed page when the
	// input carries no pagination token.
	Resume bool `json:"resume,omitempty"`
}

// RunResponse represents the outcome of one block run
// swagger:model RunResponse
type RunResponse struct {
	ExecutionID uuid.UUID     `json:"execution_id"`
	Status      string        `json:"status"`
	Outputs     blocks.Output `json:"outputs"`
	Error       string        `json:"error,omitempty"`
	DurationMS  int64         `json:"duration_ms"`
}

// ListHandler returns the block catalog.
//
//	@Summary      List blocks
//	@Tags         blocks
//	@Produce      json
//	@Success      200  {array}  blocks.Info
//	@Router       /api/v1/blocks [get]
func ListHandler(reg *blocks.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		infos := lo.Map(reg.List(), func(b blocks.Block, _ int) blocks.Info { return b.Info() })
		return kit.OK(c, infos)
	}
}

// GetHandler returns one block's metadata.
//
//	@Summary      Get block
//	@Tags         blocks
//	@Produce      json
//	@Param        id   path  string  true  "block id"
//	@Success      200  {object}  blocks.Info
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/blocks/{id} [get]
func GetHandler(reg *blocks.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, ok := reg.Get(c.Params("id"))
		if !ok {
			return kit.NotFound("block not found")
		}
		return kit.OK(c, b.Info())
	}
}

// RunHandler executes a block against one of the caller's connected accounts.
//
//	@Summary      Run block
//	@Description  Execute a block with the given input against a connected account
//	@Tags         blocks
//	@Accept       json
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id    path  string                true  "block id"
//	@Param        body  body  blocksapi.RunRequest  true  "run"
//	@Success      200   {object}  blocksapi.RunResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/blocks/{id}/run [post]
func RunHandler(rn *runner.Runner, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		blockID := c.Params("id")
		if _, ok := rn.Registry.Get(blockID); !ok {
			return kit.NotFound("block not found")
		}
		var req RunRequest
		if err := c.BodyParser(&req); err != nil || req.AccountID == uuid.Nil {
			return kit.BadRequest("account_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()

		acct, err := accounts.FindOwned(ctx, client, uid, req.AccountID)
		if err != nil {
			return kit.NotFound("account not found")
		}
		if !acct.IsActive {
			return kit.BadRequest("account is disabled", acct.Handle)
		}

		res, err := rn.Run(ctx, runner.Request{
			UserID:  uid,
			Account: acct,
			BlockID: blockID,
			Input:   req.Input,
			Resume:  req.Resume,
		})
		if err != nil {
			return kit.InternalError("run block failed", err.Error())
		}

		_ = client.SocialAccount.UpdateOne(acct).SetLastUsedAt(time.Now().UTC()).Exec(ctx)

		return kit.OK(c, RunResponse{
			ExecutionID: res.Execution.ID,
			Status:      string(res.Execution.Status),
			Outputs:     res.Output,
			Error:       res.Output.Err(),
			DurationMS:  res.Execution.DurationMs,
		})
	}
}
