// Package runner executes blocks against stored accounts and records the
// outcome: one BlockExecution row per run, an event on the bus, and a search
// document. Failures inside a block are data (the "error" output), not Go
// errors; Run only returns an error for infrastructure problems.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/internal/blocks"
	"fiber-ent-x-moderation/internal/blocks/social"
	"fiber-ent-x-moderation/internal/esx"
	"fiber-ent-x-moderation/internal/logx"
	"fiber-ent-x-moderation/internal/mqx"
	"fiber-ent-x-moderation/internal/secretx"
	"fiber-ent-x-moderation/pkg"
)

var runnerLogger = logx.GetScope("runner")

// ExecutionIndex is the search index executions are written to.
const ExecutionIndex = "block-executions"

// Runner wires a block registry to credentials, auditing, events and search.
type Runner struct {
	Registry    *blocks.Registry
	Client      *ent.Client
	Sealer      *secretx.Sealer
	Checkpoints CheckpointStore // optional: pagination checkpoints
	MQ          mqx.Publisher   // optional: moderation events
	ES          *esx.Client     // optional: execution search index
}

// Request is one block run against a connected account.
type Request struct {
	UserID  uuid.UUID
	Account *ent.SocialAccount
	BlockID string
	Input   blocks.Input
	// Resume fills an empty pagination_token input from the last
	// checkpointed next_token for this (account, block).
	Resume bool
}

// Result carries the emitted outputs and the persisted audit row.
type Result struct {
	Output    blocks.Output
	Execution *ent.BlockExecution
}

// Run executes one block. The account token is unsealed only for the
// duration of the call and stripped before the input is audited.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	blk, ok := r.Registry.Get(req.BlockID)
	if !ok {
		return nil, fmt.Errorf("unknown block %s", req.BlockID)
	}
	info := blk.Info()

	token, err := r.Sealer.Open(req.Account.AccessTokenSealed)
	if err != nil {
		return nil, fmt.Errorf("unseal account token: %w", err)
	}

	in := blocks.Input{}
	for k, v := range req.Input {
		in[k] = v
	}
	if req.Resume && in.String("pagination_token") == "" && r.Checkpoints != nil {
		if cp, err := r.Checkpoints.Load(ctx, req.Account.ID, info.ID); err == nil && cp != "" {
			in["pagination_token"] = cp
		}
	}
	in[social.AccessTokenKey] = token

	started := time.Now().UTC()
	out := blk.Run(ctx, in)
	finished := time.Now().UTC()

	status := "ok"
	errMsg := out.Err()
	if errMsg != "" {
		status = "error"
	}

	if r.Checkpoints != nil {
		if nt, ok := out.Get("next_token"); ok {
			if s, _ := nt.(string); s != "" {
				if err := r.Checkpoints.Save(ctx, req.Account.ID, info.ID, s); err != nil {
					runnerLogger.Warn("save checkpoint failed", zap.Error(err))
				}
			}
		}
	}

	exec, err := r.audit(ctx, req, info, in, out, status, errMsg, started, finished)
	if err != nil {
		return nil, err
	}

	runnerLogger.Info("block run finished",
		zap.String("block", info.Name),
		zap.String("status", status),
		zap.String("took", pkg.SmartDurationFormat(finished.Sub(started))),
	)

	r.publish(ctx, req, info, exec, status, errMsg)
	r.index(ctx, req, info, exec, status, errMsg)

	return &Result{Output: out, Execution: exec}, nil
}

// auditInput strips credential fields from the input before persistence.
func auditInput(info blocks.Info, in blocks.Input) map[string]any {
	secret := map[string]bool{social.AccessTokenKey: true}
	for _, f := range info.Inputs {
		if f.Secret {
			secret[f.Name] = true
		}
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if !secret[k] {
			out[k] = v
		}
	}
	return out
}

func (r *Runner) audit(ctx context.Context, req Request, info blocks.Info, in blocks.Input, out blocks.Output, status, errMsg string, started, finished time.Time) (*ent.BlockExecution, error) {
	cr := r.Client.BlockExecution.Create().
		SetBlockID(info.ID).
		SetBlockName(info.Name).
		SetStatus(blockexecution.Status(status)).
		SetInput(auditInput(info, in)).
		SetOutput(out.Map()).
		SetDurationMs(finished.Sub(started).Milliseconds()).
		SetStartedAt(started).
		SetFinishedAt(finished).
		SetRunnerID(req.UserID).
		SetAccount(req.Account)
	if errMsg != "" {
		cr = cr.SetErrorMessage(errMsg)
	}
	exec, err := cr.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record execution: %w", err)
	}
	return exec, nil
}

// Routing keys per block; unknown blocks fall back to a generic key.
var routingKeys = map[string]string{
	social.BlockUserID:       "moderation.block",
	social.UnblockUserID:     "moderation.unblock",
	social.GetBlockedUsersID: "moderation.list",
}

func (r *Runner) publish(ctx context.Context, req Request, info blocks.Info, exec *ent.BlockExecution, status, errMsg string) {
	if r.MQ == nil {
		return
	}
	key, ok := routingKeys[info.ID]
	if !ok {
		key = "moderation.run"
	}
	evt := map[string]any{
		"type":         key,
		"execution_id": exec.ID,
		"block_id":     info.ID,
		"block_name":   info.Name,
		"account_id":   req.Account.ID,
		"handle":       req.Account.Handle,
		"status":       status,
	}
	if errMsg != "" {
		evt["error"] = errMsg
	}
	b, _ := json.Marshal(evt)
	if err := r.MQ.Publish(ctx, key, b); err != nil {
		runnerLogger.Warn("publish event failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Runner) index(ctx context.Context, req Request, info blocks.Info, exec *ent.BlockExecution, status, errMsg string) {
	if r.ES == nil {
		return
	}
	doc := esx.ExecutionDoc{
		ID:           exec.ID.String(),
		BlockID:      info.ID,
		BlockName:    info.Name,
		Status:       status,
		ErrorMessage: errMsg,
		AccountID:    req.Account.ID.String(),
		Handle:       req.Account.Handle,
		UserID:       req.UserID.String(),
		DurationMS:   exec.DurationMs,
		CreatedAt:    exec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := esx.IndexExecution(ctx, r.ES, ExecutionIndex, doc); err != nil {
		runnerLogger.Warn("index execution failed", zap.Error(err))
	}
}

