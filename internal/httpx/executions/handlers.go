// Package executions serves the block run audit trail.
package executions

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/ent/blockexecution"
	"fiber-ent-x-moderation/ent/user"
	"fiber-ent-x-moderation/internal/esx"
	"fiber-ent-x-moderation/internal/httpx/kit"
	"fiber-ent-x-moderation/internal/httpx/mw"
)

// ExecutionView is the API shape of one audit record.
// swagger:model ExecutionView
type ExecutionView struct {
	ID           uuid.UUID      `json:"id"`
	BlockID      string         `json:"block_id"`
	BlockName    string         `json:"block_name"`
	Status       string         `json:"status"`
	Input        map[string]any `json:"input"`
	Output       map[string]any `json:"output,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	DurationMS   int64          `json:"duration_ms"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toView(e *ent.BlockExecution) ExecutionView {
	return ExecutionView{
		ID:           e.ID,
		BlockID:      e.BlockID,
		BlockName:    e.BlockName,
		Status:       string(e.Status),
		Input:        e.Input,
		Output:       e.Output,
		ErrorMessage: e.ErrorMessage,
		DurationMS:   e.DurationMs,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		CreatedAt:    e.CreatedAt,
	}
}

// ListHandler lists the caller's executions with paging, sorting and filters.
//
//	@Summary      List executions
//	@Description  Paginated audit trail of the caller's block runs
//	@Tags         executions
//	@Produce      json
//	@Security     BearerAuth
//	@Param        limit       query  int     false  "page size (max 100)"
//	@Param        offset      query  int     false  "offset"
//	@Param        sort        query  string  false  "field or field:dir"
//	@Param        with_total  query  bool    false  "compute total count"
//	@Param        status      query  string  false  "filter: ok | error"
//	@Param        block_id    query  string  false  "filter by block id"
//	@Success      200  {array}  executions.ExecutionView
//	@Router       /api/v1/executions [get]
func ListHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		p, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		q := client.BlockExecution.Query().
			Where(blockexecution.HasRunnerWith(user.IDEQ(uid)))
		if s := c.Query("status", ""); s != "" {
			if s != "ok" && s != "error" {
				return kit.BadRequest("invalid status filter", s)
			}
			q = q.Where(blockexecution.StatusEQ(blockexecution.Status(s)))
		}
		if b := c.Query("block_id", ""); b != "" {
			q = q.Where(blockexecution.BlockIDEQ(b))
		}

		var total *int
		if p.WithTotal {
			n, err := q.Clone().Count(ctx)
			if err != nil {
				return kit.InternalError("count executions failed", err.Error())
			}
			total = &n
		}

		if p.Sort == "" {
			p.Sort = "created_at:desc"
		}
		q, err = kit.ApplyExecutionSort(q, p.Sort)
		if err != nil {
			return err
		}

		rows, err := q.Offset(p.Offset).Limit(p.Limit + 1).All(ctx)
		if err != nil {
			return kit.InternalError("list executions failed", err.Error())
		}
		views := lo.Map(rows, func(e *ent.BlockExecution, _ int) ExecutionView { return toView(e) })
		page, meta := kit.PageOf(views, p, total)
		return kit.List(c, page, meta)
	}
}

// GetHandler returns one execution owned by the caller.
//
//	@Summary      Get execution
//	@Tags         executions
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path  string  true  "execution id"
//	@Success      200  {object}  executions.ExecutionView
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/executions/{id} [get]
func GetHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := mw.UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid execution id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		e, err := client.BlockExecution.Query().
			Where(blockexecution.IDEQ(id), blockexecution.HasRunnerWith(user.IDEQ(uid))).
			Only(ctx)
		if err != nil {
			return kit.NotFound("execution not found")
		}
		return kit.OK(c, toView(e))
	}
}

// SearchHandler performs a full-text search over indexed executions.
//
//	@Summary      Search executions
//	@Description  Full-text search over block name, handle, status and error text
//	@Tags         executions
//	@Produce      json
//	@Security     BearerAuth
//	@Param        q       query  string  true   "query text"
//	@Param        limit   query  int     false  "page size"
//	@Param        offset  query  int     false  "offset"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/search/executions [get]
func SearchHandler(es *esx.Client, index string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := mw.UserID(c); !ok {
			return fiber.ErrUnauthorized
		}
		query := c.Query("q", "")
		if query == "" {
			return kit.BadRequest("q required", nil)
		}
		p, err := kit.ParsePaging(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		out, err := esx.SearchExecutions(ctx, es, index, query, p.Offset, p.Limit)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}
