package kit

import (
	"strings"

	"fiber-ent-x-moderation/ent"
	"fiber-ent-x-moderation/ent/blockexecution"

	"github.com/samber/lo"
)

type executionSortApplier struct {
	Asc  func(*ent.BlockExecutionQuery) *ent.BlockExecutionQuery
	Desc func(*ent.BlockExecutionQuery) *ent.BlockExecutionQuery
}

// ExecutionSortWhitelist defines allowed sort fields and their query modifiers for executions
var ExecutionSortWhitelist = map[string]executionSortApplier{
	"created_at": {
		Asc:  func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Asc(blockexecution.FieldCreatedAt)) },
		Desc: func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Desc(blockexecution.FieldCreatedAt)) },
	},
	"duration_ms": {
		Asc:  func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Asc(blockexecution.FieldDurationMs)) },
		Desc: func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Desc(blockexecution.FieldDurationMs)) },
	},
	"status": {
		Asc:  func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Asc(blockexecution.FieldStatus)) },
		Desc: func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Desc(blockexecution.FieldStatus)) },
	},
	"block_name": {
		Asc:  func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Asc(blockexecution.FieldBlockName)) },
		Desc: func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Desc(blockexecution.FieldBlockName)) },
	},
	"id": {
		Asc:  func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Asc(blockexecution.FieldID)) },
		Desc: func(q *ent.BlockExecutionQuery) *ent.BlockExecutionQuery { return q.Order(ent.Desc(blockexecution.FieldID)) },
	},
}

func parseSortSpec(spec string) (field string, asc bool, err error) {
	if spec == "" {
		return "", true, nil
	}
	parts := strings.Split(spec, ":")
	field = strings.TrimSpace(parts[0])
	dir := lo.TernaryF(len(parts) > 1,
		func() string { return strings.ToLower(strings.TrimSpace(parts[1])) },
		func() string { return "asc" },
	)
	switch dir {
	case "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", true, BadRequest("invalid sort direction", dir)
	}
	return field, asc, nil
}

// ApplyExecutionSort applies a validated sort spec to an ent BlockExecutionQuery
func ApplyExecutionSort(q *ent.BlockExecutionQuery, s string) (*ent.BlockExecutionQuery, error) {
	field, asc, err := parseSortSpec(s)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return q, nil
	}
	ap, ok := ExecutionSortWhitelist[field]
	if !ok {
		return nil, BadRequest("invalid sort field", field)
	}
	if asc {
		return ap.Asc(q), nil
	}
	return ap.Desc(q), nil
}
