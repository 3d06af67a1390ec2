package kit

import (
	"testing"

	"fiber-ent-x-moderation/ent"
)

func TestApplyExecutionSort_ValidateField(t *testing.T) {
	c := ent.NewClient()
	q := c.BlockExecution.Query()
	if _, err := ApplyExecutionSort(q, "duration_ms:desc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ApplyExecutionSort(q, "unknown:asc"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := ApplyExecutionSort(q, "created_at:sideways"); err == nil {
		t.Fatalf("expected error for bad direction")
	}
}
