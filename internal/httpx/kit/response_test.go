package kit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestOKEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return OK(c, fiber.Map{"x": 1})
	})
	req := httptest.NewRequest("GET", "/t", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "OK" || body["message"] != "success" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	data := body["data"].(map[string]any)
	if int(data["x"].(float64)) != 1 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestErrorHandler_APIError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/t", func(c *fiber.Ctx) error {
		return BadRequest("bad field", "details")
	})
	res, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("request err: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "E_INVALID_PARAM" || body["message"] != "bad field" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPageOf_HasMore(t *testing.T) {
	p := PagingParams{Limit: 2, Offset: 0}
	items, meta := PageOf([]int{1, 2, 3}, p, nil)
	if len(items) != 2 || !meta.HasMore {
		t.Fatalf("items=%v meta=%+v", items, meta)
	}
	if meta.NextOffset == nil || *meta.NextOffset != 2 {
		t.Fatalf("next offset: %v", meta.NextOffset)
	}

	items, meta = PageOf([]int{1, 2}, p, nil)
	if len(items) != 2 || meta.HasMore || meta.NextOffset != nil {
		t.Fatalf("exact page should not report more: %+v", meta)
	}
}
