package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-assistant/pkg/errors"
	"calendar-assistant/pkg/response"
)

type eventResp struct {
	response.Resp
	Event map[string]string `json:"event"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	return body
}

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, eventResp{
			Resp:  response.NewOKResp("Event created successfully"),
			Event: map[string]string{"id": "evt-1"},
		})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		body := decode(t, w)
		if body["status"] != "success" || body["message"] != "Event created successfully" {
			t.Errorf("unexpected envelope: %v", body)
		}
		event, ok := body["event"].(map[string]any)
		if !ok || event["id"] != "evt-1" {
			t.Errorf("embedded fields must be flattened: %v", body)
		}
		if _, ok := body["errors"]; ok {
			t.Errorf("errors must be omitted on success")
		}
	})

	t.Run("OK Nil Data", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, nil)
		if body := decode(t, w); body["status"] != "success" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("Error HTTPError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		details := []map[string]string{{"field": "start.timeZone", "problem": "missing"}}
		response.Error(c, pkgErrors.NewBadRequestError("Missing required fields: start.timeZone").WithDetails(details))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
		body := decode(t, w)
		if body["status"] != "error" || body["message"] != "Missing required fields: start.timeZone" {
			t.Errorf("unexpected envelope: %v", body)
		}
		if errs, ok := body["errors"].([]any); !ok || len(errs) != 1 {
			t.Errorf("expected details under errors: %v", body)
		}
	})

	t.Run("Error Unknown", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("calendar exploded"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if body := decode(t, w); body["message"] != "calendar exploded" {
			t.Errorf("expected error text in message: %v", body)
		}
	})

	t.Run("InternalError Nil", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, nil)
		if body := decode(t, w); body["message"] != response.DefaultErrorMessage {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("BadRequest", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.BadRequest(c, errors.New("query is empty"))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})
}
