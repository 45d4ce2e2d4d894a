package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	checklistHTTP "remodel-checklist/internal/checklist/delivery/http"
	"remodel-checklist/internal/checklist/repository/memory"
	"remodel-checklist/internal/checklist/template"
	"remodel-checklist/internal/checklist/usecase"
	"remodel-checklist/pkg/log"
	"remodel-checklist/pkg/response"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	registry, err := template.NewRegistry(l, "")
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	store := memory.New(l, 100, time.Hour)
	uc := usecase.New(l, store, registry, nil, "")
	h := checklistHTTP.New(l, uc, uc)

	r := gin.New()
	checklistHTTP.RegisterRoutes(r.Group("/api/v1/checklists"), h)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %s %s: %v (body %s)", method, path, err, w.Body.String())
	}
	return w, resp
}

func createTestSession(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create session: status %d body %s", w.Code, w.Body.String())
	}

	data := resp.Data.(map[string]interface{})
	session := data["session"].(map[string]interface{})
	return session["id"].(string)
}

func TestListTemplates(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/checklists/templates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	data := resp.Data.(map[string]interface{})
	templates := data["templates"].([]interface{})
	if len(templates) == 0 {
		t.Errorf("expected at least the built-in template")
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/checklists/sessions/"+id, "")
	if w.Code != http.StatusOK {
		t.Errorf("detail: status %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/checklists/sessions/"+id, "")
	if w.Code != http.StatusOK {
		t.Errorf("delete: status %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/checklists/sessions/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestToggleCascadeOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/items/budget/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status %d body %s", w.Code, w.Body.String())
	}

	data := resp.Data.(map[string]interface{})
	checked := data["checked"].(map[string]interface{})
	for _, itemID := range []string{"budget", "budget-range", "budget-financing", "budget-contingency"} {
		if checked[itemID] != true {
			t.Errorf("expected %q checked after parent toggle", itemID)
		}
	}
}

func TestStateEndpointUsesProviderScope(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/items/site-visit/toggle", "")

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/checklists/sessions/"+id+"/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state: status %d", w.Code)
	}

	data := resp.Data.(map[string]interface{})
	checked := data["checked"].(map[string]interface{})
	if checked["site-visit"] != true {
		t.Errorf("state endpoint must reflect the shared engine")
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/checklists/sessions/ghost/state", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", w.Code)
	}
}

func TestSetCheckedValidation(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	// Missing "checked" field fails binding.
	w, _ := doJSON(t, r, http.MethodPut, "/api/v1/checklists/sessions/"+id+"/items/budget", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing checked field, got %d", w.Code)
	}

	w, resp := doJSON(t, r, http.MethodPut, "/api/v1/checklists/sessions/"+id+"/items/budget", `{"checked": true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set checked: status %d", w.Code)
	}
	data := resp.Data.(map[string]interface{})
	checked := data["checked"].(map[string]interface{})
	if checked["budget"] != true {
		t.Errorf("expected budget checked")
	}
	if checked["budget-range"] == true {
		t.Errorf("direct write must not cascade")
	}
}

func TestProgressOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/items/budget-range/toggle", "")

	w, resp := doJSON(t, r, http.MethodGet, "/api/v1/checklists/sessions/"+id+"/progress", "")
	if w.Code != http.StatusOK {
		t.Fatalf("progress: status %d", w.Code)
	}

	data := resp.Data.(map[string]interface{})
	total := data["total"].(map[string]interface{})
	if total["completed"].(float64) != 1 {
		t.Errorf("expected 1 completed, got %v", total["completed"])
	}

	items := data["items"].(map[string]interface{})
	budget := items["budget"].(map[string]interface{})
	if budget["completed"].(float64) != 1 || budget["total"].(float64) != 3 {
		t.Errorf("expected budget 1/3, got %v", budget)
	}
}

func TestFollowUpWithoutCalendar(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	start := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	end := time.Now().Add(25 * time.Hour).Format(time.RFC3339)
	body := `{"start_time": "` + start + `", "end_time": "` + end + `"}`

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/followup", body)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without calendar integration, got %d", w.Code)
	}
}

func TestResetOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	id := createTestSession(t, r)

	doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/items/budget/toggle", "")
	doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/items/budget/expand", "")

	w, resp := doJSON(t, r, http.MethodPost, "/api/v1/checklists/sessions/"+id+"/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("reset: status %d", w.Code)
	}

	data := resp.Data.(map[string]interface{})
	total := data["total"].(map[string]interface{})
	if total["completed"].(float64) != 0 {
		t.Errorf("expected 0 completed after reset, got %v", total["completed"])
	}
	expanded := data["expanded"].(map[string]interface{})
	for itemID, v := range expanded {
		if v == true {
			t.Errorf("expected %q collapsed after reset", itemID)
		}
	}
}
