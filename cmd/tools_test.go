package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
	"github.com/kanboardtools/kanboard-mcp/types"
)

type fakeRPC struct {
	t        *testing.T
	attempts atomic.Int32
	// respond renders the JSON-RPC response for one decoded request.
	respond func(method string, params json.RawMessage, w http.ResponseWriter)
}

func (f *fakeRPC) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.attempts.Add(1)
	var req struct {
		Method string          `json:"method"`
		ID     string          `json:"id"`
		Params json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.t.Errorf("decode request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.respond(req.Method, req.Params, w)
}

func rpcResult(w http.ResponseWriter, result any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": 1, "result": result})
}

func rpcFailure(w http.ResponseWriter, code int, message string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"error":   map[string]any{"code": code, "message": message},
	})
}

func newFakeClient(t *testing.T, fake *fakeRPC) *kanboard.Client {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := kanboard.New(kanboard.Config{
		URL:        srv.URL,
		APIToken:   "tok123",
		Username:   kanboard.DefaultUsername,
		VerifySSL:  true,
		Timeout:    5,
		MaxRetries: 3,
		RetryDelay: 0.01,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func callHandler[P any](t *testing.T, handler mcp.ToolHandlerFor[P, types.ToolEnvelope], args P) types.ToolEnvelope {
	t.Helper()
	res, err := handler(context.Background(), nil, &mcp.CallToolParamsFor[P]{Arguments: args})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	return res.StructuredContent
}

func TestToolSuccessEnvelopePassesDataThrough(t *testing.T) {
	projects := []any{map[string]any{"id": float64(1), "name": "Demo"}}
	fake := &fakeRPC{t: t, respond: func(method string, params json.RawMessage, w http.ResponseWriter) {
		if method != "getAllProjects" {
			t.Errorf("method = %q, want getAllProjects", method)
		}
		rpcResult(w, projects)
	}}
	client := newFakeClient(t, fake)

	handler := forward(client, "getAllProjects", true, func(types.NoParams) any { return nil })
	env := callHandler(t, handler, types.NoParams{})

	if !env.Success {
		t.Fatalf("envelope success = false, error = %q", env.Error)
	}
	if !reflect.DeepEqual(env.Data, any(projects)) {
		t.Fatalf("envelope data = %#v, want unchanged payload %#v", env.Data, projects)
	}
	if env.Count == nil || *env.Count != 1 {
		t.Fatalf("envelope count = %v, want 1", env.Count)
	}
	if env.Error != "" {
		t.Fatalf("envelope error = %q, want empty on success", env.Error)
	}

	// The wire form is exactly {"success":true,"data":...,"count":1}.
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	if decoded["success"] != true {
		t.Errorf("wire envelope success = %v", decoded["success"])
	}
	if _, ok := decoded["error"]; ok {
		t.Error("wire envelope carries an error field on success")
	}
}

func TestToolErrorEnvelopeWithoutRetry(t *testing.T) {
	fake := &fakeRPC{t: t, respond: func(method string, params json.RawMessage, w http.ResponseWriter) {
		rpcFailure(w, -32000, "Task not found")
	}}
	client := newFakeClient(t, fake)

	handler := forward(client, "getTask", false, func(p types.TaskIDParams) any {
		return []any{p.TaskID}
	})
	env := callHandler(t, handler, types.TaskIDParams{TaskID: 9999})

	if env.Success {
		t.Fatal("envelope success = true, want failure for a remote API error")
	}
	if !strings.Contains(env.Error, "Task not found") {
		t.Fatalf("envelope error = %q, want the remote message preserved", env.Error)
	}
	if env.Data != nil {
		t.Fatalf("envelope data = %#v, want nil on failure", env.Data)
	}
	if n := fake.attempts.Load(); n != 1 {
		t.Fatalf("attempts = %d, want 1 (protocol errors are never retried)", n)
	}
}

func TestToolConnectionFailureSurfacesAfterRetries(t *testing.T) {
	fake := &fakeRPC{t: t, respond: func(method string, params json.RawMessage, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadGateway)
	}}
	client := newFakeClient(t, fake)

	handler := forward(client, "getAllTasks", true, func(p types.AllTasksParams) any {
		return []any{p.ProjectID}
	})
	env := callHandler(t, handler, types.AllTasksParams{ProjectID: 1})

	if env.Success {
		t.Fatal("envelope success = true, want failure after retry exhaustion")
	}
	if n := fake.attempts.Load(); n != 3 {
		t.Fatalf("attempts = %d, want exactly 3 (max_retries)", n)
	}
}

func TestCreateTaskOmitsUnsetOptionals(t *testing.T) {
	var gotParams map[string]any
	fake := &fakeRPC{t: t}
	fake.respond = func(method string, params json.RawMessage, w http.ResponseWriter) {
		if err := json.Unmarshal(params, &gotParams); err != nil {
			fake.t.Errorf("unmarshal params: %v", err)
		}
		rpcResult(w, 42)
	}
	client := newFakeClient(t, fake)

	handler := forward(client, "createTask", false, func(p types.CreateTaskParams) any {
		args := map[string]any{"project_id": p.ProjectID, "title": p.Title}
		setString(args, "description", p.Description)
		setInt(args, "priority", p.Priority)
		return args
	})

	desc := "write release notes"
	env := callHandler(t, handler, types.CreateTaskParams{
		ProjectID:   1,
		Title:       "Release 1.0",
		Description: &desc,
	})
	if !env.Success {
		t.Fatalf("envelope failure: %s", env.Error)
	}

	want := map[string]any{
		"project_id":  float64(1),
		"title":       "Release 1.0",
		"description": "write release notes",
	}
	if !reflect.DeepEqual(gotParams, want) {
		t.Fatalf("wire params = %#v, want %#v (unset fields omitted)", gotParams, want)
	}
}

func TestConfigInfoNeverExposesToken(t *testing.T) {
	cfg := kanboard.Config{
		URL:        "https://x/jsonrpc.php",
		APIToken:   "super-secret-token",
		Username:   "alice",
		VerifySSL:  true,
		Timeout:    30,
		MaxRetries: 3,
		RetryDelay: 1.0,
	}

	info := configInfo(cfg)
	raw, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal config info: %v", err)
	}
	if strings.Contains(string(raw), "super-secret-token") {
		t.Fatal("config info leaked the API token")
	}
	if info["auth_mode"] != "user" {
		t.Fatalf("auth_mode = %v, want user for a named username", info["auth_mode"])
	}
	if info["username"] != "alice" {
		t.Fatalf("username = %v, want alice", info["username"])
	}
}

func TestConfigInfoApplicationMode(t *testing.T) {
	cfg := kanboard.Config{
		URL:      "https://x/jsonrpc.php",
		APIToken: "tok123",
		Username: kanboard.DefaultUsername,
	}
	info := configInfo(cfg)
	if info["auth_mode"] != "application" {
		t.Fatalf("auth_mode = %v, want application for the jsonrpc user", info["auth_mode"])
	}
}

func TestDiagnosticToolsAlwaysSucceedEnvelope(t *testing.T) {
	fake := &fakeRPC{t: t, respond: func(method string, params json.RawMessage, w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
	}}
	client := newFakeClient(t, fake)

	status := client.TestConnection(context.Background())
	env := types.Success(status)

	// Diagnostics report failures inside the payload, never as tool errors.
	if !env.Success {
		t.Fatal("diagnostic envelope must stay success:true")
	}
	if status.Connected {
		t.Fatal("status.Connected = true against a 401 endpoint")
	}
	if status.Error == "" {
		t.Fatal("status.Error is empty")
	}
}
