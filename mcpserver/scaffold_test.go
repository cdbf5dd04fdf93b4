package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcppkg "github.com/mark3labs/mcp-go/mcp"
)

const sampleDiagram = "project/\n├── cmd/\n│   └── main.go\n└── README.md\n"

// newToolCallRequest 构造一次工具调用请求
func newToolCallRequest(name string, args map[string]interface{}) mcppkg.CallToolRequest {
	return mcppkg.CallToolRequest{
		Request: mcppkg.Request{
			Method: string(mcppkg.MethodToolsCall),
		},
		Params: mcppkg.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func getToolHandler(t *testing.T, name string) func(context.Context, mcppkg.CallToolRequest) (*mcppkg.CallToolResult, error) {
	t.Helper()
	if toolHandlers == nil {
		NewScaffoldServer()
	}
	h, ok := toolHandlers[name]
	if !ok {
		t.Fatalf("handler for tool %s not found", name)
	}
	return h
}

func textFromResult(t *testing.T, r *mcppkg.CallToolResult) string {
	t.Helper()
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcppkg.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestScaffoldPreview(t *testing.T) {
	ctx := context.Background()
	hPreview := getToolHandler(t, "scaffold_preview")

	res, err := hPreview(ctx, newToolCallRequest("scaffold_preview", map[string]interface{}{"tree": sampleDiagram}))
	if err != nil {
		t.Fatalf("preview err: %v", err)
	}
	if res.IsError {
		t.Fatalf("preview should succeed: %s", textFromResult(t, res))
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(textFromResult(t, res)), &obj); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	rendered := obj["tree"].(string)
	if !strings.Contains(rendered, "└── README.md") {
		t.Fatalf("preview tree missing entries: %s", rendered)
	}
	if int(obj["directories"].(float64)) != 2 || int(obj["files"].(float64)) != 2 {
		t.Fatalf("preview stats mismatch: %v", obj)
	}
}

func TestScaffoldPreviewReportsSkippedLines(t *testing.T) {
	ctx := context.Background()
	hPreview := getToolHandler(t, "scaffold_preview")

	diagram := "root/\n  bad.txt\n├── ok.txt\n"
	res, err := hPreview(ctx, newToolCallRequest("scaffold_preview", map[string]interface{}{"tree": diagram}))
	if err != nil {
		t.Fatalf("preview err: %v", err)
	}

	var obj map[string]interface{}
	_ = json.Unmarshal([]byte(textFromResult(t, res)), &obj)
	skipped := obj["skipped"].([]interface{})
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped line, got %v", skipped)
	}
	if !strings.Contains(skipped[0].(string), "line 2") {
		t.Fatalf("skipped entry should carry line number: %v", skipped[0])
	}
}

func TestScaffoldPreviewMissingTree(t *testing.T) {
	ctx := context.Background()
	hPreview := getToolHandler(t, "scaffold_preview")

	res, err := hPreview(ctx, newToolCallRequest("scaffold_preview", map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handler should not fail hard: %v", err)
	}
	if !res.IsError {
		t.Fatalf("missing tree should yield an error result")
	}
}

func TestScaffoldPlanDoesNotTouchDisk(t *testing.T) {
	ctx := context.Background()
	hPlan := getToolHandler(t, "scaffold_plan")
	base := t.TempDir()

	res, err := hPlan(ctx, newToolCallRequest("scaffold_plan", map[string]interface{}{
		"tree":    sampleDiagram,
		"baseDir": base,
	}))
	if err != nil {
		t.Fatalf("plan err: %v", err)
	}

	var obj map[string]interface{}
	_ = json.Unmarshal([]byte(textFromResult(t, res)), &obj)
	ops := obj["operations"].([]interface{})
	if len(ops) != 4 {
		t.Fatalf("expected 4 planned operations, got %v", ops)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("read dir err: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("plan must not create entries, found %d", len(entries))
	}
}

func TestScaffoldApply(t *testing.T) {
	ctx := context.Background()
	hApply := getToolHandler(t, "scaffold_apply")
	base := t.TempDir()

	res, err := hApply(ctx, newToolCallRequest("scaffold_apply", map[string]interface{}{
		"tree":    sampleDiagram,
		"baseDir": base,
	}))
	if err != nil {
		t.Fatalf("apply err: %v", err)
	}
	if res.IsError {
		t.Fatalf("apply should succeed: %s", textFromResult(t, res))
	}

	for _, rel := range []string{"project/cmd/main.go", "project/README.md"} {
		if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("missing created entry %s: %v", rel, err)
		}
	}

	// 重复执行是幂等的，已有文件只被跳过
	res, err = hApply(ctx, newToolCallRequest("scaffold_apply", map[string]interface{}{
		"tree":    sampleDiagram,
		"baseDir": base,
	}))
	if err != nil {
		t.Fatalf("second apply err: %v", err)
	}
	var obj map[string]interface{}
	_ = json.Unmarshal([]byte(textFromResult(t, res)), &obj)
	if int(obj["filesCreated"].(float64)) != 0 {
		t.Fatalf("second apply should not create files: %v", obj)
	}
	if int(obj["filesSkipped"].(float64)) != 2 {
		t.Fatalf("second apply should skip existing files: %v", obj)
	}
}

func TestScaffoldApplyStripRoot(t *testing.T) {
	ctx := context.Background()
	hApply := getToolHandler(t, "scaffold_apply")
	base := t.TempDir()

	_, err := hApply(ctx, newToolCallRequest("scaffold_apply", map[string]interface{}{
		"tree":      sampleDiagram,
		"baseDir":   base,
		"stripRoot": true,
	}))
	if err != nil {
		t.Fatalf("apply err: %v", err)
	}

	if _, err := os.Stat(filepath.Join(base, "project")); !os.IsNotExist(err) {
		t.Fatalf("root directory should be omitted")
	}
	if _, err := os.Stat(filepath.Join(base, "cmd", "main.go")); err != nil {
		t.Fatalf("children should land under base: %v", err)
	}
}
