package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bline/tree2files/helper"
	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/tree"
)

// parseTreeArgument 取出并解析 tree 参数，失败时返回已就绪的错误结果
func parseTreeArgument(req mcp.CallToolRequest) (*scaffold.Node, []string, *mcp.CallToolResult) {
	text, err := req.RequireString("tree")
	if err != nil {
		return nil, nil, mcp.NewToolResultError("missing or invalid tree parameter: required argument \"tree\" not found")
	}
	root, anomalies, err := scaffold.ParseString(text)
	if err != nil {
		return nil, nil, mcp.NewToolResultError(err.Error())
	}
	skipped := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		skipped = append(skipped, a.String())
	}
	return root, skipped, nil
}

func scaffoldPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, skipped, errResult := parseTreeArgument(req)
	if errResult != nil {
		return errResult, nil
	}
	maxDepth := req.GetInt("maxDepth", 0)

	stats := tree.Stats(root)
	return mcp.NewToolResultText(helper.ToJSON(map[string]any{
		"tree":        tree.TreeWithDepth(root, maxDepth),
		"directories": stats.DirectoryCount,
		"files":       stats.FileCount,
		"maxDepth":    stats.MaxDepth,
		"skipped":     skipped,
	})), nil
}

func scaffoldPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, skipped, errResult := parseTreeArgument(req)
	if errResult != nil {
		return errResult, nil
	}

	report, err := scaffold.Materialize(root, scaffold.MaterializeOptions{
		BaseDir:   req.GetString("baseDir", "."),
		StripRoot: req.GetBool("stripRoot", false),
		DryRun:    true,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(helper.ToJSON(map[string]any{
		"operations":  report.Planned,
		"directories": report.DirsCreated,
		"files":       report.FilesCreated,
		"skipped":     skipped,
	})), nil
}

func scaffoldApply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, skipped, errResult := parseTreeArgument(req)
	if errResult != nil {
		return errResult, nil
	}

	report, err := scaffold.Materialize(root, scaffold.MaterializeOptions{
		BaseDir:   req.GetString("baseDir", "."),
		StripRoot: req.GetBool("stripRoot", false),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(helper.ToJSON(map[string]any{
		"directoriesCreated":  report.DirsCreated,
		"directoriesExisting": report.DirsExisting,
		"filesCreated":        report.FilesCreated,
		"filesSkipped":        report.FilesSkipped,
		"skipped":             skipped,
	})), nil
}
