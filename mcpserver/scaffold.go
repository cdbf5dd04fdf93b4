package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var toolHandlers map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// RegisterScaffoldTools 将树形图解析与落盘工具注册到 MCP 服务器
func RegisterScaffoldTools(s *server.MCPServer) {
	if s == nil {
		return
	}
	toolHandlers = make(map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error))

	// scaffold_preview
	toolPreview := mcp.NewTool(
		"scaffold_preview",
		mcp.WithDescription("解析树形图文本，返回规范化的树、统计信息与被跳过的行"),
		mcp.WithString("tree", mcp.Required(), mcp.Description("树形图文本，支持制表符画线与 ASCII 两种写法")),
		mcp.WithNumber("maxDepth", mcp.Description("预览的最大深度（0 表示不限制）")),
	)
	s.AddTool(toolPreview, scaffoldPreview)
	toolHandlers["scaffold_preview"] = scaffoldPreview

	// scaffold_plan
	toolPlan := mcp.NewTool(
		"scaffold_plan",
		mcp.WithDescription("演练一次落盘，返回将要执行的操作列表，不改动文件系统"),
		mcp.WithString("tree", mcp.Required(), mcp.Description("树形图文本")),
		mcp.WithString("baseDir", mcp.Description("目标基础目录，默认当前目录")),
		mcp.WithBoolean("stripRoot", mcp.Description("是否省略根目录，默认 false")),
	)
	s.AddTool(toolPlan, scaffoldPlan)
	toolHandlers["scaffold_plan"] = scaffoldPlan

	// scaffold_apply
	toolApply := mcp.NewTool(
		"scaffold_apply",
		mcp.WithDescription("按树形图创建目录和空文件，已有条目保持原样"),
		mcp.WithString("tree", mcp.Required(), mcp.Description("树形图文本")),
		mcp.WithString("baseDir", mcp.Description("目标基础目录，默认当前目录")),
		mcp.WithBoolean("stripRoot", mcp.Description("是否省略根目录，默认 false")),
	)
	s.AddTool(toolApply, scaffoldApply)
	toolHandlers["scaffold_apply"] = scaffoldApply
}
