package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/bline/tree2files/share"
)

// NewScaffoldServer 创建 MCP 服务器并注册全部树形图工具
func NewScaffoldServer() *server.MCPServer {
	s := server.NewMCPServer(
		share.MCP_SERVER_NAME,
		share.VERSION,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	RegisterScaffoldTools(s)
	return s
}
