package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/bline/tree2files/helper"
	"github.com/bline/tree2files/lang"
	"github.com/bline/tree2files/mcpserver"
	"github.com/bline/tree2files/share"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: lang.T("Start the MCP server"),
	Long:  lang.T("Expose tree parsing and scaffolding as MCP tools over stdio, sse or http"),
	Run:   runMCP,
}

var (
	mcpTransport string
	mcpPort      int
)

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "stdio", lang.T("Transport type (stdio, sse or http)"))
	mcpCmd.Flags().IntVar(&mcpPort, "port", share.SERVER_PORT, lang.T("Port for sse or http transport"))
}

func runMCP(cmd *cobra.Command, args []string) {
	srv := mcpserver.NewScaffoldServer()

	transport := mcpTransport
	if env := os.Getenv(share.PREFIX + "MCP_TRANSPORT"); env != "" {
		transport = env
	}
	port := mcpPort
	if env := os.Getenv(share.PREFIX + "MCP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	if share.GetDebug() {
		helper.PrintWithLabel("服务配置", map[string]any{"transport": transport, "port": port})
	}

	// stdio 传输下标准输出属于协议本身，启动信息一律走标准错误
	fmt.Fprintf(os.Stderr, lang.T("Starting MCP server with %s transport\n"), transport)

	switch transport {
	case "http":
		httpServer := server.NewStreamableHTTPServer(srv)
		if err := httpServer.Start(fmt.Sprintf(":%d", port)); err != nil {
			fmt.Fprintf(os.Stderr, lang.T("Server error")+": %v\n", err)
			os.Exit(1)
		}
	case "sse":
		sseServer := server.NewSSEServer(srv)
		if err := sseServer.Start(fmt.Sprintf(":%d", port)); err != nil {
			fmt.Fprintf(os.Stderr, lang.T("Server error")+": %v\n", err)
			os.Exit(1)
		}
	default:
		if err := server.ServeStdio(srv); err != nil {
			fmt.Fprintf(os.Stderr, lang.T("Server error")+": %v\n", err)
			os.Exit(1)
		}
	}
}
