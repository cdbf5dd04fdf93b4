package renders

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 使用 glamour 在终端中渲染 Markdown
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建一个新的 Markdown 渲染器
func NewMarkdownRenderer() (*MarkdownRenderer, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化 Markdown 渲染器失败: %v", err)
	}

	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染并输出内容，渲染失败时退回原始文本
func (m *MarkdownRenderer) Render(content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	rendered, err := m.renderer.Render(content)
	if err != nil {
		fmt.Print(content)
		return nil
	}

	// 将连续的多个空行压缩为单个空行
	for strings.Contains(rendered, "\n\n\n") {
		rendered = strings.ReplaceAll(rendered, "\n\n\n", "\n\n")
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}

	fmt.Print(rendered)
	return nil
}
