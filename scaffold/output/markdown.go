package output

import (
	"strings"

	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/tree"
)

// MarkdownExporter 把树形图包装为 Markdown 文档
type MarkdownExporter struct {
	root *scaffold.Node
}

// NewMarkdownExporter 创建 Markdown 导出器
func NewMarkdownExporter(root *scaffold.Node) *MarkdownExporter {
	return &MarkdownExporter{root: root}
}

// Export 写出 Markdown 文件，树形图放在围栏代码块里
func (e *MarkdownExporter) Export(outputFile string) error {
	return writeFile(outputFile, []byte(e.Render()))
}

// Render 返回 Markdown 文本，供终端预览复用
func (e *MarkdownExporter) Render() string {
	var sb strings.Builder
	sb.WriteString("# " + e.root.Name + "\n\n")
	sb.WriteString("```\n")
	sb.WriteString(tree.Tree(e.root))
	sb.WriteString("```\n\n")
	sb.WriteString(tree.Stats(e.root).String() + "\n")
	return sb.String()
}
