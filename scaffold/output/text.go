package output

import (
	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/tree"
)

// TextExporter 导出纯文本树形图，结果可被解析器原样读回
type TextExporter struct {
	root *scaffold.Node
}

// NewTextExporter 创建纯文本导出器
func NewTextExporter(root *scaffold.Node) *TextExporter {
	return &TextExporter{root: root}
}

// Export 写出文本文件
func (e *TextExporter) Export(outputFile string) error {
	return writeFile(outputFile, []byte(tree.Tree(e.root)))
}
