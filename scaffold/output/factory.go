package output

import (
	"fmt"
	"path/filepath"

	"github.com/bline/tree2files/scaffold"
)

// Output 将解析出的树导出为指定格式的文件
func Output(root *scaffold.Node, outputFile string) error {
	exporter, err := GetExporter(root, outputFile)
	if err != nil {
		return err
	}
	return exporter.Export(outputFile)
}

// GetExporter 根据输出文件扩展名返回对应的导出器
func GetExporter(root *scaffold.Node, outputFile string) (Exporter, error) {
	if root == nil {
		return nil, fmt.Errorf("no tree to export")
	}
	switch filepath.Ext(outputFile) {
	case ".txt":
		return NewTextExporter(root), nil
	case ".md":
		return NewMarkdownExporter(root), nil
	case ".json":
		return NewJSONExporter(root), nil
	case ".pdf":
		return NewPDFExporter(root), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(outputFile))
	}
}
