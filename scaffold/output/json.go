package output

import (
	"encoding/json"

	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/tree"
)

// JSONExporter 把树导出为嵌套的 JSON 结构
type JSONExporter struct {
	root *scaffold.Node
}

// NewJSONExporter 创建 JSON 导出器
func NewJSONExporter(root *scaffold.Node) *JSONExporter {
	return &JSONExporter{root: root}
}

type jsonNode struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonDocument struct {
	Tree  *jsonNode `json:"tree"`
	Stats jsonStats `json:"stats"`
}

type jsonStats struct {
	Directories int `json:"directories"`
	Files       int `json:"files"`
	MaxDepth    int `json:"maxDepth"`
}

// Export 写出 JSON 文件
func (e *JSONExporter) Export(outputFile string) error {
	stats := tree.Stats(e.root)
	doc := jsonDocument{
		Tree: convertNode(e.root),
		Stats: jsonStats{
			Directories: stats.DirectoryCount,
			Files:       stats.FileCount,
			MaxDepth:    stats.MaxDepth,
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(outputFile, append(data, '\n'))
}

func convertNode(n *scaffold.Node) *jsonNode {
	out := &jsonNode{Name: n.Name, Type: "file"}
	if n.IsDir {
		out.Type = "directory"
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, convertNode(child))
	}
	return out
}
