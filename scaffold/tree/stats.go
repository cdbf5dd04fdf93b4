package tree

import (
	"fmt"

	"github.com/bline/tree2files/scaffold"
)

// Statistics 树的统计信息
type Statistics struct {
	TotalNodes     int // 总节点数
	DirectoryCount int // 目录数量
	FileCount      int // 文件数量
	MaxDepth       int // 最大深度，根为 0
}

// Stats 返回树的统计信息
func Stats(node *scaffold.Node) Statistics {
	if node == nil {
		return Statistics{}
	}

	stats := Statistics{}
	type frame struct {
		node  *scaffold.Node
		depth int
	}
	stack := []frame{{node: node}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		stats.TotalNodes++
		if f.depth > stats.MaxDepth {
			stats.MaxDepth = f.depth
		}
		if f.node.IsDir {
			stats.DirectoryCount++
			for _, child := range f.node.Children {
				stack = append(stack, frame{node: child, depth: f.depth + 1})
			}
		} else {
			stats.FileCount++
		}
	}
	return stats
}

// String 返回统计信息的字符串表示
func (s Statistics) String() string {
	return fmt.Sprintf("%d directories, %d files, max depth %d",
		s.DirectoryCount, s.FileCount, s.MaxDepth)
}
