package tree

import (
	"strings"

	"github.com/bline/tree2files/scaffold"
)

// Tree 生成树状结构的字符串表示，类似于 Unix tree 命令。
// 子节点按源文本中的记录顺序输出，结果可以被解析器原样读回。
func Tree(node *scaffold.Node) string {
	return TreeWithDepth(node, 0)
}

// TreeWithDepth 生成树状结构，maxDepth 大于 0 时只展开到该深度
func TreeWithDepth(node *scaffold.Node, maxDepth int) string {
	if node == nil {
		return ""
	}

	var result strings.Builder
	buildTree(node, &result, maxDepth)
	return result.String()
}

// renderFrame 渲染栈中的一项
type renderFrame struct {
	node   *scaffold.Node
	prefix string
	isLast bool
	isRoot bool
	depth  int
}

// buildTree 用显式栈做先序输出，避免深树耗尽调用栈
func buildTree(node *scaffold.Node, result *strings.Builder, maxDepth int) {
	stack := []renderFrame{{node: node, isRoot: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.isRoot {
			if f.isLast {
				result.WriteString(f.prefix + "└── ")
			} else {
				result.WriteString(f.prefix + "├── ")
			}
		}
		if f.node.IsDir {
			result.WriteString(f.node.Name + "/")
		} else {
			result.WriteString(f.node.Name)
		}
		result.WriteString("\n")

		if !f.node.IsDir || len(f.node.Children) == 0 {
			continue
		}
		if maxDepth > 0 && f.depth >= maxDepth {
			continue
		}

		var childPrefix string
		switch {
		case f.isRoot:
			childPrefix = ""
		case f.isLast:
			childPrefix = f.prefix + "    "
		default:
			childPrefix = f.prefix + "│   "
		}

		// 逆序压栈让子节点按记录顺序弹出
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, renderFrame{
				node:   f.node.Children[i],
				prefix: childPrefix,
				isLast: i == len(f.node.Children)-1,
				depth:  f.depth + 1,
			})
		}
	}
}
