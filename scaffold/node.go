package scaffold

import "strings"

// Node 表示从树形图中解析出的一个文件系统条目
type Node struct {
	Name     string  // 条目名，图形符号和缩进已去除
	IsDir    bool    // 是否目录
	Line     int     // 来源行号，从 1 开始，用于诊断
	Children []*Node // 子节点，保持源文本中的出现顺序
	Parent   *Node
}

// NewNode 创建一个节点
func NewNode(name string, isDir bool, line int) *Node {
	return &Node{
		Name:  name,
		IsDir: isDir,
		Line:  line,
	}
}

// AddChild 追加子节点并建立父子关系。
// 文件节点一旦挂上子节点即升级为目录，目录属性由结构决定。
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
	n.IsDir = true
}

// IsRoot 是否根节点
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Path 返回从根到该节点的相对路径，以 / 分隔
func (n *Node) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	parts := []string{}
	for cur := n; cur != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	// 反转为从根开始的顺序
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Depth 返回节点深度，根节点为 0
func (n *Node) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}
