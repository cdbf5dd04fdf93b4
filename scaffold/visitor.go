package scaffold

// NodeVisitor 定义了节点访问器的接口
type NodeVisitor interface {
	// VisitDirectory 访问目录节点
	VisitDirectory(node *Node, path string, depth int) error
	// VisitFile 访问文件节点
	VisitFile(node *Node, path string, depth int) error
}

// VisitorFunc 以函数形式实现 NodeVisitor，目录和文件走同一处理
type VisitorFunc func(node *Node, path string, depth int) error

func (f VisitorFunc) VisitDirectory(node *Node, path string, depth int) error {
	return f(node, path, depth)
}

func (f VisitorFunc) VisitFile(node *Node, path string, depth int) error {
	return f(node, path, depth)
}
