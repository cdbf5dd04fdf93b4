package scaffold

import (
	"fmt"
	"path/filepath"
)

// ProgressCallback 进度回调函数类型
type ProgressCallback func(current int, filePath string)

// TraverseOption 定义遍历选项
type TraverseOption struct {
	ContinueOnError  bool             // 遇到错误时是否继续
	Errors           []error          // 记录所有错误
	ProgressCallback ProgressCallback // 进度回调函数
	ProcessedFiles   int              // 已处理文件数
}

// TreeTraverser 对解析出的树做先序深度优先遍历。
// 子节点按源文本顺序访问，目录总是先于其子项被访问。
type TreeTraverser struct {
	root   *Node
	option *TraverseOption
}

// NewTreeTraverser 创建一个树遍历器
func NewTreeTraverser(root *Node) *TreeTraverser {
	return &TreeTraverser{root: root}
}

// SetOption 设置遍历选项
func (t *TreeTraverser) SetOption(option *TraverseOption) *TreeTraverser {
	t.option = option
	return t
}

// WithProgressCallback 设置进度回调函数
func (t *TreeTraverser) WithProgressCallback(callback ProgressCallback) *TreeTraverser {
	t.ensureOption()
	t.option.ProgressCallback = callback
	t.option.ProcessedFiles = 0
	return t
}

// WithContinueOnError 设置遇到错误时是否继续
func (t *TreeTraverser) WithContinueOnError(continueOnError bool) *TreeTraverser {
	t.ensureOption()
	t.option.ContinueOnError = continueOnError
	return t
}

// GetErrors 获取遍历过程中收集的错误
func (t *TreeTraverser) GetErrors() []error {
	if t.option == nil {
		return nil
	}
	return t.option.Errors
}

// HasErrors 检查遍历过程中是否有错误
func (t *TreeTraverser) HasErrors() bool {
	return t.option != nil && len(t.option.Errors) > 0
}

func (t *TreeTraverser) ensureOption() {
	if t.option == nil {
		t.option = &TraverseOption{Errors: make([]error, 0)}
	}
}

// frame 显式遍历栈中的一项
type frame struct {
	node  *Node
	path  string
	depth int
}

// TraverseTree 遍历整棵树
func (t *TreeTraverser) TraverseTree(visitor NodeVisitor) error {
	if t.root == nil {
		return nil
	}
	return t.Traverse(t.root, t.root.Name, 0, visitor)
}

// Traverse 从指定节点开始遍历。
// 使用显式栈而非递归，深度只受内存限制，恶意加深的输入不会耗尽调用栈。
func (t *TreeTraverser) Traverse(node *Node, path string, depth int, visitor NodeVisitor) error {
	t.ensureOption()
	if node == nil {
		return nil
	}

	stack := []frame{{node: node, path: path, depth: depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := t.visit(f, visitor); err != nil {
			if !t.option.ContinueOnError {
				return err
			}
			t.option.Errors = append(t.option.Errors, err)
			// 访问目录失败时不再进入其子项
			if f.node.IsDir {
				continue
			}
		}

		// 逆序压栈使子节点按记录顺序弹出
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			child := f.node.Children[i]
			stack = append(stack, frame{
				node:  child,
				path:  filepath.Join(f.path, child.Name),
				depth: f.depth + 1,
			})
		}
	}
	return nil
}

func (t *TreeTraverser) visit(f frame, visitor NodeVisitor) error {
	if f.node.IsDir {
		if err := visitor.VisitDirectory(f.node, f.path, f.depth); err != nil {
			return &traverseError{Path: f.path, NodeName: f.node.Name, Err: err}
		}
		return nil
	}

	if err := visitor.VisitFile(f.node, f.path, f.depth); err != nil {
		return &traverseError{Path: f.path, NodeName: f.node.Name, Err: err}
	}
	if t.option.ProgressCallback != nil {
		t.option.ProcessedFiles++
		t.option.ProgressCallback(t.option.ProcessedFiles, f.path)
	}
	return nil
}

// traverseError 包装访问单个节点时发生的错误
type traverseError struct {
	Path     string
	NodeName string
	Err      error
}

func (e *traverseError) Error() string {
	return fmt.Sprintf("%s (节点: %s): %v", e.Path, e.NodeName, e.Err)
}

func (e *traverseError) Unwrap() error {
	return e.Err
}
