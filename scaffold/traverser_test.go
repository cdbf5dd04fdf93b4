package scaffold

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree(t *testing.T) *Node {
	t.Helper()
	input := strings.Join([]string{
		"root/",
		"├── a/",
		"│   ├── a1.txt",
		"│   └── a2.txt",
		"└── b.txt",
	}, "\n")
	root, anomalies, err := ParseString(input)
	require.NoError(t, err)
	require.Empty(t, anomalies)
	return root
}

// TestTraversePreOrder 测试先序深度优先遍历顺序
func TestTraversePreOrder(t *testing.T) {
	root := buildSampleTree(t)

	var visited []string
	visitor := VisitorFunc(func(node *Node, path string, depth int) error {
		visited = append(visited, path)
		return nil
	})

	err := NewTreeTraverser(root).TraverseTree(visitor)
	assert.NoError(t, err)

	// 目录先于其子项，兄弟按源文本顺序
	assert.Equal(t, []string{
		"root",
		"root/a",
		"root/a/a1.txt",
		"root/a/a2.txt",
		"root/b.txt",
	}, visited)
}

// TestTraverseDepth 测试深度传递
func TestTraverseDepth(t *testing.T) {
	root := buildSampleTree(t)

	depths := map[string]int{}
	visitor := VisitorFunc(func(node *Node, path string, depth int) error {
		depths[node.Name] = depth
		return nil
	})

	err := NewTreeTraverser(root).TraverseTree(visitor)
	assert.NoError(t, err)
	assert.Equal(t, 0, depths["root"])
	assert.Equal(t, 1, depths["a"])
	assert.Equal(t, 2, depths["a1.txt"])
	assert.Equal(t, 1, depths["b.txt"])
}

// TestTraverseStopsOnError 默认遇错即停
func TestTraverseStopsOnError(t *testing.T) {
	root := buildSampleTree(t)
	boom := errors.New("boom")

	var visited []string
	visitor := VisitorFunc(func(node *Node, path string, depth int) error {
		visited = append(visited, node.Name)
		if node.Name == "a1.txt" {
			return boom
		}
		return nil
	})

	err := NewTreeTraverser(root).TraverseTree(visitor)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a1.txt")
	assert.Equal(t, []string{"root", "a", "a1.txt"}, visited)
}

// TestTraverseContinueOnError 容错模式收集错误并继续
func TestTraverseContinueOnError(t *testing.T) {
	root := buildSampleTree(t)

	var visited []string
	visitor := VisitorFunc(func(node *Node, path string, depth int) error {
		visited = append(visited, node.Name)
		if node.Name == "a1.txt" {
			return errors.New("boom")
		}
		return nil
	})

	traverser := NewTreeTraverser(root).WithContinueOnError(true)
	err := traverser.TraverseTree(visitor)
	assert.NoError(t, err)
	assert.True(t, traverser.HasErrors())
	assert.Len(t, traverser.GetErrors(), 1)
	assert.Equal(t, []string{"root", "a", "a1.txt", "a2.txt", "b.txt"}, visited)
}

// TestTraverseSkipsFailedDirectory 目录访问失败时跳过其子项
func TestTraverseSkipsFailedDirectory(t *testing.T) {
	root := buildSampleTree(t)

	var visited []string
	visitor := VisitorFunc(func(node *Node, path string, depth int) error {
		visited = append(visited, node.Name)
		if node.Name == "a" {
			return errors.New("denied")
		}
		return nil
	})

	traverser := NewTreeTraverser(root).WithContinueOnError(true)
	err := traverser.TraverseTree(visitor)
	assert.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "b.txt"}, visited)
}

// TestTraverseProgressCallback 进度回调只统计成功访问的文件
func TestTraverseProgressCallback(t *testing.T) {
	root := buildSampleTree(t)

	var counts []int
	var files []string
	traverser := NewTreeTraverser(root).WithProgressCallback(func(current int, filePath string) {
		counts = append(counts, current)
		files = append(files, filePath)
	})

	visitor := VisitorFunc(func(node *Node, path string, depth int) error { return nil })
	err := traverser.TraverseTree(visitor)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, counts)
	assert.Equal(t, []string{"root/a/a1.txt", "root/a/a2.txt", "root/b.txt"}, files)
}

// TestTraverseNilRoot 空树直接返回
func TestTraverseNilRoot(t *testing.T) {
	err := NewTreeTraverser(nil).TraverseTree(VisitorFunc(func(*Node, string, int) error {
		t.Fatal("不应访问任何节点")
		return nil
	}))
	assert.NoError(t, err)
}
