package scaffold

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrEmptyDocument 输入中没有任何可解析的条目
var ErrEmptyDocument = errors.New("no entries found in input")

// stackEntry 祖先栈中的一项
type stackEntry struct {
	level int
	node  *Node
}

// Parse 读取整个树形图文本并构建单根节点树。
// 第一条有效行充当根节点；不符合语法的行被跳过并记入返回的异常列表，
// 解析始终继续。层级跳跃的行挂到当前最近的祖先下，绝不报错。
func Parse(r io.Reader) (*Node, []Anomaly, error) {
	var (
		root      *Node
		anomalies []Anomaly
		stack     []stackEntry
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tok, empty, reason := classifyLine(scanner.Text())
		if reason != "" {
			anomalies = append(anomalies, Anomaly{Line: lineNo, Reason: reason})
			continue
		}
		if empty {
			continue
		}

		if root == nil {
			// 根的自身层级忽略，根总是目录，并以层级 0 打底祖先栈
			root = NewNode(tok.name, true, lineNo)
			stack = append(stack, stackEntry{level: 0, node: root})
			continue
		}

		level := tok.level
		// 零缩进且无分支标记的后续行视为漏写了标记，归为根的直接子级
		if level == 0 {
			level = 1
		}

		// 弹出层级不低于当前行的祖先
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			// 防御性恢复：栈被清空时重新挂回根
			stack = append(stack, stackEntry{level: 0, node: root})
		}
		parent := stack[len(stack)-1].node

		node := NewNode(tok.name, tok.dirHint, lineNo)
		parent.AddChild(node)
		// 文件节点同样入栈，后续出现更深的行时它会升级为目录
		stack = append(stack, stackEntry{level: level, node: node})
	}
	if err := scanner.Err(); err != nil {
		return nil, anomalies, err
	}
	if root == nil {
		return nil, anomalies, ErrEmptyDocument
	}
	return root, anomalies, nil
}

// ParseString 从字符串解析树形图
func ParseString(s string) (*Node, []Anomaly, error) {
	return Parse(strings.NewReader(s))
}
