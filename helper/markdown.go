package helper

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractFencedBlock 提取 markdown 文本中第一个围栏代码块的内容。
// 树形图贴进聊天或文档时通常包在 ``` 里；没有代码块时原样返回，
// 缩进式代码块不处理，因为剥掉前导空格会破坏树的层级。
func ExtractFencedBlock(source string) string {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var block string
	found := false
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok {
			var buf bytes.Buffer
			lines := fcb.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				buf.Write(segment.Value(src))
			}
			block = buf.String()
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if !found {
		return source
	}
	return strings.TrimRight(block, "\n")
}
