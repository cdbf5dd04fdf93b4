package renders

import "fmt"

// TextRenderer 直接输出原始文本
type TextRenderer struct{}

// NewTextRenderer 创建纯文本渲染器
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render 原样输出内容
func (t *TextRenderer) Render(content string) error {
	if content == "" {
		return nil
	}
	fmt.Print(content)
	if content[len(content)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
