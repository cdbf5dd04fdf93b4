package renders

// Renderer 终端输出渲染接口
type Renderer interface {
	Render(content string) error
}

// GetRenderer 根据配置的渲染方式返回渲染器，未知值回退为纯文本
func GetRenderer(name string) Renderer {
	switch name {
	case "markdown":
		renderer, err := NewMarkdownRenderer()
		if err != nil {
			return NewTextRenderer()
		}
		return renderer
	default:
		return NewTextRenderer()
	}
}
