package helper

import (
	"fmt"
	"strings"
	"time"
)

// Progress 终端进度条，跟随文件创建逐个推进。
// 落盘是顺序进行的，调用方在单一 goroutine 中驱动它。
type Progress struct {
	total     int
	current   int
	width     int
	title     string
	lastPath  string
	startTime time.Time
	showPath  bool
	finished  bool
}

// ProgressOption 进度条选项
type ProgressOption func(*Progress)

// WithWidth 设置进度条宽度
func WithWidth(width int) ProgressOption {
	return func(p *Progress) {
		p.width = width
	}
}

// WithPath 在进度条后显示当前创建的文件路径
func WithPath() ProgressOption {
	return func(p *Progress) {
		p.showPath = true
	}
}

// NewProgress 创建进度条，total 为将要创建的文件总数
func NewProgress(title string, total int, opts ...ProgressOption) *Progress {
	p := &Progress{
		total:     total,
		width:     50, // 进度条宽度
		title:     title,
		startTime: time.Now(),
	}

	// 应用选项
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Update 推进到指定进度并记录刚创建的文件路径
func (p *Progress) Update(current int, path string) {
	if p.finished {
		return
	}
	p.current = current
	p.lastPath = path
	p.render()
}

// Finish 补满进度、输出总用时并换行
func (p *Progress) Finish() {
	if p.finished {
		return
	}
	p.current = p.total
	p.lastPath = ""
	p.finished = true
	p.render()
	fmt.Printf(" (%s)\n", formatDuration(time.Since(p.startTime)))
}

func (p *Progress) render() {
	if p.total == 0 {
		return
	}

	current := p.current
	if current > p.total {
		current = p.total
	}
	filled := current * p.width / p.total

	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	var display strings.Builder
	display.WriteString(fmt.Sprintf("\r%s [%s] %d/%d", p.title, bar, current, p.total))

	if p.showPath && p.lastPath != "" {
		display.WriteString(" " + truncatePath(p.lastPath, 40))
	}

	// 路径变短时用空格抹掉上一帧的残留
	display.WriteString(strings.Repeat(" ", 8))

	fmt.Print(display.String())
}

// truncatePath 超长路径保留末尾部分，前缀以 … 表示
func truncatePath(path string, max int) string {
	runes := []rune(path)
	if len(runes) <= max {
		return path
	}
	return "…" + string(runes[len(runes)-max+1:])
}

// formatDuration 格式化时间显示
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) - minutes*60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
