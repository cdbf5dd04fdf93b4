package helper

import (
	"strings"
	"testing"
)

func TestExtractFencedBlock(t *testing.T) {
	t.Run("提取第一个代码块", func(t *testing.T) {
		source := strings.Join([]string{
			"# 项目结构",
			"",
			"下面是目录布局：",
			"",
			"```",
			"project/",
			"├── cmd/",
			"│   └── main.go",
			"└── README.md",
			"```",
			"",
			"```",
			"second block",
			"```",
		}, "\n")

		got := ExtractFencedBlock(source)
		want := strings.Join([]string{
			"project/",
			"├── cmd/",
			"│   └── main.go",
			"└── README.md",
		}, "\n")
		if got != want {
			t.Errorf("提取结果不符\n得到:\n%s\n期望:\n%s", got, want)
		}
	})

	t.Run("带语言标注的围栏", func(t *testing.T) {
		source := "```text\nroot/\n    a.txt\n```\n"
		got := ExtractFencedBlock(source)
		if got != "root/\n    a.txt" {
			t.Errorf("应保留代码块内的缩进: %q", got)
		}
	})

	t.Run("没有代码块时原样返回", func(t *testing.T) {
		source := "root/\n├── a.txt\n"
		if got := ExtractFencedBlock(source); got != source {
			t.Errorf("无代码块时应原样返回: %q", got)
		}
	})
}
