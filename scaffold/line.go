package scaffold

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bline/tree2files/share"
)

// lineToken 一行分类后的结果
type lineToken struct {
	level   int
	name    string
	dirHint bool
}

// Anomaly 记录一条被跳过的行及其原因，解析会继续进行
type Anomaly struct {
	Line   int    // 行号，从 1 开始
	Reason string // 跳过原因
}

func (a Anomaly) String() string {
	return fmt.Sprintf("line %d: %s", a.Line, a.Reason)
}

// 缩进单位固定为 4 个字符宽：竖线接 3 个空格，或 4 个空格
var indentUnits = []string{"    ", "│   ", "|   "}

// 分支标记，排在前面的优先匹配；裸 ── 视为残缺的中间分支
var branchMarkers = []string{"├──", "└──", "|--", "`--", "+--", "──"}

// classifyLine 把一行原始文本解析为 (层级, 名称, 目录提示)。
// empty 为 true 表示该行不产生节点也不是错误；reason 非空表示该行
// 不符合语法，调用方应跳过并记录诊断。
func classifyLine(raw string) (tok lineToken, empty bool, reason string) {
	line := stripComment(raw)
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return tok, true, ""
	}

	rest, groups := consumeIndent(line)

	// 整单位消费后残留的前导空白说明缩进不是整数个单位
	if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		return tok, false, fmt.Sprintf("indentation is not a multiple of the %d-character unit", share.INDENT_WIDTH)
	}

	rest, hasMarker := consumeMarker(rest)
	name := strings.TrimSpace(rest)

	// 只剩连接符的行是纯装饰，按空行处理
	if name == "" || isConnectorOnly(name) {
		return tok, true, ""
	}
	if r, _ := utf8.DecodeRuneInString(name); isConnectorRune(r) {
		return tok, false, fmt.Sprintf("unrecognized glyph sequence before %q", name)
	}

	tok.level = groups
	if hasMarker {
		tok.level++
	}

	if strings.HasSuffix(name, "/") {
		tok.dirHint = true
		name = strings.TrimSpace(strings.TrimSuffix(name, "/"))
		if name == "" {
			return tok, true, ""
		}
	}
	tok.name = name
	return tok, false, ""
}

// stripComment 截掉第一个注释起始符之后的内容，# 与 // 先出现者生效。
// 名字里合法包含这些序列的条目无法表示，这是格式本身的限制。
func stripComment(s string) string {
	cut := -1
	if i := strings.Index(s, "#"); i >= 0 {
		cut = i
	}
	if i := strings.Index(s, "//"); i >= 0 && (cut < 0 || i < cut) {
		cut = i
	}
	if cut >= 0 {
		return s[:cut]
	}
	return s
}

// consumeIndent 从行首贪婪地消费完整缩进单位，返回剩余文本和单位数
func consumeIndent(s string) (string, int) {
	groups := 0
	for {
		matched := false
		for _, unit := range indentUnits {
			if strings.HasPrefix(s, unit) {
				s = s[len(unit):]
				groups++
				matched = true
				break
			}
		}
		if !matched {
			return s, groups
		}
	}
}

// consumeMarker 消费一个分支标记，标记为层级额外贡献 1
func consumeMarker(s string) (string, bool) {
	for _, m := range branchMarkers {
		if strings.HasPrefix(s, m) {
			return s[len(m):], true
		}
	}
	return s, false
}

// isConnectorRune 判断是否树形图连接符号，包含制表符画线区和 ASCII 竖线
func isConnectorRune(r rune) bool {
	return (r >= 0x2500 && r <= 0x257F) || r == '|'
}

// isConnectorOnly 判断文本是否只由连接符号和空白组成
func isConnectorOnly(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}
		if !isConnectorRune(r) {
			return false
		}
	}
	return true
}
