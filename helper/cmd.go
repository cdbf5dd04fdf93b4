package helper

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/c-bata/go-prompt"

	"github.com/bline/tree2files/share"
)

// CommandExists checks if a command exists in the system PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

func ReadFromTerminal(promptText string) (string, error) {
	var result string
	done := make(chan struct{})
	once := &sync.Once{}

	p := prompt.New(
		func(in string) {
			result = in
			once.Do(func() { close(done) })
		},
		func(d prompt.Document) []prompt.Suggest {
			return nil
		},
		prompt.OptionPrefix(""), // 移除默认提示符
		prompt.OptionTitle(share.BUILDNAME),
		prompt.OptionPrefixTextColor(prompt.Blue),
		prompt.OptionInputTextColor(prompt.DefaultColor),
		prompt.OptionAddKeyBind(
			prompt.KeyBind{
				Key: prompt.ControlC,
				Fn: func(b *prompt.Buffer) {
					result = ""
					once.Do(func() { close(done) })
				},
			},
		),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline
		}),
	)

	// 手动输出提示符
	fmt.Print(promptText)

	go p.Run()
	<-done

	return result, nil
}

// ReadMultiline 逐行读取输入，空行结束
func ReadMultiline(promptText string) (string, error) {
	var lines []string
	for {
		line, err := ReadFromTerminal(promptText)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func ReadPipeContent() (string, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return StripAnsiCodes(string(content)), nil
}

// IsPipeInput 判断标准输入是否来自管道或重定向
func IsPipeInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// ReadFromEditor 打开编辑器让用户粘贴内容，编辑器取自环境变量，默认 vim
func ReadFromEditor() (string, error) {
	editor := os.Getenv(share.PREFIX + "EDITOR")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}
	if !CommandExists(editor) {
		return "", fmt.Errorf("editor %q not found in PATH", editor)
	}

	tempDir := os.TempDir()
	tempFile := filepath.Join(tempDir, "tree_input_"+randomString(8)+".txt")
	defer os.Remove(tempFile)

	var cmd *exec.Cmd
	if editor == "vim" || editor == "vi" {
		// +startinsert 让 vim 启动后直接进入插入模式
		cmd = exec.Command(editor, "+startinsert", tempFile)
	} else {
		cmd = exec.Command(editor, tempFile)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running editor: %w", err)
	}

	content, err := os.ReadFile(tempFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("error reading file: %w", err)
	}

	return strings.TrimRight(string(content), "\r\n"), nil
}

func PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	// Support \n, \r\n and lone \r
	scanner.Split(scanAnyLine)
	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return defaultYes, err
			}
			return defaultYes, io.EOF
		}
		ans := strings.TrimSpace(scanner.Text())
		if ans == "" {
			return defaultYes, nil
		}
		s := normalizeYN(ans)
		switch s {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Print("Please enter y or n: ")
		}
	}
}

// scanAnyLine is like bufio.ScanLines but also treats a lone '\r' as a line ending.
func scanAnyLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		// Trim optional preceding '\r'
		if i > 0 && data[i-1] == '\r' {
			return i + 1, data[:i-1], nil
		}
		return i + 1, data[:i], nil
	}
	if i := bytes.IndexByte(data, '\r'); i >= 0 { // handle lone CR
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// normalizeYN normalizes full-width and common Chinese yes/no inputs.
func normalizeYN(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	// Convert full-width ASCII to half-width
	rs := []rune(s)
	for i, r := range rs {
		if r >= 0xFF01 && r <= 0xFF5E {
			rs[i] = r - 0xFEE0
		}
	}
	s = string(rs)
	// Map common Chinese
	switch s {
	case "是", "好", "确定":
		return "yes"
	case "否", "不":
		return "no"
	}
	return s
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripAnsiCodes 去除终端转义序列
func StripAnsiCodes(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}
