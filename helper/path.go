package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bline/tree2files/share"
)

// GetPath 返回用户目录下应用数据路径
func GetPath(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if sub == "" {
		return filepath.Join(home, share.PATH)
	}
	return filepath.Join(home, share.PATH, sub)
}

// SafeJoin 把相对路径拼接到基础目录下，拒绝逃出基础目录的路径
func SafeJoin(base string, elems ...string) (string, error) {
	joined := filepath.Join(append([]string{base}, elems...)...)
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	absJoined, err := filepath.Abs(joined)
	if err != nil {
		return "", err
	}
	if absJoined != absBase && !strings.HasPrefix(absJoined, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes base directory %q", filepath.Join(elems...), base)
	}
	return joined, nil
}
