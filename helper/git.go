package helper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// InitRepository 在指定目录初始化一个git仓库
func InitRepository(path string) error {
	if _, err := git.PlainInit(path, false); err != nil {
		return fmt.Errorf("初始化仓库失败: %w", err)
	}
	return nil
}

func IsGitRoot(path string) bool {
	gitDir := filepath.Join(path, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		return false
	}

	// 确认是目录而不是文件
	return info.IsDir()
}

// FindGitRoot 查找给定路径所属的git项目根目录
func FindGitRoot(path string) (string, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	// 从当前目录开始向上查找 .git 目录
	currentPath := absPath
	for {
		gitDir := filepath.Join(currentPath, ".git")
		info, err := os.Stat(gitDir)
		if err == nil && info.IsDir() {
			return currentPath, true
		}

		parentPath := filepath.Dir(currentPath)
		// 如果已经到达根目录，则停止搜索
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return "", false
}
