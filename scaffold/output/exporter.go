package output

import (
	"os"
	"path/filepath"

	"github.com/bline/tree2files/share"
)

// Exporter 把解析出的树写成一种输出格式
type Exporter interface {
	Export(outputFile string) error
}

// writeFile 落盘前补齐输出文件的父目录
func writeFile(outputFile string, data []byte) error {
	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, share.DIR_MODE); err != nil {
			return err
		}
	}
	return os.WriteFile(outputFile, data, share.FILE_MODE)
}
