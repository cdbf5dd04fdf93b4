package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bline/tree2files/helper"
	"github.com/bline/tree2files/share"
)

// MaterializeOptions 控制树的落盘行为
type MaterializeOptions struct {
	BaseDir   string           // 目标基础目录，默认当前目录
	StripRoot bool             // 不创建根目录，其子项直接落在 BaseDir 下
	DryRun    bool             // 只收集操作计划，不改动文件系统
	Progress  ProgressCallback // 文件创建进度回调
}

// Report 汇总一次落盘的结果
type Report struct {
	DirsCreated  int      // 新建目录数
	DirsExisting int      // 已存在的目录数
	FilesCreated int      // 新建文件数
	FilesSkipped int      // 已存在而保持原样的文件数
	Planned      []string // DryRun 收集的操作描述
}

// Materialize 按记录顺序将树落盘。目录创建是幂等的，文件只在缺失时创建，
// 已有文件从不触碰。任何文件系统错误都立即中止整个过程并返回。
func Materialize(root *Node, opts MaterializeOptions) (*Report, error) {
	if root == nil {
		return nil, errors.New("nil tree")
	}
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}

	m := &materializer{opts: opts, report: &Report{}}
	tr := NewTreeTraverser(root).WithContinueOnError(false)
	if opts.Progress != nil {
		tr.WithProgressCallback(opts.Progress)
	}

	if opts.StripRoot {
		// 根只用来定位子项，自身不落盘
		for _, child := range root.Children {
			if err := tr.Traverse(child, child.Name, 0, m); err != nil {
				return m.report, err
			}
		}
		return m.report, nil
	}

	if err := tr.TraverseTree(m); err != nil {
		return m.report, err
	}
	return m.report, nil
}

// materializer 实现 NodeVisitor，把节点映射为文件系统操作
type materializer struct {
	opts   MaterializeOptions
	report *Report
}

// VisitDirectory 幂等地确保目录存在
func (m *materializer) VisitDirectory(node *Node, path string, depth int) error {
	target, err := helper.SafeJoin(m.opts.BaseDir, path)
	if err != nil {
		return err
	}

	info, serr := os.Lstat(target)
	if serr == nil {
		if !info.IsDir() {
			return fmt.Errorf("a non-directory entry already exists at %s", target)
		}
		m.report.DirsExisting++
		return nil
	}
	if !os.IsNotExist(serr) {
		return serr
	}

	if m.opts.DryRun {
		m.report.DirsCreated++
		m.plan("mkdir -p " + target)
		return nil
	}
	if err := os.MkdirAll(target, share.DIR_MODE); err != nil {
		return err
	}
	m.report.DirsCreated++
	return nil
}

// VisitFile 只在文件缺失时创建空文件，已存在的文件原样保留
func (m *materializer) VisitFile(node *Node, path string, depth int) error {
	target, err := helper.SafeJoin(m.opts.BaseDir, path)
	if err != nil {
		return err
	}

	info, serr := os.Lstat(target)
	if serr == nil {
		if info.IsDir() {
			return fmt.Errorf("a directory already exists at %s, expected a file", target)
		}
		m.report.FilesSkipped++
		return nil
	}
	if !os.IsNotExist(serr) {
		return serr
	}

	if m.opts.DryRun {
		m.report.FilesCreated++
		m.plan("touch " + target)
		return nil
	}

	// 先补齐父目录，名字里夹带分隔符时文件也能落到位
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, share.DIR_MODE); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, share.FILE_MODE)
	if err != nil {
		if os.IsExist(err) {
			// Lstat 与 OpenFile 之间有并发写入者抢先创建，按已存在处理
			m.report.FilesSkipped++
			return nil
		}
		return err
	}
	m.report.FilesCreated++
	return f.Close()
}

func (m *materializer) plan(op string) {
	m.report.Planned = append(m.report.Planned, op)
}
