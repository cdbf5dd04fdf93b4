package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bline/tree2files/helper"
	"github.com/bline/tree2files/lang"
	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/tree"
	"github.com/bline/tree2files/share"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input]",
	Short: lang.T("Create the structure described by a tree diagram"),
	Long:  lang.T("Read a tree diagram from a file, a pipe or an editor, then create the corresponding directories and empty files"),
	Args:  cobra.MaximumNArgs(1),
	Run:   runGenerate,
}

var (
	stripRoot    bool
	dryRun       bool
	gitInit      bool
	assumeYes    bool
	showProgress bool
	editInput    bool
	interactive  bool
	fromMarkdown bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&stripRoot, "strip-root", false, lang.T("Create the top-level children directly, without the root directory"))
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, lang.T("Print planned operations without touching the filesystem"))
	generateCmd.Flags().BoolVar(&gitInit, "git-init", false, lang.T("Initialize a git repository in the created root"))
	generateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, lang.T("Skip the confirmation prompt"))
	generateCmd.Flags().BoolVar(&showProgress, "progress", false, lang.T("Show a progress bar"))
	generateCmd.Flags().BoolVar(&editInput, "edit", false, lang.T("Open an editor to paste the tree text"))
	generateCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, lang.T("Read the tree text interactively"))
	generateCmd.Flags().BoolVarP(&fromMarkdown, "markdown", "m", false, lang.T("Extract the tree from the first fenced code block"))
}

// resolveDiagram 依次尝试位置参数、管道、编辑器和交互输入取得树形图文本
func resolveDiagram(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		text := string(data)
		ext := strings.ToLower(filepath.Ext(args[0]))
		if fromMarkdown || ext == ".md" || ext == ".markdown" {
			text = helper.ExtractFencedBlock(text)
		}
		return text, nil
	}

	if (len(args) > 0 && args[0] == "-") || helper.IsPipeInput() {
		text, err := helper.ReadPipeContent()
		if err != nil {
			return "", err
		}
		if fromMarkdown {
			text = helper.ExtractFencedBlock(text)
		}
		return text, nil
	}

	if editInput {
		text, err := helper.ReadFromEditor()
		if err != nil {
			return "", err
		}
		if fromMarkdown {
			text = helper.ExtractFencedBlock(text)
		}
		return text, nil
	}

	if interactive {
		fmt.Println(lang.T("Paste the tree text, finish with an empty line"))
		return helper.ReadMultiline("")
	}

	return "", nil
}

func runGenerate(cmd *cobra.Command, args []string) {
	text, err := resolveDiagram(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, lang.T("Failed to read input")+": %v\n", err)
		os.Exit(1)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, lang.T("No input provided"))
		cmd.Help()
		os.Exit(1)
	}

	root, anomalies, err := scaffold.ParseString(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, lang.T("Failed to parse input")+": %v\n", err)
		os.Exit(1)
	}
	for _, a := range anomalies {
		fmt.Fprintf(os.Stderr, lang.T("Skipped line %d: %s\n"), a.Line, a.Reason)
	}
	if share.GetDebug() {
		helper.PrintWithLabel("解析统计", tree.Stats(root))
	}

	baseDir := workDir
	if baseDir == "" {
		baseDir = "."
	}

	if !assumeYes && !dryRun {
		fmt.Print(tree.Tree(root))
		fmt.Println(tree.Stats(root).String())
		ok, perr := helper.PromptYesNo(lang.T("Proceed with creation?")+" [Y/n] ", true)
		if perr != nil && perr != io.EOF {
			fmt.Fprintln(os.Stderr, perr)
			os.Exit(1)
		}
		if !ok {
			fmt.Println(lang.T("Canceled"))
			return
		}
	}

	opts := scaffold.MaterializeOptions{
		BaseDir:   baseDir,
		StripRoot: stripRoot,
		DryRun:    dryRun,
	}

	var bar *helper.Progress
	if showProgress && !dryRun {
		bar = helper.NewProgress(root.Name, tree.Stats(root).FileCount, helper.WithWidth(30), helper.WithPath())
		opts.Progress = func(current int, filePath string) {
			bar.Update(current, filePath)
		}
	}

	report, err := scaffold.Materialize(root, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, lang.T("Failed to create entries")+": %v\n", err)
		os.Exit(1)
	}
	if share.GetDebug() {
		helper.PrintWithLabel("创建结果", report)
	}

	if dryRun {
		for _, op := range report.Planned {
			fmt.Println(op)
		}
		fmt.Println(lang.T("Dry run, no changes were made"))
		return
	}

	targetRoot := baseDir
	if !stripRoot {
		targetRoot = filepath.Join(baseDir, root.Name)
	}
	fmt.Printf(lang.T("Created %d directories and %d files under %s\n"),
		report.DirsCreated, report.FilesCreated, targetRoot)
	if report.FilesSkipped > 0 {
		fmt.Printf(lang.T("Skipped %d existing files\n"), report.FilesSkipped)
	}

	if gitInit {
		if _, inRepo := helper.FindGitRoot(targetRoot); !inRepo {
			if err := helper.InitRepository(targetRoot); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println(lang.T("Initialized git repository"))
		}
	}
}
