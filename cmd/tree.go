package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bline/tree2files/config"
	"github.com/bline/tree2files/helper/renders"
	"github.com/bline/tree2files/lang"
	"github.com/bline/tree2files/scaffold"
	"github.com/bline/tree2files/scaffold/output"
	"github.com/bline/tree2files/scaffold/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree [input]",
	Short: lang.T("Preview the structure parsed from a tree diagram"),
	Long:  lang.T("Parse a tree diagram and print the normalized structure without creating anything"),
	Args:  cobra.MaximumNArgs(1),
	Run:   runTree,
}

var (
	showStats  bool
	outputFile string
	renderTree bool
)

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().BoolVarP(&showStats, "stats", "s", false, lang.T("Show directory and file statistics"))
	treeCmd.Flags().StringVarP(&outputFile, "out", "o", "", lang.T("Output file name"))
	treeCmd.Flags().BoolVar(&renderTree, "render", false, lang.T("Render the preview as markdown in the terminal"))
	treeCmd.Flags().BoolVarP(&fromMarkdown, "markdown", "m", false, lang.T("Extract the tree from the first fenced code block"))
}

func runTree(cmd *cobra.Command, args []string) {
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

	if outputFile != "" {
		if err := output.Output(root, outputFile); err != nil {
			fmt.Fprintf(os.Stderr, lang.T("Failed to export")+": %v\n", err)
			os.Exit(1)
		}
		fmt.Printf(lang.T("Exported to %s\n"), outputFile)
		return
	}

	// --render 强制 Markdown，否则跟随配置的渲染方式
	useMarkdown := renderTree || config.GetConfigWithDefault(config.KeyRenderer, "text") == "markdown"
	if useMarkdown {
		doc := output.NewMarkdownExporter(root).Render()
		if err := renders.GetRenderer("markdown").Render(doc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Print(tree.Tree(root))
	if showStats {
		fmt.Printf("\n%s\n", tree.Stats(root).String())
	}
}
