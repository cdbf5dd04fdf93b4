package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bline/tree2files/lang"
	"github.com/bline/tree2files/share"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: lang.T("Print version information"),
	Long:  lang.T("Print detailed version information of tree2files"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s: %s\n", lang.T("tree2files version"), share.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
