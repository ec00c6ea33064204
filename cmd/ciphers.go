package cmd

import (
	"fmt"

	"github.com/envcrypt/envcrypt/internal/ui"
	"github.com/envcrypt/envcrypt/internal/vault"

	"github.com/spf13/cobra"
)

var CiphersCmd = &cobra.Command{
	Use:    "ciphers",
	Short:  "Lists the supported cipher suites",
	PreRun: initLogger,
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range vault.SupportedCiphers() {
			line := "    " + ui.Highlight.Sprint(name)
			if i == 0 {
				line += " " + ui.Muted.Sprint("default")
			}
			fmt.Println(line)
		}
	},
}

func init() {
	addCommonFlags(CiphersCmd)
}
