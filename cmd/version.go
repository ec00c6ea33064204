package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is stamped by the release pipeline via -ldflags.
var Version = "dev"

var VersionCmd = &cobra.Command{
	Use:    "version",
	Short:  "Shows the envcrypt version",
	PreRun: initLogger,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("envcrypt", "alligator2", "green", true)
		banner.Print()
		fmt.Printf("\nenvcrypt %s\n", Version)
	},
}

func init() {
	addCommonFlags(VersionCmd)
}
