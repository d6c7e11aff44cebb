package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bibsite/internal/config"
	"bibsite/internal/ledger"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported publication bundles",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	root, err := siteRoot()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	led, err := ledger.Open(config.LedgerPath(root))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer led.Close()

	bundles, err := led.List()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if len(bundles) == 0 {
		fmt.Println("No publications imported yet")
		return
	}

	rows := make([][]string, 0, len(bundles))
	for _, b := range bundles {
		rows = append(rows, []string{
			b.Slug,
			b.Key,
			b.Year,
			b.WrittenAt.Format("2006-01-02"),
			b.Checksum[:8],
		})
	}
	renderTable([]string{"SLUG", "KEY", "YEAR", "WRITTEN", "CHECKSUM"}, rows)
	fmt.Printf("%d publications\n", len(bundles))
}
