package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/config"
	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/logging"
	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/pipeline"
	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "modreport <instance.json>",
	Short: "Generate a Mods Excel report from an ATLauncher instance.json",
	Long: `modreport reads an ATLauncher instance.json manifest and writes an Excel
report next to it, named "Mods {version}.xlsx": one row per installed mod with
its Modrinth metadata (or fallback values for mods from untrusted sources), a
filterable table, and a side panel of the unique categories.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logging.Init(logging.ParseLevel(cfg.LogLevel))

		builder := report.New(
			report.WithSheetName(cfg.Report.SheetName),
			report.WithCategoriesColumn(cfg.Report.CategoriesColumn),
			report.WithRowHeight(cfg.Report.RowHeight),
		)

		out, err := pipeline.New(builder).Run(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Excel report generated: %s\n", out)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("report failed", "error", err)
		os.Exit(1)
	}
}
