package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trails/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List maze variants",
	Long:  `Shows every registered maze variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, v := range variants {
		idWidth = max(idWidth, len(v.ID))
		titleWidth = max(titleWidth, len(v.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "-----------")
	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, v.ID, titleWidth, v.Title, v.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'trails play <id>' to play.")
}
