package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	zonesLimit int
	zonesPage  int
)

var zonesCmd = &cobra.Command{
	Use:   "zones [query]",
	Short: "List or search timezone identifiers",
	Long: `Lists the timezone identifiers known to the host, best matches first
when a query is given. Matching is fuzzy and case insensitive.

Example:
  worldclock zones kolkata`,
	Args: cobra.MaximumNArgs(1),
	RunE: runZones,
}

func runZones(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	page := db.Search(query, zonesPage, zonesLimit)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ZONE", "LABEL")
	for _, zone := range page.Items {
		t.Row(zone.ID, zone.Label)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "page %d of %d, %d zones\n", page.Page, page.Pages, page.Total)
	return nil
}

func init() {
	zonesCmd.Flags().IntVarP(&zonesLimit, "limit", "n", 20, "Zones per page (1-100)")
	zonesCmd.Flags().IntVarP(&zonesPage, "page", "p", 1, "Page to show")
}
