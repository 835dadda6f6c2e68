package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penquinx/docsite/docs"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List published pages with their neighbours",
	Args:  cobra.NoArgs,
	RunE:  runPages,
}

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print the URL of every published page",
	Args:  cobra.NoArgs,
	RunE:  runSitemap,
}

var sitemapHost string

func init() {
	sitemapCmd.Flags().StringVar(&sitemapHost, "host", "", "Scheme and host to prefix, such as https://penquinx.dev")
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(sitemapCmd)
}

func runPages(cmd *cobra.Command, _ []string) error {
	site, err := load()
	if err != nil {
		return err
	}
	rows := [][]string{{"SLUG", "TITLE", "PREV", "NEXT"}}
	for _, k := range site.lib.Keys() {
		p, _ := site.lib.Lookup(k)
		prev, next := site.nav.Neighbors(k)
		rows = append(rows, []string{displayKey(k), p.Title, linkKey(prev), linkKey(next)})
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderTable(rows))
	return err
}

// renderTable pads each column to its widest cell. The last column is not padded.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var sb strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = lipgloss.NewStyle().Width(widths[i] + 2).Render(cell)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runSitemap(cmd *cobra.Command, _ []string) error {
	site, err := load()
	if err != nil {
		return err
	}
	host := strings.TrimSuffix(sitemapHost, "/")
	for _, k := range site.lib.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), host+site.nav.Href(k))
	}
	return nil
}

func linkKey(l *docs.Link) string {
	if l == nil {
		return "-"
	}
	return displayKey(l.Slug)
}
