package main

import (
	"fmt"
	"strings"

	"github.com/penquinx/docsite/content"
	"github.com/penquinx/docsite/docs"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order [slug]",
	Short: "Print the reading order used for a page",
	Long:  "Print the reading order used when showing the page with the given slug, which tier it came from, and the page's neighbours.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOrder,
}

var crumbsCmd = &cobra.Command{
	Use:   "crumbs <slug>",
	Short: "Print the breadcrumb trail of a page",
	Args:  cobra.ExactArgs(1),
	RunE:  runCrumbs,
}

func init() {
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(crumbsCmd)
}

// slugArg normalizes a slug given on the command line, such as "/getting-started/index".
func slugArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.Join(docs.Normalize(content.SlugFromKey(args[0])), "/")
}

func runOrder(cmd *cobra.Command, args []string) error {
	site, err := load()
	if err != nil {
		return err
	}
	key := slugArg(args)
	out := cmd.OutOrStdout()
	order, tier := site.nav.Order(key)
	fmt.Fprintf(out, "tier: %s\n", tier)
	for _, k := range order {
		mark := " "
		if k == key {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, displayKey(k))
	}
	prev, next := site.nav.Neighbors(key)
	if prev != nil {
		fmt.Fprintf(out, "prev: %s\n", prev.Href)
	}
	if next != nil {
		fmt.Fprintf(out, "next: %s\n", next.Href)
	}
	return nil
}

func runCrumbs(cmd *cobra.Command, args []string) error {
	site, err := load()
	if err != nil {
		return err
	}
	key := slugArg(args)
	if _, err := site.nav.Resolve(content.SlugFromKey(key)); err != nil {
		return fmt.Errorf("%s: %w", displayKey(key), err)
	}
	out := cmd.OutOrStdout()
	for _, c := range site.nav.Breadcrumbs(key) {
		fmt.Fprintf(out, "%s -> %s\n", c.Label, c.Href)
	}
	return nil
}
