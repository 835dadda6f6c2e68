package main

import (
	"fmt"

	"github.com/penquinx/docsite/content"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report ordered slugs and carousel items that have no page",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	site, err := load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	problems := 0
	for _, slug := range site.nav.Check() {
		fmt.Fprintf(out, "order: %q has no page\n", slug)
		problems++
	}
	for _, sec := range site.sections {
		for _, it := range sec.Items {
			if _, err := site.nav.Resolve(content.SlugFromKey(it.Slug)); err != nil {
				fmt.Fprintf(out, "carousel %s: %q has no page\n", sec.Name, it.Slug)
				problems++
			}
		}
	}
	if problems > 0 {
		return fmt.Errorf("%d problem%s found", problems, plural(problems))
	}
	fmt.Fprintf(out, "ok: %d pages\n", len(site.lib.Keys()))
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func displayKey(key string) string {
	if key == "" {
		return "(root)"
	}
	return key
}
