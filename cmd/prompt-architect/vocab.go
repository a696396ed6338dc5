package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joestump/prompt-architect/internal/config"
	"github.com/joestump/prompt-architect/internal/enhancer"
)

func newVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "Print the subject categories in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			vocab, err := enhancer.LoadVocabulary(cfg.Enhancer.VocabularyFile)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tKEYWORDS")
			for _, c := range vocab.Categories {
				fmt.Fprintf(tw, "%s\t%s\n", c.Name, strings.Join(c.Keywords, ", "))
			}
			fmt.Fprintf(tw, "%s\t(fallback)\n", enhancer.CategoryGeneral)
			return tw.Flush()
		},
	}
}
