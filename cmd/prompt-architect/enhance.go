package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/prompt-architect/internal/config"
	"github.com/joestump/prompt-architect/internal/enhancer"
	"github.com/joestump/prompt-architect/internal/logging"
)

func newEnhanceCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "enhance <seed prompt...>",
		Short: "Enhance a seed prompt once and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level, cfg.Log.Format)

			e, err := enhancer.New(cfg)
			if err != nil {
				return err
			}
			seed := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			if t, ok := e.(*enhancer.Template); ok && explain {
				res, err := t.Generate(seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "category:    %s\n", res.Category)
				fmt.Fprintf(out, "adjectives:  %s\n", strings.Join(res.Adjectives, ", "))
				fmt.Fprintf(out, "style:       %s\n", res.Style)
				fmt.Fprintf(out, "mood:        %s\n", res.Mood)
				fmt.Fprintf(out, "environment: %s\n", res.Environment)
				fmt.Fprintf(out, "lens:        %s\n\n", res.Lens)
				fmt.Fprintln(out, res.Text)
				return nil
			}

			text, err := e.Enhance(cmd.Context(), seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "print the category and chosen terms (template variant only)")
	return cmd
}
