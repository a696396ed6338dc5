package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "prompt-architect",
		Short:        "Embellish short ideas into image-generation prompts",
		Long:         "Prompt Architect turns a short seed idea into a detailed prompt for AI image generators.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newEnhanceCmd())
	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
