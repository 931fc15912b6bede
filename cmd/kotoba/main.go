package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/kotoba/internal/archive"
	"codeberg.org/snonux/kotoba/internal/cli"
	"codeberg.org/snonux/kotoba/internal/models"
	"codeberg.org/snonux/kotoba/internal/processor"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.ArchiveData {
		return archive.ArchiveData(filepath.Dir(flags.DBPath))
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if flags.BatchFile == "" && !flags.List && len(args) == 0 {
		return cmd.Help()
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	ctx := context.Background()

	switch {
	case flags.List:
		return proc.ListTranslations(ctx)

	case flags.BatchFile != "":
		return proc.ProcessBatch(ctx)

	default:
		return proc.ProcessSentence(ctx, args[0])
	}
}
