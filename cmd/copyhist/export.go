package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/copyhist/internal/export"
)

func newExportCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full history as CSV",
		Long: `Writes every recorded clip as CSV, newest first. With no file
argument the CSV goes to stdout.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runExport(cmd, v, path)
		},
	}

	addDBFlag(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, v *viper.Viper, path string) error {
	st, err := openStore(v)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	clips, err := st.ListAll(cmd.Context())
	if err != nil {
		return err
	}

	if path == "" {
		return export.WriteCSV(os.Stdout, clips)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteCSV(f, clips); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Printf("Exported %d clips to %s\n", len(clips), path)
	return nil
}
