package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire clipboard history",
		Long: `Irreversibly deletes every recorded clip. Ids are never reused:
clips recorded after a clear continue the old id sequence.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runClear(cmd, v) },
	}

	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	addDBFlag(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, v *viper.Viper) error {
	if !v.GetBool("yes") {
		fmt.Print("Delete ALL clipboard history? This cannot be undone. [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if ans := strings.ToLower(strings.TrimSpace(line)); ans != "y" && ans != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	st, err := openStore(v)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	n, err := st.DeleteAll(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d clips.\n", n)
	return nil
}
