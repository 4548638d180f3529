package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/copyhist/internal/clip"
	"go.klb.dev/copyhist/internal/query"
	"go.klb.dev/copyhist/internal/store"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "copy <id>",
		Short:   "Copy a stored clip back to the system clipboard",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return runCopy(cmd, v, id)
		},
	}

	addDBFlag(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy(cmd *cobra.Command, v *viper.Viper, id int64) error {
	st, err := openStore(v)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	c, err := query.New(st).ByID(cmd.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		// An id miss is a normal outcome, not a failure.
		fmt.Printf("No item with id %d\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	if err := clip.New().Write(c.Content); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	fmt.Printf("Copied item %d back to clipboard.\n", c.ID)
	return nil
}
