package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/copyhist/internal/query"
)

func newListCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent clipboard history",
		Long: `Prints the most recent clips, newest first. With --search, only
clips whose content, title, or category contains the term (case-insensitive
substring) are shown.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runList(cmd, v) },
	}

	f := cmd.Flags()
	f.Int("limit", query.DefaultLimit, "maximum number of clips to show")
	f.String("search", "", "filter by substring of content, title, or category")
	addDBFlag(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runList(cmd *cobra.Command, v *viper.Viper) error {
	st, err := openStore(v)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	clips, err := query.New(st).List(cmd.Context(), v.GetInt("limit"), v.GetString("search"))
	if err != nil {
		return err
	}

	if len(clips) == 0 {
		fmt.Println("No clipboard history yet.")
		return nil
	}

	for _, c := range clips {
		fmt.Printf("[%d] %s | %s | %s\n", c.ID, c.CreatedAt, orDash(c.Category), orTitle(c.Title))
		fmt.Printf("      %s\n", preview(c.Content))
	}
	return nil
}

func orTitle(s *string) string {
	if s == nil || *s == "" {
		return "(no title yet)"
	}
	return *s
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// preview flattens content to one line and truncates it for display.
// Stored content is never truncated; this is display-only.
func preview(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	if len(line) > 80 {
		return line[:77] + "..."
	}
	return line
}
