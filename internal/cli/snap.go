package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deck/internal/server"
	"github.com/matzehuels/deck/pkg/snap"
)

// snapCommand creates the snap command for previewing where a drop lands.
func (c *CLI) snapCommand() *cobra.Command {
	var (
		id     string
		x, y   float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "snap [workspace.json]",
		Short: "Preview where a card would snap if dropped at a point",
		Long: `Preview where a card would snap if dropped at a point.

The snap command proposes the top-left corner (--x, --y) for a card and
prints the position it would settle at after magnetic snapping to other
cards, the workspace edges and the grid, together with the alignment guides
that would be shown. The workspace file is not modified.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWorkspaceFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnap(cmd.Context(), args[0], id, x, y, asJSON)
		},
	}

	cmd.Flags().StringVar(&id, "card", "", "id of the card being dropped")
	cmd.Flags().Float64Var(&x, "x", 0, "proposed left edge")
	cmd.Flags().Float64Var(&y, "y", 0, "proposed top edge")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

// runSnap loads the workspace and prints the snap preview.
func (c *CLI) runSnap(ctx context.Context, input, id string, x, y float64, asJSON bool) error {
	logger := loggerFromContext(withLogger(ctx, c.Logger))

	ws, err := c.openWorkspace(input, logger)
	if err != nil {
		return fmt.Errorf("load workspace %s: %w", input, err)
	}
	resp, err := server.Snap(ws, id, x, y)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	pos := fmt.Sprintf("%s,%s", formatNum(resp.Position.X), formatNum(resp.Position.Y))
	if resp.Snapped {
		printSuccess("%s snaps to %s", resp.Card, StyleHighlight.Render(pos))
	} else {
		printInfo("%s stays at %s", resp.Card, StyleValue.Render(pos))
	}
	printKeyValue("proposed", fmt.Sprintf("%s,%s", formatNum(resp.Proposed.X), formatNum(resp.Proposed.Y)))
	if resp.Edges != "" {
		printKeyValue("edges", resp.Edges)
	}
	for _, g := range resp.Guides {
		printDetail("%s", formatGuide(g))
	}
	if mode := ws.Mode(); mode.Managed() {
		printWarning("%s mode arranges cards; dragging %s reorders it instead", mode, resp.Card)
	}
	return nil
}

// formatGuide describes one alignment guide.
func formatGuide(g snap.Guide) string {
	return fmt.Sprintf("%s guide at %s (%s)", g.Orientation, formatNum(g.Pos), g.Source)
}
