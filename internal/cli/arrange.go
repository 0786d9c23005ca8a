package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deck/internal/server"
	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/workspace"
)

// arrangeOptions holds the flags of the arrange command.
type arrangeOptions struct {
	mode   string
	width  float64
	height float64
	json   bool
}

// arrangeCommand creates the arrange command for printing a workspace layout.
func (c *CLI) arrangeCommand() *cobra.Command {
	var opts arrangeOptions

	cmd := &cobra.Command{
		Use:   "arrange [workspace.json]",
		Short: "Print the layout of a workspace file",
		Long: `Print the layout of a workspace file.

The arrange command loads a workspace document, applies the requested
arrangement mode and prints one transform per card: the frame it is drawn in,
its offset, scale, opacity and stacking order.

Without --mode the mode stored in the file is used. --width and --height
replace the stored viewport.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWorkspaceFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "arrangement mode: free, stack, split, focus, grid")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width (default: from file)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height (default: from file)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the layout as JSON")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)

	return cmd
}

// runArrange loads the workspace, arranges it and prints the result.
func (c *CLI) runArrange(ctx context.Context, input string, opts arrangeOptions) error {
	logger := loggerFromContext(withLogger(ctx, c.Logger))
	prog := newProgress(logger)

	ws, err := c.openWorkspace(input, logger)
	if err != nil {
		return fmt.Errorf("load workspace %s: %w", input, err)
	}
	if err := resizeViewport(ws, opts.width, opts.height); err != nil {
		return err
	}
	if opts.mode != "" {
		m, err := arrange.ParseMode(opts.mode)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMode, err, "mode %q", opts.mode)
		}
		ws.SetArrangementMode(m)
	}

	resp := server.Arrange(ws)
	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	prog.done("Arranged workspace", "cards", len(resp.Transforms), "mode", resp.Mode)
	printKeyValue("mode", resp.Mode.String())
	printKeyValue("cards", StyleNumber.Render(strconv.Itoa(len(resp.Transforms))))
	printKeyValue("area", formatRect(resp.Area.X, resp.Area.Y, resp.Area.Width, resp.Area.Height))
	if resp.Focused != "" {
		printKeyValue("focused", resp.Focused)
	}
	printNewline()
	printBlock(renderTransforms(ws, resp.Transforms))
	printNewline()
	printNextStep("Try another mode", fmt.Sprintf("%s arrange %s --mode %s", appName, input, resp.Mode.Next()))
	return nil
}

// renderTransforms renders transforms as a table in display order. The
// focused card is highlighted and hidden cards are dimmed.
func renderTransforms(ws *workspace.Workspace, transforms []arrange.Transform) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(transforms))
	for _, t := range transforms {
		typ := ""
		if c, ok := ws.Card(t.ID); ok {
			typ = string(c.Type)
		}
		rows = append(rows, []string{
			t.ID,
			typ,
			formatRect(t.Frame.X, t.Frame.Y, t.Frame.Width, t.Frame.Height),
			fmt.Sprintf("%s,%s", formatNum(t.Offset.X), formatNum(t.Offset.Y)),
			formatNum(t.Scale),
			formatNum(t.Opacity),
			strconv.Itoa(t.ZIndex),
		})
	}

	focused := ws.Focused()
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Card", "Type", "Frame", "Offset", "Scale", "Opacity", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(transforms) {
				return base
			}
			t := transforms[row]
			switch {
			case t.ID == focused:
				return base.Foreground(colorGreen).Bold(true)
			case t.Opacity == 0:
				return base.Foreground(colorDim)
			case col >= 3:
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})
	return tbl.Render()
}

// formatRect formats a rectangle as "x,y wxh".
func formatRect(x, y, w, h float64) string {
	return fmt.Sprintf("%s,%s %sx%s", formatNum(x), formatNum(y), formatNum(w), formatNum(h))
}

// formatNum prints a number without trailing zeros.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
