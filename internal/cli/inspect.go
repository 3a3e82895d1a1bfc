package cli

import (
	"context"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/overlay/pkg/io"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect <file|->",
		Short: "Summarize the shapes and dropped blocks of a GOG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the parse cache")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path string, noCache bool) error {
	res, err := c.parseSource(ctx, path, noCache)
	if err != nil {
		return err
	}
	doc := res.doc

	out := c.out
	out.line(StyleTitle.Render(displayName(path)))
	if len(doc.Shapes) > 0 {
		out.line(shapeTable(doc))
	}
	out.stats(len(doc.Shapes), len(doc.Diagnostics), res.cached)

	if len(doc.Diagnostics) == 0 {
		out.success("No dropped blocks")
		return nil
	}
	out.line("")
	out.warning("%d dropped %s", len(doc.Diagnostics), plural(len(doc.Diagnostics), "block", "blocks"))
	for _, d := range doc.Diagnostics {
		out.diagnostic(d)
	}
	return nil
}

// shapeTable renders one row per shape.
func shapeTable(doc *pkgio.Document) string {
	rows := make([][]string, len(doc.Shapes))
	for i, s := range doc.Shapes {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			s.Kind,
			shapeName(s),
			shapeForm(s),
			strconv.Itoa(s.Line),
			strconv.Itoa(len(s.Positions)),
			strconv.Itoa(s.ExplicitFields()),
		}
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Name", "Form", "Line", "Positions", "Explicit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeading.Padding(0, 1)
			case col == 1:
				return cellStyle.Inherit(styleKind)
			case col == 0 || col == 4:
				return cellStyle.Foreground(colorDim)
			}
			return cellStyle
		})
	return t.Render()
}

func shapeName(s pkgio.Shape) string {
	if s.Text != "" {
		return s.Text
	}
	if f, ok := s.Fields["name"]; ok && f.Explicit {
		if name, ok := f.Value.(string); ok {
			return name
		}
	}
	return "—"
}

func shapeForm(s pkgio.Shape) string {
	if s.Relative {
		return "relative"
	}
	return "absolute"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
