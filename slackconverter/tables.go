package slackconverter

import (
	"fmt"
	"strings"

	"github.com/rgonek/slack-blocks-converter/blocks"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) renderTableNode(node *extast.Table) error {
	var rows [][]blocks.Cell

	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *extast.TableHeader, *extast.TableRow:
			rows = append(rows, s.renderTableRowCells(row))
		}
	}

	if len(rows) == 0 {
		return nil
	}

	if len(rows) > blocks.MaxTableRows {
		s.addWarning(
			WarningDroppedFeature,
			node.Kind().String(),
			fmt.Sprintf("table has %d rows; rows beyond %d dropped", len(rows), blocks.MaxTableRows),
		)
		rows = rows[:blocks.MaxTableRows]
	}

	var opts []blocks.TableOption
	if s.config.TableAlignment {
		if settings, ok := columnSettings(node.Alignments); ok {
			opts = append(opts, blocks.WithColumnSettings(settings))
		}
	}

	table, err := blocks.NewTable(rows, opts...)
	if err != nil {
		return fmt.Errorf("failed to build table block: %w", err)
	}
	s.appendBlock(table)

	return nil
}

func (s *state) renderTableRowCells(row ast.Node) []blocks.Cell {
	var cells []blocks.Cell
	dropped := 0

	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if len(cells) >= blocks.MaxTableColumns {
			dropped++
			continue
		}
		cellText := s.renderTableCellNode(cell)
		if cellText == "" {
			cellText = " "
		}
		cells = append(cells, blocks.NewRawTextCell(cellText))
	}

	if dropped > 0 {
		s.addWarning(
			WarningDroppedFeature,
			row.Kind().String(),
			fmt.Sprintf("table row has %d cells; cells beyond %d dropped", len(cells)+dropped, blocks.MaxTableColumns),
		)
	}

	return cells
}

// renderTableCellNode returns the cell as plain text, raw_text cells carry no markup.
func (s *state) renderTableCellNode(node ast.Node) string {
	return strings.TrimSpace(s.plainTextChildren(node))
}

func columnSettings(alignments []extast.Alignment) ([]blocks.ColumnSetting, bool) {
	limit := len(alignments)
	if limit > blocks.MaxTableColumns {
		limit = blocks.MaxTableColumns
	}

	settings := make([]blocks.ColumnSetting, limit)
	aligned := false
	for i := 0; i < limit; i++ {
		switch alignments[i] {
		case extast.AlignLeft:
			settings[i].Align = blocks.AlignLeft
		case extast.AlignCenter:
			settings[i].Align = blocks.AlignCenter
		case extast.AlignRight:
			settings[i].Align = blocks.AlignRight
		default:
			continue
		}
		aligned = true
	}

	return settings, aligned
}
