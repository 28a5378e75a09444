package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrTooManyRows is returned when a table exceeds MaxTableRows.
	ErrTooManyRows = errors.New("table has too many rows")
	// ErrTooManyColumns is returned when a table row exceeds MaxTableColumns.
	ErrTooManyColumns = errors.New("table row has too many columns")
	// ErrBlockIDTooLong is returned when a block_id exceeds MaxBlockIDLength.
	ErrBlockIDTooLong = errors.New("block_id is too long")
)

// CellTypeRawText is the only cell kind produced for tables.
const CellTypeRawText = "raw_text"

// Cell is a literal-text table cell.
type Cell struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewRawTextCell creates a raw_text cell.
func NewRawTextCell(text string) Cell {
	return Cell{Type: CellTypeRawText, Text: text}
}

// ColumnAlign controls horizontal alignment of a table column.
type ColumnAlign string

const (
	AlignLeft   ColumnAlign = "left"
	AlignCenter ColumnAlign = "center"
	AlignRight  ColumnAlign = "right"
)

// ColumnSetting configures one table column.
type ColumnSetting struct {
	Align     ColumnAlign `json:"align,omitempty"`
	IsWrapped bool        `json:"is_wrapped,omitempty"`
}

func (c ColumnSetting) Map() map[string]any {
	m := map[string]any{}
	if c.Align != "" {
		m["align"] = string(c.Align)
	}
	if c.IsWrapped {
		m["is_wrapped"] = true
	}
	return m
}

// Table is the Block Kit table block. Construct it with NewTable.
type Table struct {
	Rows           [][]Cell
	BlockID        string
	ColumnSettings []ColumnSetting
}

// TableOption customizes a table at construction.
type TableOption func(*Table)

// WithBlockID sets the block_id of a table.
func WithBlockID(id string) TableOption {
	return func(t *Table) {
		t.BlockID = id
	}
}

// WithColumnSettings sets per-column settings of a table.
func WithColumnSettings(settings []ColumnSetting) TableOption {
	return func(t *Table) {
		t.ColumnSettings = settings
	}
}

// NewTable creates a table block, rejecting input that violates Slack's limits.
func NewTable(rows [][]Cell, opts ...TableOption) (*Table, error) {
	table := &Table{Rows: rows}
	for _, opt := range opts {
		opt(table)
	}

	if len(table.Rows) > MaxTableRows {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRows, len(table.Rows), MaxTableRows)
	}
	for i, row := range table.Rows {
		if len(row) > MaxTableColumns {
			return nil, fmt.Errorf("%w: row %d has %d > %d", ErrTooManyColumns, i, len(row), MaxTableColumns)
		}
	}
	if n := utf8.RuneCountInString(table.BlockID); n > MaxBlockIDLength {
		return nil, fmt.Errorf("%w: %d > %d", ErrBlockIDTooLong, n, MaxBlockIDLength)
	}

	return table, nil
}

func (t *Table) BlockType() Type { return TypeTable }

func (t *Table) Map() map[string]any {
	rows := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]any, 0, len(row))
		for _, cell := range row {
			cells = append(cells, map[string]any{
				"type": cell.Type,
				"text": cell.Text,
			})
		}
		rows = append(rows, cells)
	}

	m := map[string]any{
		"type": string(TypeTable),
		"rows": rows,
	}
	if t.BlockID != "" {
		m["block_id"] = t.BlockID
	}
	if len(t.ColumnSettings) > 0 {
		settings := make([]any, 0, len(t.ColumnSettings))
		for _, setting := range t.ColumnSettings {
			settings = append(settings, setting.Map())
		}
		m["column_settings"] = settings
	}
	return m
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map())
}
