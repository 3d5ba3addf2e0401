package model

// ColumnType describes how a table cell should be rendered.
type ColumnType string

const (
	// ColumnTypeText renders the cell value as plain text.
	ColumnTypeText ColumnType = "text"
	// ColumnTypeImage renders the cell value as an image reference.
	ColumnTypeImage ColumnType = "image"
	// ColumnTypeActions renders the row action controls; the cell carries the row id.
	ColumnTypeActions ColumnType = "actions"
)

// TableColumn describes one column of the product table projection.
type TableColumn struct {
	Key   string
	Label string
	Type  ColumnType
}

// TableData is the presentation-only projection of a product list:
// ordered column descriptors plus one string-valued record per product.
// It is recomputed from the store on demand and never persisted.
type TableData struct {
	Columns []TableColumn
	Rows    []map[string]string
}
