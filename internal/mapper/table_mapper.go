package mapper

import (
	"time"

	"github.com/odelgado/product-catalog/internal/model"
)

// displayDateLayout is the localized dd/mm/yyyy display format used by the
// product table.
const displayDateLayout = "02/01/2006"

// ToTableData projects a product list into the generic table structure the
// list page renders: fixed column descriptors plus one row per product with
// dates reformatted for display and an actions cell carrying the row id.
func ToTableData(products []model.Product) model.TableData {
	rows := make([]map[string]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, map[string]string{
			"id":            p.ID,
			"logo":          p.Logo,
			"name":          p.Name,
			"description":   p.Description,
			"date_released": formatDisplayDate(p.DateReleased),
			"date_revision": formatDisplayDate(p.DateRevision),
			"actions":       p.ID,
		})
	}

	return model.TableData{
		Columns: []model.TableColumn{
			{Key: "logo", Label: "Logo", Type: model.ColumnTypeImage},
			{Key: "name", Label: "Product name", Type: model.ColumnTypeText},
			{Key: "description", Label: "Description", Type: model.ColumnTypeText},
			{Key: "date_released", Label: "Release date", Type: model.ColumnTypeText},
			{Key: "date_revision", Label: "Revision date", Type: model.ColumnTypeText},
			{Key: "actions", Label: "Actions", Type: model.ColumnTypeActions},
		},
		Rows: rows,
	}
}

func formatDisplayDate(date time.Time) string {
	return date.Format(displayDateLayout)
}
