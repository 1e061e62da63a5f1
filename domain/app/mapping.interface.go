package app

import "context"

// SampleCustomerName names the preview customer when the row has no name column.
const SampleCustomerName = "Sample Customer"

type ColumnMapper interface {
	AutoMap(columns []string) []ColumnMapping
	Override(mappings []ColumnMapping, index int, role MappedTo) ([]ColumnMapping, error)
	BuildCustomer(row RawRow, mappings []ColumnMapping, fallbackName string) Customer
	Suggest(ctx context.Context, columns []string, rows []RawRow) []ColumnMapping
}
