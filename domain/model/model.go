// Package model contains the persisted entities of the service
package model

// Models lists every entity in migration order
func Models() []any {
	return []any{
		&Vendor{},
		&PurchaseOrder{},
		&HistoricalPerformance{},
	}
}
