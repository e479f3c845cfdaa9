// Package classify decides what a pending document is and whether it may be
// processed at all. Classification runs on filenames first because branches
// follow a loose naming convention; document bodies only break ties.
package classify

// DocType is the closed set of document kinds the consolidator understands.
type DocType int

const (
	TypeUnknown DocType = iota
	// TypeStatementCashATM is a cash movement statement for ATM operations.
	TypeStatementCashATM
	// TypeStatementCashBank is a cash movement statement for teller operations.
	TypeStatementCashBank
	// TypeStatementBundleATM is a sealed-bundle movement statement, always ATM.
	TypeStatementBundleATM
	TypeInventoryATM
	TypeInventoryBank
	// TypeInventoryPending is an inventory whose ATM/bank side is still
	// undecided; PDF bodies resolve it, spreadsheets default to bank.
	TypeInventoryPending
)

func (t DocType) String() string {
	switch t {
	case TypeStatementCashATM:
		return "EFECT_ATM"
	case TypeStatementCashBank:
		return "EFECT_BANCO"
	case TypeStatementBundleATM:
		return "BULTOS_ATM"
	case TypeInventoryATM:
		return "INVENTARIO_ATM"
	case TypeInventoryBank:
		return "INVENTARIO_BANCO"
	case TypeInventoryPending:
		return "INVENTARIO"
	default:
		return "DESCONOCIDO"
	}
}

// IsInventory reports whether the type is any of the inventory kinds,
// including the still-unresolved one.
func (t DocType) IsInventory() bool {
	switch t {
	case TypeInventoryATM, TypeInventoryBank, TypeInventoryPending:
		return true
	}
	return false
}

// Extractable reports whether an extractor exists for the type. A gated-in
// document of an extractable type that still produces no records is treated
// as an extraction failure rather than as foreign noise.
func (t DocType) Extractable() bool {
	switch t {
	case TypeStatementCashATM, TypeStatementCashBank, TypeStatementBundleATM,
		TypeInventoryATM, TypeInventoryBank:
		return true
	}
	return false
}
