package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventorySheets(t *testing.T) {
	sheet := sheetOf(
		[]string{"PLANILLA DE INVENTARIO DE BILLETES BANCO AL", ":", "12-08-2026"},
		[]string{"(SUC: ENCARNACION)"},
		[]string{"DIVISA", "AGRUPACION", "TIPO", "DENOMINACION", "CAL.DEP", "CJE", "CAL.CANJE", "MON", "TOTAL"},
		[]string{"GUARANIES", "TESORO BANCO.....", "B I L L E T E S", "100.000", "50", "0", "2", "0", "5.000.000"},
		[]string{"DOLARES", "TESORO BANCO", "BILLETES GRANDES", "100", "10", "", "", "", "1.000"},
		[]string{"GUARANIES", "PICOS", "MONEDAS", "SIN DATO"},
		[]string{"", "FAJOS", "BILLETES", "500"},
	)

	records := InventorySheets([]Sheet{sheet}, "INV BILLETES BCO.xlsx")
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "12/08/2026", first.InventoryDate, "dashes in the title date become slashes")
	assert.Equal(t, "PYG", first.Currency)
	assert.Equal(t, "ENC", first.Agency)
	assert.Equal(t, "TESORO BANCO", first.Grouping, "trailing dot leaders are stripped")
	assert.Equal(t, "BILLETES", first.ValueType, "spaced single letters are rejoined")
	assert.EqualValues(t, 100000, first.Denomination)
	assert.EqualValues(t, 50, first.DepositQuality)
	assert.EqualValues(t, 0, first.DepositExchange)
	assert.EqualValues(t, 2, first.SwapQuality)
	assert.EqualValues(t, 0, first.Coins)
	assert.EqualValues(t, 5000000, first.Total)
	assert.Equal(t, "INV BILLETES BCO.xlsx", first.SourceFile)

	second := records[1]
	assert.Equal(t, "USD", second.Currency)
	assert.Equal(t, "BILLETES GRANDES", second.ValueType, "multi-letter labels stay untouched")
	assert.EqualValues(t, 100, second.Denomination)
	assert.EqualValues(t, 0, second.Coins, "missing count columns default to zero")
	assert.EqualValues(t, 1000, second.Total)
}

func TestInventorySheets_HeaderlessSheet(t *testing.T) {
	sheet := sheetOf(
		[]string{"GUARANIES", "TESORO", "BILLETES", "50.000", "1", "0", "0", "0", "50.000"},
	)

	records := InventorySheets([]Sheet{sheet}, "INV.xlsx")
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].InventoryDate, "no title means no date; rows still count")
	assert.Equal(t, "", records[0].Agency)
}

func TestInventorySheets_StoredFloatCounts(t *testing.T) {
	sheet := sheetOf(
		[]string{"GUARANIES", "TESORO", "BILLETES", "100.000", "15.000000000000002", "0", "0", "0", "1500000"},
	)

	records := InventorySheets([]Sheet{sheet}, "INV.xlsx")
	require.Len(t, records, 1)
	assert.EqualValues(t, 15, records[0].DepositQuality,
		"a round-trip storage tail reads as its decoded count")
	assert.EqualValues(t, 1500000, records[0].Total)
}

func TestInventorySheets_SlashTitleDate(t *testing.T) {
	sheet := sheetOf(
		[]string{"SALDO DE INVENTARIO DE BILLETES AL: 5/8/2026"},
		[]string{"GUARANIES", "TESORO", "BILLETES", "2.000", "0", "0", "0", "0", "0"},
	)

	records := InventorySheets([]Sheet{sheet}, "INV.xlsx")
	require.Len(t, records, 1)
	assert.Equal(t, "5/8/2026", records[0].InventoryDate)
}
