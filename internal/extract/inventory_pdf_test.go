package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventoryPDFText = `BANCO ITAU PARAGUAY S.A.
SALDO DE INVENTARIO DE BILLETES AL: 12-08-2026
SUC: CIUDAD DEL ESTE
CLIENTE: DOCUMENTA /ITAU
TESORO EFECTIVO ATM
B I L L E T E S
100.000 10 0 2 0 1.000.000
50.000 5 1 0 0 250.000
SUB-TOTAL 15 1 2 0 1.250.000
TESORO EFECTIVO MDA. EXT.
BILLETES
100 3 0 0 0 300
TOTAL DEPOSITO 1.550.300
PAGINA 1 DE 1`

func TestInventoryPDF(t *testing.T) {
	records := InventoryPDF(inventoryPDFText, "INV BILLETES.pdf")
	require.Len(t, records, 3, "subtotal and total lines never count")

	first := records[0]
	assert.Equal(t, "12/08/2026", first.InventoryDate)
	assert.Equal(t, "PYG", first.Currency)
	assert.Equal(t, "CDE", first.Agency)
	assert.Equal(t, "TESORO EFECTIVO ATM (DOCUMENTA/ITAU)", first.Grouping)
	assert.Equal(t, "BILLETES", first.ValueType, "spaced letters collapse before the line walk")
	assert.EqualValues(t, 100000, first.Denomination)
	assert.EqualValues(t, 10, first.DepositQuality)
	assert.EqualValues(t, 0, first.DepositExchange)
	assert.EqualValues(t, 2, first.SwapQuality)
	assert.EqualValues(t, 0, first.Coins)
	assert.EqualValues(t, 1000000, first.Total)
	assert.Equal(t, "INV BILLETES.pdf", first.SourceFile)

	second := records[1]
	assert.EqualValues(t, 50000, second.Denomination)
	assert.EqualValues(t, 250000, second.Total)
	assert.Equal(t, "PYG", second.Currency)

	third := records[2]
	assert.Equal(t, "USD", third.Currency, "the MDA. EXT. grouping switches the running currency")
	assert.Equal(t, "TESORO EFECTIVO (DOCUMENTA/ITAU)", third.Grouping)
	assert.EqualValues(t, 100, third.Denomination)
	assert.EqualValues(t, 300, third.Total)
}

func TestInventoryPDF_RequiresDate(t *testing.T) {
	text := `SUC: ASUNCION
TESORO EFECTIVO
BILLETES
100.000 1 0 0 0 100.000`

	assert.Empty(t, InventoryPDF(text, "INV.pdf"), "without the title date nothing is trusted")
}

func TestInventoryPDF_CountLinesNeedContext(t *testing.T) {
	text := `SALDO DE INVENTARIO DE BILLETES AL: 12-08-2026
100.000 1 0 0 0 100.000
TESORO EFECTIVO
50.000 1 0 0 0 50.000
BILLETES
20.000 2 0 0 0 40.000`

	records := InventoryPDF(text, "INV.pdf")
	require.Len(t, records, 1, "counts before the grouping and value-type headings are orphans")
	assert.EqualValues(t, 20000, records[0].Denomination)
	assert.Equal(t, "TESORO EFECTIVO", records[0].Grouping, "no client mention, no suffix")
}

func TestInventoryPDF_AgencyFallsBackToRawCapture(t *testing.T) {
	text := `PLANILLA DE INVENTARIO DE BILLETES ATM AL: 05/08/2026
SUC: VILLARRICA
PICOS EFECTIVO
MONEDAS
500 0 0 0 12 6.000`

	records := InventoryPDF(text, "INV.pdf")
	require.Len(t, records, 1)
	assert.Equal(t, "VILLARRICA", records[0].Agency)
	assert.Equal(t, "05/08/2026", records[0].InventoryDate)
	assert.Equal(t, "PICOS EFECTIVO", records[0].Grouping)
	assert.Equal(t, "MONEDAS", records[0].ValueType)
	assert.EqualValues(t, 12, records[0].Coins)
}

func TestInventoryPDF_GroupingsShareDateAndAgency(t *testing.T) {
	text := `PLANILLA DE INVENTARIO DE BILLETES AL: 03-08-2026
SUC: ENCARNACION
TESORO EFECTIVO
BILLETES
100.000 1 0 0 0 100.000
MONEDAS
500 0 0 0 4 2.000
TESORO EFECTIVO ATM
BILLETES
50.000 2 0 0 0 100.000
MONEDAS
1.000 0 0 0 3 3.000
PICOS EFECTIVO
BILLETES
20.000 5 0 0 0 100.000
MONEDAS
500 0 0 0 10 5.000`

	records := InventoryPDF(text, "INV.pdf")
	require.Len(t, records, 6, "one line per value type per grouping")

	for _, r := range records {
		assert.Equal(t, "03/08/2026", r.InventoryDate)
		assert.Equal(t, "ENC", r.Agency)
	}
	assert.Equal(t, "TESORO EFECTIVO", records[0].Grouping)
	assert.Equal(t, "TESORO EFECTIVO", records[1].Grouping)
	assert.Equal(t, "TESORO EFECTIVO ATM", records[2].Grouping)
	assert.Equal(t, "PICOS EFECTIVO", records[4].Grouping)
	assert.Equal(t, "BILLETES", records[0].ValueType)
	assert.Equal(t, "MONEDAS", records[1].ValueType)
	assert.Equal(t, "MONEDAS", records[5].ValueType)
}

func TestInventoryPDF_SixCountsExactly(t *testing.T) {
	text := `SALDO DE INVENTARIO DE BILLETES AL: 12-08-2026
FAJOS EFECTIVO
BILLETES
100.000 1 0 0 0
100.000 1 0 0 0 100.000 7`

	assert.Empty(t, InventoryPDF(text, "INV.pdf"), "five or seven counts is noise, not a denomination line")
}
