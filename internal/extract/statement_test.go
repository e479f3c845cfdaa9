package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashStatement(t *testing.T) {
	sheet := sheetOf(
		[]string{"ESTADO DE CUENTA EFECTIVO BANCO DEL : 15/08/2026"},
		[]string{"SUC: CASA MATRIZ - TURNO 1"},
		[]string{"CLIENTE: BANCO ITAU"},
		[]string{"SALDO ANTERIOR", "1.000.000"},
		[]string{"INGRESOS"},
		[]string{"12/08/2026", "CAJA CENTRAL", "741258", "2.500.000"},
		[]string{"MOTIVO X"},
		[]string{"13/08/2026", "CAJA 2", "852369", "1.000.000", "500"},
		[]string{"TOTAL INGRESOS", "3.500.000"},
		[]string{"EGRESOS"},
		[]string{"14/08/2026", "CAJA 1", "963741", "750.000"},
		[]string{"TOTALES", "4.250.000"},
		[]string{"INFORME DE PROCESOS"},
		[]string{"15/08/2026", "CAJA 9", "111111", "999"},
	)

	records := CashStatement([]Sheet{sheet}, ClassificationBank, "EC EFECTIVO BCO.xlsx")
	require.Len(t, records, 3, "rows after INFORME DE PROCESOS are never read")

	first := records[0]
	assert.Equal(t, "12/08/2026", first.OperationDate)
	assert.Equal(t, "CAJA CENTRAL", first.Branch)
	assert.Equal(t, "741258", first.Receipt)
	assert.Nil(t, first.Bundles)
	assert.Equal(t, "2500000", first.Amount.String())
	assert.Equal(t, "PYG", first.Currency)
	assert.Equal(t, DirectionIn, first.Direction)
	assert.Equal(t, ClassificationBank, first.Classification)
	assert.Equal(t, "15/08/2026", first.FileDate)
	assert.Equal(t, "INGRESOS", first.Reason)
	assert.Equal(t, "ASU", first.Agency)
	assert.Equal(t, "EC EFECTIVO BCO.xlsx", first.SourceFile)

	second := records[1]
	assert.Equal(t, "MOTIVO X", second.Reason, "a lone text row labels the rows below it")
	assert.Equal(t, "1000000", second.Amount.String(), "the widest numeric candidate wins")

	third := records[2]
	assert.Equal(t, DirectionOut, third.Direction)
	assert.Equal(t, "EGRESOS", third.Reason, "TOTAL INGRESOS cleared the sticky label")
	assert.Equal(t, "750000", third.Amount.String())
}

func TestCashStatement_MinimalLabeledSheet(t *testing.T) {
	sheet := sheetOf(
		[]string{"INGRESOS"},
		[]string{"01/01/2024", "ASU", "123456", "1.000.000"},
		[]string{"MOTIVO X"},
		[]string{"02/01/2024", "ASU", "654321", "2.000.000"},
		[]string{"TOTAL"},
	)

	records := CashStatement([]Sheet{sheet}, ClassificationBank, "EC EFECTIVO BCO.xlsx")
	require.Len(t, records, 2)

	assert.Equal(t, DirectionIn, records[0].Direction)
	assert.Equal(t, "INGRESOS", records[0].Reason)
	assert.Equal(t, "ASU", records[0].Branch)
	assert.Equal(t, "123456", records[0].Receipt)
	assert.Equal(t, "1000000", records[0].Amount.String())

	assert.Equal(t, DirectionIn, records[1].Direction)
	assert.Equal(t, "MOTIVO X", records[1].Reason)
	assert.Equal(t, "654321", records[1].Receipt)
	assert.Equal(t, "2000000", records[1].Amount.String())
}

func TestCashStatement_DollarHeader(t *testing.T) {
	sheet := sheetOf(
		[]string{"ESTADO DE CUENTA EFECTIVO ATM DEL : 10/08/2026"},
		[]string{"MONEDA: DOLAR"},
		[]string{"CLIENTE: DOCUMENTA /ITAU"},
		[]string{"INGRESOS"},
		[]string{"10/08/2026", "CAJERO 04", "660044", "1,500.50"},
	)

	records := CashStatement([]Sheet{sheet}, ClassificationATM, "EC EFECTIVO ATM.xlsx")
	require.Len(t, records, 1)
	assert.Equal(t, "USD", records[0].Currency)
	assert.Equal(t, "1500.5", records[0].Amount.String())
	assert.Equal(t, "INGRESOS (DOCUMENTA/ITAU)", records[0].Reason)
	assert.Equal(t, ClassificationATM, records[0].Classification)
	assert.Equal(t, "", records[0].Agency, "no SUC marker anywhere in the sheet")
}

func TestCashStatement_StoredFloatAmounts(t *testing.T) {
	sheet := sheetOf(
		[]string{"INGRESOS"},
		[]string{"12/08/2026", "CAJA 1", "741258", "5.0999999999999996"},
	)

	records := CashStatement([]Sheet{sheet}, ClassificationBank, "EC EFECTIVO BCO.xlsx")
	require.Len(t, records, 1)
	assert.Equal(t, "741258", records[0].Receipt)
	assert.Equal(t, "5.1", records[0].Amount.String(),
		"a round-trip storage tail is still 5.1, not ten quadrillion")
}

func TestCashStatement_SkipsIncompleteRows(t *testing.T) {
	sheet := sheetOf(
		[]string{"INGRESOS"},
		[]string{"12/08/2026"},
		[]string{"12/08/2026", "CAJA 1"},
		[]string{"12/08/2026", "CAJA 1", "742"},
		[]string{"SIN FECHA", "CAJA 1", "741258", "1.000"},
	)

	assert.Empty(t, CashStatement([]Sheet{sheet}, ClassificationBank, "x.xlsx"))
}

func TestCashStatement_RowsBeforeAnySection(t *testing.T) {
	sheet := sheetOf(
		[]string{"12/08/2026", "CAJA 1", "741258", "1.000.000"},
		[]string{"INGRESOS"},
		[]string{"13/08/2026", "CAJA 1", "741259", "2.000.000"},
	)

	records := CashStatement([]Sheet{sheet}, ClassificationBank, "x.xlsx")
	require.Len(t, records, 1, "rows above the first section header are ignored")
	assert.Equal(t, "13/08/2026", records[0].OperationDate)
}

func TestBundleStatement(t *testing.T) {
	sheet := sheetOf(
		[]string{"ESTADO DE CUENTA BULTOS ATM DEL : 15/08/2026"},
		[]string{"SUC: CIUDAD DEL ESTE"},
		[]string{"INGRESOS"},
		[]string{"12/08/2026", "CAJERO 01", "741992", "3", "1.500.000", "0", "0"},
		[]string{"12/08/2026", "CAJERO 01", "741993", "0", "0", "2", "1.000"},
		[]string{"13/08/2026", "CAJERO 02", "741994", "1", "2.000.000", "4", "500"},
		[]string{"13/08/2026", "CAJERO 02", "741995", "0", "0", "0", "0"},
	)

	records := BundleStatement([]Sheet{sheet}, "EC BULTOS ATM.xlsx")
	require.Len(t, records, 4)

	pyg := records[0]
	require.NotNil(t, pyg.Bundles)
	assert.EqualValues(t, 3, *pyg.Bundles)
	assert.Equal(t, "1500000", pyg.Amount.String())
	assert.Equal(t, "PYG", pyg.Currency)
	assert.Equal(t, ClassificationATM, pyg.Classification)
	assert.Equal(t, "CDE", pyg.Agency)
	assert.Equal(t, "15/08/2026", pyg.FileDate)

	usd := records[1]
	require.NotNil(t, usd.Bundles)
	assert.EqualValues(t, 2, *usd.Bundles)
	assert.Equal(t, "1000", usd.Amount.String())
	assert.Equal(t, "USD", usd.Currency)

	assert.Equal(t, "PYG", records[2].Currency, "mixed rows emit the guarani pair first")
	assert.Equal(t, "USD", records[3].Currency)
}

func TestBundleStatement_PadsShortRows(t *testing.T) {
	sheet := sheetOf(
		[]string{"INGRESOS"},
		[]string{"14/08/2026", "CAJERO 03", "741996", "5", "800.000"},
	)

	records := BundleStatement([]Sheet{sheet}, "EC BULTOS ATM.xlsx")
	require.Len(t, records, 1, "missing dollar columns read as zero")
	assert.Equal(t, "PYG", records[0].Currency)
	require.NotNil(t, records[0].Bundles)
	assert.EqualValues(t, 5, *records[0].Bundles)
}

func TestBundleStatement_FractionalBundleCount(t *testing.T) {
	sheet := sheetOf(
		[]string{"EGRESOS"},
		[]string{"15/08/2026", "CAJERO 05", "741997", "2,5", "100.000"},
	)

	records := BundleStatement([]Sheet{sheet}, "EC BULTOS ATM.xlsx")
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Bundles, "only whole counts land in the bundle column")
	assert.Equal(t, "100000", records[0].Amount.String())
	assert.Equal(t, DirectionOut, records[0].Direction)
}

func TestBundleStatement_IgnoresDocumentaSuffix(t *testing.T) {
	sheet := sheetOf(
		[]string{"CLIENTE: DOCUMENTA /ITAU"},
		[]string{"MONEDA: DOLAR"},
		[]string{"INGRESOS"},
		[]string{"12/08/2026", "CAJERO 01", "741998", "1", "50.000", "0", "0"},
	)

	records := BundleStatement([]Sheet{sheet}, "EC BULTOS ATM.xlsx")
	require.Len(t, records, 1)
	assert.Equal(t, "INGRESOS", records[0].Reason, "bundle reasons never carry the client suffix")
	assert.Equal(t, "PYG", records[0].Currency, "pair position decides the currency, not the header")
}
