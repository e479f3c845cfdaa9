// Package extract turns admitted branch documents into consolidated records.
// Each extractor is a pure function over loaded sheet or text content; IO
// stays at the edges so the row grammar can be tested on literal fixtures.
package extract

import "github.com/shopspring/decimal"

// Movement is one cash or bundle statement line. The csv tags double as the
// column headers of the daily consolidated files, in order.
type Movement struct {
	OperationDate  string          `csv:"FECHA_OPERACION"`
	Branch         string          `csv:"SUCURSAL"`
	Receipt        string          `csv:"RECIBO"`
	Bundles        *int64          `csv:"BULTOS"`
	Amount         decimal.Decimal `csv:"MONTO"`
	Currency       string          `csv:"MONEDA"`
	Direction      string          `csv:"ING_EGR"`
	Classification string          `csv:"CLASIFICACION"`
	FileDate       string          `csv:"FECHA_ARCHIVO"`
	Reason         string          `csv:"MOTIVO_MOVIMIENTO"`
	Agency         string          `csv:"AGENCIA"`
	SourceFile     string          `csv:"ARCHIVO_ORIGEN"`
}

// InventoryLine is one denomination row of a cash inventory. Counts are
// plain units; Total is the line amount in the line's currency.
type InventoryLine struct {
	InventoryDate   string `csv:"FECHA_INVENTARIO"`
	Currency        string `csv:"DIVISA"`
	Agency          string `csv:"AGENCIA"`
	Grouping        string `csv:"AGRUPACION_EFECTIVO"`
	ValueType       string `csv:"TIPO_VALOR"`
	Denomination    int64  `csv:"DENOMINACION"`
	DepositQuality  int64  `csv:"CALIDAD_DEPOSITO"`
	DepositExchange int64  `csv:"CJE_DEP"`
	SwapQuality     int64  `csv:"CALIDAD_CANJE"`
	Coins           int64  `csv:"MONEDA"`
	Total           int64  `csv:"IMPORTE_TOTAL"`
	SourceFile      string `csv:"ARCHIVO_ORIGEN"`
}
