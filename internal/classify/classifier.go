package classify

import (
	"regexp"
	"strings"

	"github.com/gbenitezpy/consolidador/internal/ingest"
	"github.com/gbenitezpy/consolidador/internal/normalize"
)

// filenameRule matches when every token group contributes at least one hit.
// Tokens are substrings, so EFECT also covers EFECTIVO and BULTO covers
// BULTOS.
type filenameRule struct {
	doctype DocType
	groups  [][]string
}

// Rule order matters: inventories are checked before statements so that a
// name carrying both INV and EC resolves as an inventory, and the bare INV
// catch-all sits last among the concrete rules.
var filenameRules = []filenameRule{
	{TypeInventoryATM, [][]string{{"INV"}, {"ATM"}}},
	{TypeInventoryBank, [][]string{{"INV"}, {"BANCO", "BCO", "DOLAR", "USD"}}},
	{TypeStatementCashBank, [][]string{{"EC", "CTA", "ESTADO"}, {"EFECT"}, {"BCO", "BANCO"}}},
	{TypeStatementCashATM, [][]string{{"EC", "CTA", "ESTADO"}, {"EFECT"}, {"ATM"}}},
	{TypeStatementBundleATM, [][]string{{"EC", "CTA", "ESTADO"}, {"BULTO"}, {"ATM"}}},
	{TypeInventoryPending, [][]string{{"INV"}}},
}

var inventoryOfBillsATM = regexp.MustCompile(`INVENTARIO\s+DE\s+BILLETES.*ATM|\bATM\b`)

// Classify maps a filename to a document type. Matching is done on the
// accent-stripped uppercase name, extension included.
func Classify(filename string) DocType {
	u := normalize.FoldUpper(filename)
	for _, rule := range filenameRules {
		if hasTokenFromEach(u, rule.groups) {
			return rule.doctype
		}
	}
	return TypeUnknown
}

// ResolveContent refines an inconclusive classification using the document
// body. Only PDFs are resolved this way; for spreadsheets the filename stays
// authoritative. An unresolved body files as a bank inventory, the more
// common side.
func ResolveContent(dt DocType, format ingest.Format, preview string) DocType {
	if format != ingest.FormatPDF {
		return dt
	}
	if dt != TypeUnknown && dt != TypeInventoryPending {
		return dt
	}
	if inventoryOfBillsATM.MatchString(normalize.FoldUpper(preview)) {
		return TypeInventoryATM
	}
	return TypeInventoryBank
}

func hasTokenFromEach(s string, groups [][]string) bool {
	for _, group := range groups {
		if !containsAny(s, group) {
			return false
		}
	}
	return true
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
