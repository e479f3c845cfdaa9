package classify

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

// competingIssuers are the other banks whose documents end up in the intake
// folders when a branch drops the wrong export. One mention anywhere is
// enough to turn a file away.
var competingIssuers = []string{
	"CONTINENTAL", "BBVA", "GNB", "REGIONAL", "BASA", "VISION",
	"ATLAS", "SUDAMERIS", "FAMILIAR", "ITAPUA", "AMAMBAY",
}

// clientMention tolerates the punctuation branches put between the label and
// the client name ("CLIENTE: ITAU", "CLIENTE - ITAU", "CLIENTE:  ITAU S.A.").
var clientMention = regexp.MustCompile(`CLIENTE[^A-Z0-9]{0,10}ITAU`)

// inventoryNameShape is the naming convention inventories follow. Inventory
// bodies often never name the client, so a conforming name is accepted on
// its own.
var inventoryNameShape = [][]string{
	{"INV"},
	{"BILLETE"},
	{"ATM", "BCO", "BANCO"},
}

// Gate screens classified documents for authenticity before any extraction
// work happens.
type Gate struct {
	issuers *ahocorasick.Matcher
}

func NewGate() *Gate {
	return &Gate{issuers: ahocorasick.NewStringMatcher(competingIssuers)}
}

// Admit reports whether the document may proceed, with a short reason when
// it may not. Rejection order: a competing issuer anywhere wins over any
// acceptance signal, then an explicit client mention in the body accepts,
// then an inventory-shaped filename accepts inventories. Everything else is
// rejected; statements always need the client mention.
func (g *Gate) Admit(filename, preview string, dt DocType) (bool, string) {
	name := normalize.FoldUpper(filename)
	body := normalize.FoldUpper(preview)

	if len(g.issuers.Match([]byte(body))) > 0 || len(g.issuers.Match([]byte(name))) > 0 {
		return false, "competing issuer mentioned"
	}
	if clientMention.MatchString(body) || strings.Contains(body, "BANCO ITAU") {
		return true, ""
	}
	if dt.IsInventory() && hasTokenFromEach(name, inventoryNameShape) {
		return true, ""
	}
	return false, "no issuer evidence"
}
