package classify

import (
	"regexp"

	"github.com/gbenitezpy/consolidador/internal/normalize"
)

var noMovements = regexp.MustCompile(`SIN\s+MOVIMIENTOS`)

// NoActivity reports whether a document declares an empty period instead of
// carrying rows. Such files are complete, not broken: they produce zero
// records and archive as processed.
func NoActivity(preview string) bool {
	return noMovements.MatchString(normalize.FoldUpper(preview))
}
