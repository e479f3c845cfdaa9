package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritics (ASUNCIÓN becomes ASUNCION) so token
// matching does not depend on how a document spells things.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// FoldUpper strips accents and uppercases in one step.
func FoldUpper(s string) string {
	return strings.ToUpper(StripAccents(s))
}

// CollapseSpacedLetters joins letter runs that PDF extraction spaced out,
// turning "B I L L E T E S" into "BILLETES". Only runs of two or more single
// uppercase letters sitting on word boundaries are joined; everything else is
// preserved byte for byte.
func CollapseSpacedLetters(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(rs) {
		if spacedLetter(rs[i]) && (i == 0 || !wordRune(rs[i-1])) {
			letters := []int{i}
			j := i + 1
			for j < len(rs) {
				k := j
				for k < len(rs) && unicode.IsSpace(rs[k]) {
					k++
				}
				if k == j || k == len(rs) || !spacedLetter(rs[k]) {
					break
				}
				letters = append(letters, k)
				j = k + 1
			}
			// A trailing letter glued to a longer word belongs to that word,
			// not to the run.
			for len(letters) > 1 {
				last := letters[len(letters)-1]
				if last+1 < len(rs) && wordRune(rs[last+1]) {
					letters = letters[:len(letters)-1]
					continue
				}
				break
			}
			if len(letters) >= 2 {
				end := letters[len(letters)-1]
				// Only plain spaces are eaten; a newline inside a run splits
				// the collapsed word across the same lines it came from.
				for k := i; k <= end; k++ {
					if rs[k] != ' ' {
						b.WriteRune(rs[k])
					}
				}
				i = end + 1
				continue
			}
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

func spacedLetter(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	switch r {
	case 'Á', 'É', 'Í', 'Ó', 'Ú', 'Ñ':
		return true
	}
	return false
}

func wordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
