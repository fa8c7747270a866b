package canvas

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// glyphWidth measures runes with East Asian ambiguous characters counted as
// narrow, independent of the process locale and RUNEWIDTH_EASTASIAN.
var glyphWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// ValidGlyph reports whether r occupies exactly one terminal cell.
// Control characters (the terminator included), combining marks and wide
// East Asian or emoji runes are rejected.
func ValidGlyph(r rune) bool {
	return glyphWidth.RuneWidth(r) == 1
}

func checkGlyph(r rune) error {
	if !ValidGlyph(r) {
		return fmt.Errorf("%q: %w", r, ErrInvalidGlyph)
	}
	return nil
}
