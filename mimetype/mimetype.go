package mimetype

import (
	"bytes"
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

// SniffLen is how many leading bytes a caller should feed IsText.
const SniffLen = 512

// IsText reports whether the leading bytes of a file look like text, for
// files whose name alone is inconclusive.
func IsText(snippet []byte) bool {
	mime := mimemagic.Match("", snippet)
	if mime != "" {
		return strings.HasPrefix(mime, "text/")
	}

	// No magic signature matched. Binary formats carry NULs up front,
	// text essentially never does.
	return !bytes.ContainsRune(snippet, 0x00)
}
