package manifest

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape makes s safe inside XML text and attribute values.
func escape(s string) string {
	return xmlEscaper.Replace(s)
}
