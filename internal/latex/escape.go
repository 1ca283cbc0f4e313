package latex

import "strings"

// escaper maps the reserved characters to their escaped forms.
// Backslash is handled in the same pass so that escapes are not re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Reserved lists the characters Escape rewrites.
const Reserved = `\&%$#_{}~^`

// Escape returns text with every reserved character replaced by its escaped
// form. Other characters pass through unchanged.
// Escape is not idempotent: escaping twice escapes the inserted backslashes.
func Escape(text string) string {
	if !strings.ContainsAny(text, Reserved) {
		return text
	}
	return escaper.Replace(text)
}

// verbatimEscaper escapes text placed inside a Verbatim environment that uses
// commandchars=\\\{\}. Only the command characters need replacing there.
var verbatimEscaper = strings.NewReplacer(
	`\`, `\TRZbs{}`,
	`{`, `\TRZob{}`,
	`}`, `\TRZcb{}`,
)

// EscapeVerbatim escapes text for a Verbatim block with command characters.
func EscapeVerbatim(text string) string {
	return verbatimEscaper.Replace(text)
}
