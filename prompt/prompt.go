// Package prompt composes the single instruction string sent to the
// generation endpoint. Build is pure: the same metadata and document always
// produce the same prompt, and nothing downstream may alter it.
package prompt

import (
	"strings"

	"github.com/minios-linux/mdtranslate/langmeta"
)

const (
	beginMarker = "--- BEGIN DOCUMENT ---"
	endMarker   = "--- END DOCUMENT ---"
)

// header is the role statement and formatting contract. {{targetLang}} and
// {{targetCode}} are replaced at build time, matching how the translation
// presets are parameterized.
const header = `You are a professional translator specializing in technical documentation. Translate the Markdown document below into {{targetLang}} ({{targetCode}}).

Style: {{styleInstructions}}

REQUIREMENTS:
- Preserve the Markdown structure exactly: headings, lists, tables, links, images, code blocks, and inline formatting.
- Do not translate code blocks, command invocations, file paths, URLs, or other literal technical content.
- Keep brand names and proper nouns unchanged.
- Output ONLY the translated document. No commentary, no explanations, and no restatement of these instructions.`

// Build returns the full prompt for translating doc into the target
// language. sourceLang is an optional detected source language name; when
// blank the hint line is omitted.
func Build(target langmeta.Metadata, sourceLang, doc string) string {
	var b strings.Builder

	h := strings.ReplaceAll(header, "{{targetLang}}", target.Name)
	h = strings.ReplaceAll(h, "{{targetCode}}", target.Code)
	h = strings.ReplaceAll(h, "{{styleInstructions}}", target.Instructions)
	b.WriteString(h)

	if sourceLang != "" {
		b.WriteString("\n\nThe source document appears to be written in ")
		b.WriteString(sourceLang)
		b.WriteString(".")
	}

	b.WriteString("\n\n")
	b.WriteString(beginMarker)
	b.WriteString("\n")
	b.WriteString(doc)
	b.WriteString("\n")
	b.WriteString(endMarker)

	return b.String()
}
