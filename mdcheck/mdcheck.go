// Package mdcheck inspects the structure of Markdown documents.
//
// Translation is expected to preserve document structure: the same
// headings at the same levels, the same number of fenced code blocks,
// and an intact YAML front matter block. mdcheck builds a structural
// profile of a document so the source and the translated output can be
// compared, and any divergence reported as a warning.
package mdcheck

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile captures the structural shape of a Markdown document.
type Profile struct {
	// HeadingLevels holds the level (1-6) of each ATX heading in order.
	HeadingLevels []int
	// CodeFences is the number of fenced code blocks (``` or ~~~).
	CodeFences int
	// HasFrontmatter reports a YAML front matter block at the start.
	HasFrontmatter bool
	// FrontmatterKeys is the ordered list of top-level front matter fields.
	FrontmatterKeys []string
	// Links is the number of inline links and images.
	Links int
}

// codeFence matches fenced code blocks (``` or ~~~). The closing fence is
// matched at line start so backticks in the body do not end the block early.
var codeFence = regexp.MustCompile("(?ms)^```.*?^```[ \t]*$|^~~~.*?^~~~[ \t]*$")

// atxHeading matches ATX headings outside code fences.
var atxHeading = regexp.MustCompile(`(?m)^(#{1,6}) .+$`)

// frontmatter matches a YAML front matter block at the start of the file.
var frontmatter = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---\r?\n?`)

// inlineLink matches [text](target) links and ![alt](target) images.
var inlineLink = regexp.MustCompile(`!?\[[^\]]*\]\([^)]+\)`)

// Scan builds the structural profile of a Markdown document.
func Scan(doc string) Profile {
	var p Profile

	if m := frontmatter.FindStringSubmatch(doc); m != nil {
		var node yaml.Node
		if err := yaml.Unmarshal([]byte(m[1]), &node); err == nil && len(node.Content) > 0 {
			root := node.Content[0]
			if root.Kind == yaml.MappingNode {
				p.HasFrontmatter = true
				for i := 0; i+1 < len(root.Content); i += 2 {
					p.FrontmatterKeys = append(p.FrontmatterKeys, root.Content[i].Value)
				}
			}
		}
		doc = doc[len(m[0]):]
	}

	fences := codeFence.FindAllStringIndex(doc, -1)
	p.CodeFences = len(fences)

	for _, loc := range atxHeading.FindAllStringSubmatchIndex(doc, -1) {
		if insideRanges(loc[0], fences) {
			continue
		}
		p.HeadingLevels = append(p.HeadingLevels, loc[3]-loc[2])
	}

	for _, loc := range inlineLink.FindAllStringIndex(doc, -1) {
		if !insideRanges(loc[0], fences) {
			p.Links++
		}
	}

	return p
}

// Compare profiles the source and translated documents and returns a
// human-readable warning for each structural divergence. An empty slice
// means the translation kept the shape of the source.
func Compare(src, dst string) []string {
	a, b := Scan(src), Scan(dst)
	var warnings []string

	if len(a.HeadingLevels) != len(b.HeadingLevels) {
		warnings = append(warnings, fmt.Sprintf(
			"heading count changed: %d in source, %d in translation",
			len(a.HeadingLevels), len(b.HeadingLevels)))
	} else if !equalLevels(a.HeadingLevels, b.HeadingLevels) {
		warnings = append(warnings, fmt.Sprintf(
			"heading levels changed: %s in source, %s in translation",
			formatLevels(a.HeadingLevels), formatLevels(b.HeadingLevels)))
	}

	if a.CodeFences != b.CodeFences {
		warnings = append(warnings, fmt.Sprintf(
			"code block count changed: %d in source, %d in translation",
			a.CodeFences, b.CodeFences))
	}

	if a.HasFrontmatter && !b.HasFrontmatter {
		warnings = append(warnings, "front matter block missing from translation")
	} else if a.HasFrontmatter && b.HasFrontmatter &&
		strings.Join(a.FrontmatterKeys, ",") != strings.Join(b.FrontmatterKeys, ",") {
		warnings = append(warnings, fmt.Sprintf(
			"front matter fields changed: [%s] in source, [%s] in translation",
			strings.Join(a.FrontmatterKeys, " "), strings.Join(b.FrontmatterKeys, " ")))
	}

	if a.Links != b.Links {
		warnings = append(warnings, fmt.Sprintf(
			"link count changed: %d in source, %d in translation",
			a.Links, b.Links))
	}

	return warnings
}

// insideRanges reports whether pos falls inside any of the [start, end) ranges.
func insideRanges(pos int, ranges [][]int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

func equalLevels(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatLevels(levels []int) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("h%d", l)
	}
	return strings.Join(parts, ",")
}
