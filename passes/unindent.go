package passes

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/viant/docfold/doctree"
	"github.com/viant/docfold/fold"
)

// UnindentComments removes the common indentation from every documentation fragment.
// It stops at the first fragment violating the indentation precondition and returns the error.
func UnindentComments(crate doctree.Crate) (doctree.Crate, error) {
	cleaner := &commentCleaner{}
	crate = fold.Crate(cleaner, crate)
	if cleaner.err != nil {
		return crate, cleaner.err
	}
	return crate, nil
}

type commentCleaner struct {
	err error
}

func (c *commentCleaner) FoldItem(item doctree.Item) (doctree.Item, bool) {
	if c.err != nil {
		return item, true
	}
	if len(item.Attrs) > 0 {
		attrs := make([]doctree.Attribute, 0, len(item.Attrs))
		for _, attr := range item.Attrs {
			if attr.IsDoc() {
				text, err := Unindent(attr.Value)
				if err != nil {
					c.err = fmt.Errorf("failed to unindent %v: %w", item, err)
					return item, true
				}
				attr = doctree.Doc(text)
			}
			attrs = append(attrs, attr)
		}
		item.Attrs = attrs
	}
	return fold.Recur(c, item)
}

// Unindent strips the common leading indentation from a documentation text.
//
// The first line is always trimmed. When the first paragraph spans several lines,
// the first line's indentation does not count toward the common indentation: it is
// usually written right after the opening delimiter. Only spaces count as
// indentation; blank lines are kept as they are.
func Unindent(text string) (string, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return text, nil
	}

	minIndent := math.MaxInt
	sawFirst, sawSecond := false, false
	for _, line := range lines {
		blank := isBlank(line)
		// a content line right after the first content line continues the first paragraph
		if sawFirst && !sawSecond && !blank {
			minIndent = math.MaxInt
		}
		if sawFirst {
			sawSecond = true
		}
		if blank {
			continue
		}
		sawFirst = true
		minIndent = min(minIndent, leadingSpaces(line))
	}

	result := make([]string, len(lines))
	result[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if isBlank(line) {
			result[i] = line
			continue
		}
		if len(line) < minIndent {
			return "", &IndentError{Line: i + 1, Text: line, MinIndent: minIndent}
		}
		result[i] = line[minIndent:]
	}
	return strings.Join(result, "\n"), nil
}

// splitLines splits on line feeds, dropping a carriage return before it and a final empty line
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func leadingSpaces(line string) int {
	count := 0
	for count < len(line) && line[count] == ' ' {
		count++
	}
	return count
}
