package slackconverter

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

const bulletMarker = "• "

func (s *state) renderListNode(node *ast.List) {
	var items []string

	index := 0
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		itemText := strings.TrimSpace(s.renderListItemNode(child))
		position := index
		index++
		if itemText == "" {
			continue
		}

		if node.IsOrdered() {
			items = append(items, strconv.Itoa(position+node.Start)+". "+itemText)
		} else {
			items = append(items, bulletMarker+itemText)
		}
	}

	if len(items) == 0 {
		return
	}

	s.appendSection(strings.Join(items, "\n"), node.Kind().String())
}

// renderListItemNode returns the item's text without appending a block.
func (s *state) renderListItemNode(node ast.Node) string {
	var sb strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if hasContent(child) {
			sb.WriteString(s.renderContent(child))
			continue
		}
		sb.WriteString(s.renderInline(child))
	}
	return sb.String()
}
