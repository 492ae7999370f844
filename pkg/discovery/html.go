package discovery

import (
	"errors"
	"io"

	"golang.org/x/net/html"
)

// ErrFailedToParseHTML is returned when markup cannot be parsed.
var ErrFailedToParseHTML = errors.New("discovery: failed to parse html")

// HTMLNode adapts a parsed HTML element tree. Attributes become props.
type HTMLNode struct {
	node *html.Node
}

// ParseHTML parses markup and returns its document node.
func ParseHTML(r io.Reader) (*HTMLNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseHTML, err)
	}
	return &HTMLNode{node: doc}, nil
}

func (n *HTMLNode) Tag() string {
	if n.node.Type != html.ElementNode {
		return ""
	}
	return n.node.Data
}

func (n *HTMLNode) Props() Props {
	if n.node.Type != html.ElementNode {
		return nil
	}
	props := make(Props, len(n.node.Attr))
	for _, attr := range n.node.Attr {
		props[attr.Key] = attr.Val
	}
	return props
}

// Children returns element children only; text and comments never hold fields.
func (n *HTMLNode) Children() []Node {
	var nodes []Node
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			nodes = append(nodes, &HTMLNode{node: c})
		}
	}
	return nodes
}
