// Package hast provides the HTML AST representation for tagsoup.
// It defines:
// - Node: a tree of elements, text runs, and comments
// - Position/Span: source location tracking for every node
// - Walk and friends: traversal utilities
//
// Trees are produced by the parse pipeline and are not mutated afterwards;
// treat them as immutable once returned.
package hast

import (
	"encoding/json"
	"fmt"
)

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds.
const (
	// NodeElement is a tag with attributes and children.
	NodeElement NodeKind = iota

	// NodeText is a run of character data.
	NodeText

	// NodeComment is a <!-- --> comment.
	NodeComment
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeElement:
		return "element"
	case NodeText:
		return "text"
	case NodeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its string name.
func (k NodeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name.
func (k *NodeKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("unmarshal node kind: %w", err)
	}
	switch name {
	case "element":
		*k = NodeElement
	case "text":
		*k = NodeText
	case "comment":
		*k = NodeComment
	default:
		return fmt.Errorf("unknown node kind %q", name)
	}
	return nil
}

// Attribute is a single element attribute.
// Value is nil for bare attributes like "disabled".
type Attribute struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

// Node represents a single node in the HTML tree.
//
// For NodeElement, TagName, Attributes, and Children are meaningful and
// Content is empty. For NodeText and NodeComment, Content carries the
// character data and the element fields are unused.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind `json:"type"`

	// TagName is the element name, lower-cased by the format pass.
	TagName string `json:"tagName,omitempty"`

	// Attributes is the ordered attribute list of an element.
	Attributes []Attribute `json:"attributes,omitempty"`

	// Children is the ordered child list of an element.
	// Void and self-closed elements always have an empty child list.
	Children []*Node `json:"children,omitempty"`

	// Content is the text of a text or comment node.
	Content string `json:"content,omitempty"`

	// Position is the source span covered by this node.
	// Nil when positions were not requested.
	Position *Span `json:"position,omitempty"`
}

// IsElement returns true if this is an element node.
func (n *Node) IsElement() bool {
	return n.Kind == NodeElement
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// AttributeValue returns the value of the named attribute and whether the
// attribute is present. Bare attributes report ("", true).
func (n *Node) AttributeValue(key string) (string, bool) {
	for _, attr := range n.Attributes {
		if attr.Key == key {
			if attr.Value == nil {
				return "", true
			}
			return *attr.Value, true
		}
	}
	return "", false
}
