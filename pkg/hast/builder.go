package hast

// NewElement creates an element node with the given tag name.
func NewElement(tagName string) *Node {
	return &Node{
		Kind:    NodeElement,
		TagName: tagName,
	}
}

// NewText creates a text node with the given content.
func NewText(content string) *Node {
	return &Node{
		Kind:    NodeText,
		Content: content,
	}
}

// NewComment creates a comment node with the given content
// (the text between <!-- and -->).
func NewComment(content string) *Node {
	return &Node{
		Kind:    NodeComment,
		Content: content,
	}
}

// AppendChild appends a child to a parent element.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	parent.Children = append(parent.Children, child)
}

// BareAttribute creates an attribute without a value (e.g. "disabled").
func BareAttribute(key string) Attribute {
	return Attribute{Key: key}
}

// ValueAttribute creates a key=value attribute.
func ValueAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: &value}
}
