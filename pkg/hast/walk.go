package hast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of every tree rooted in nodes.
// The callback walkFunc is called for each node. If walkFunc returns a
// non-nil error, the walk stops immediately and returns that error.
func Walk(nodes []*Node, walkFunc WalkFunc) error {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if err := walkFunc(node); err != nil {
			return err
		}
		if err := Walk(node.Children, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(nodes []*Node, enter, leave WalkFunc) error {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if enter != nil {
			if err := enter(node); err != nil {
				return err
			}
		}
		if err := WalkWithContext(node.Children, enter, leave); err != nil {
			return err
		}
		if leave != nil {
			if err := leave(node); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindAll returns all nodes matching the predicate.
func FindAll(nodes []*Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(nodes, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(nodes []*Node, predicate func(n *Node) bool) *Node {
	var found *Node

	//nolint:errcheck,revive // errStopWalk is expected and intentionally ignored
	Walk(nodes, func(node *Node) error {
		if predicate(node) {
			found = node
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns all nodes of the specified kind.
func FindByKind(nodes []*Node, kind NodeKind) []*Node {
	return FindAll(nodes, func(n *Node) bool {
		return n.Kind == kind
	})
}

// FindByTagName returns all element nodes with the given (lower-cased) tag name.
func FindByTagName(nodes []*Node, tagName string) []*Node {
	return FindAll(nodes, func(n *Node) bool {
		return n.Kind == NodeElement && n.TagName == tagName
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
