package ast

// Cursor is a node reference plus its ancestor chain. Trees carry no
// parent pointers; a cursor is built during a top-down traversal and
// owns its path, so trees stay immutable and freely shareable.
type Cursor struct {
	parent *Cursor
	value  Node
}

// NewCursor wraps value with the given parent context. parent may be
// nil for a root cursor.
func NewCursor(parent *Cursor, value Node) *Cursor {
	return &Cursor{parent: parent, value: value}
}

func (c *Cursor) Value() Node {
	return c.value
}

// Parent returns the cursor over the enclosing node, or nil at the root.
func (c *Cursor) Parent() *Cursor {
	return c.parent
}

// ParentTreeCursor returns the cursor over the nearest enclosing tree
// node. Every cursor in this model holds a node, so it is the direct
// parent; the name keeps call sites readable where the distinction
// matters.
func (c *Cursor) ParentTreeCursor() *Cursor {
	return c.parent
}

// Path returns the nodes from this cursor up to the root, leaf first.
func (c *Cursor) Path() []Node {
	var path []Node
	for cur := c; cur != nil; cur = cur.parent {
		path = append(path, cur.value)
	}
	return path
}

// FirstEnclosing walks the ancestor chain (starting at this node) and
// returns the first cursor whose node satisfies pred, or nil.
func (c *Cursor) FirstEnclosing(pred func(Node) bool) *Cursor {
	for cur := c; cur != nil; cur = cur.parent {
		if pred(cur.value) {
			return cur
		}
	}
	return nil
}

// CursorAt finds target in the tree rooted at root by node identity and
// returns a cursor with the full ancestor chain, or nil when target is
// not part of the tree.
func CursorAt(root Node, target Node) *Cursor {
	if root == nil || target == nil {
		return nil
	}
	return cursorAt(NewCursor(nil, root), target)
}

func cursorAt(c *Cursor, target Node) *Cursor {
	if c.value == target {
		return c
	}
	for _, child := range Children(c.value) {
		if found := cursorAt(NewCursor(c, child), target); found != nil {
			return found
		}
	}
	return nil
}
