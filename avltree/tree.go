package avltree

// NodeID is a handle into a Tree's node arena. The zero value, Nil, means
// "no node" — the tree-wide nil sentinel (spec.md §9: "pointers are u32
// indices; sentinels occupy fixed indices at the start of the arena").
type NodeID int32

// Nil is the absence of a node.
const Nil NodeID = 0

type node struct {
	left, right, parent NodeID
	prev, next          NodeID
	height              int32
	payload             int
}

// Tree is an augmented AVL tree: nodes carry tree links for O(log n)
// search/insert/delete and prev/next links that maintain the in-order
// sequence for O(1) traversal once positioned (spec.md §4.2).
//
// The tree does not compare keys itself; Less compares two payload values
// (commonly indices into the caller's own point slice) and determines
// ordering. Deletion is logical: Unlink splices a node out of the tree and
// the order list but the arena slot is never reused or freed until the
// whole Tree is discarded, per spec.md §3 "node deletion is logical
// (unlink), never free".
type Tree struct {
	nodes []node
	less  func(a, b int) bool
	root  NodeID
	head  NodeID
	tail  NodeID
	count int
}

// NewTree constructs an empty Tree ordered by less.
func NewTree(less func(a, b int) bool) *Tree {
	return &Tree{nodes: make([]node, 1), less: less} // index 0 is the Nil sentinel
}

// Len reports the number of live nodes.
func (t *Tree) Len() int { return t.count }

// Head returns the node with the smallest key, or Nil if the tree is empty.
func (t *Tree) Head() NodeID { return t.head }

// Tail returns the node with the largest key, or Nil if the tree is empty.
func (t *Tree) Tail() NodeID { return t.tail }

// Top returns the current root of the tree.
func (t *Tree) Top() NodeID { return t.root }

// Next returns the in-order successor of id, or Nil if id is the tail.
func (t *Tree) Next(id NodeID) NodeID { return t.nodes[id].next }

// Prev returns the in-order predecessor of id, or Nil if id is the head.
func (t *Tree) Prev(id NodeID) NodeID { return t.nodes[id].prev }

// Payload returns the payload stored at id.
func (t *Tree) Payload(id NodeID) int { return t.nodes[id].payload }

func (t *Tree) height(id NodeID) int32 {
	if id == Nil {
		return 0
	}
	return t.nodes[id].height
}

func (t *Tree) updateHeight(id NodeID) {
	l, r := t.height(t.nodes[id].left), t.height(t.nodes[id].right)
	if l > r {
		t.nodes[id].height = l + 1
	} else {
		t.nodes[id].height = r + 1
	}
}

func (t *Tree) balanceFactor(id NodeID) int32 {
	if id == Nil {
		return 0
	}
	return t.height(t.nodes[id].left) - t.height(t.nodes[id].right)
}

// rotateLeft rotates the subtree rooted at x left and returns the new
// subtree root y, patching x's former parent's child slot (or the tree
// root) to point at y exactly once.
func (t *Tree) rotateLeft(x NodeID) NodeID {
	y := t.nodes[x].right
	p := t.nodes[x].parent

	t.nodes[x].right = t.nodes[y].left
	if t.nodes[y].left != Nil {
		t.nodes[t.nodes[y].left].parent = x
	}
	t.nodes[y].left = x
	t.nodes[x].parent = y
	t.nodes[y].parent = p

	if p == Nil {
		t.root = y
	} else if t.nodes[p].left == x {
		t.nodes[p].left = y
	} else {
		t.nodes[p].right = y
	}

	t.updateHeight(x)
	t.updateHeight(y)
	return y
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree) rotateRight(x NodeID) NodeID {
	y := t.nodes[x].left
	p := t.nodes[x].parent

	t.nodes[x].left = t.nodes[y].right
	if t.nodes[y].right != Nil {
		t.nodes[t.nodes[y].right].parent = x
	}
	t.nodes[y].right = x
	t.nodes[x].parent = y
	t.nodes[y].parent = p

	if p == Nil {
		t.root = y
	} else if t.nodes[p].left == x {
		t.nodes[p].left = y
	} else {
		t.nodes[p].right = y
	}

	t.updateHeight(x)
	t.updateHeight(y)
	return y
}

// rebalance walks from a freshly-attached or freshly-detached node upward to
// the root, recomputing heights and applying the classical AVL single/double
// rotations wherever the balance factor leaves [-1, 1].
func (t *Tree) rebalance(from NodeID) {
	x := from
	for x != Nil {
		t.updateHeight(x)
		bal := t.balanceFactor(x)
		switch {
		case bal > 1:
			if t.balanceFactor(t.nodes[x].left) < 0 {
				t.rotateLeft(t.nodes[x].left)
			}
			x = t.rotateRight(x)
		case bal < -1:
			if t.balanceFactor(t.nodes[x].right) > 0 {
				t.rotateRight(t.nodes[x].right)
			}
			x = t.rotateLeft(x)
		}
		x = t.nodes[x].parent
	}
}

func (t *Tree) alloc(payload int) NodeID {
	t.nodes = append(t.nodes, node{payload: payload, height: 1})
	return NodeID(len(t.nodes) - 1)
}

// SearchClosest locates payload's position among the tree's current keys.
// It returns (node, 0) if a node with an equal key exists, (node, -1) if
// node is the immediate in-order successor of payload, or (node, +1) if
// node is the immediate predecessor. On an empty tree it returns (Nil, 0).
//
// Complexity: O(log n).
func (t *Tree) SearchClosest(payload int) (NodeID, int) {
	cur := t.root
	for cur != Nil {
		np := t.nodes[cur].payload
		switch {
		case t.less(payload, np):
			if t.nodes[cur].left == Nil {
				return cur, -1
			}
			cur = t.nodes[cur].left
		case t.less(np, payload):
			if t.nodes[cur].right == Nil {
				return cur, 1
			}
			cur = t.nodes[cur].right
		default:
			return cur, 0
		}
	}
	return Nil, 0
}

// InsertTop seeds the tree's very first node. It must only be called on an
// empty tree; inserting a first node this way avoids a redundant
// SearchClosest call the caller already knows is unnecessary.
func (t *Tree) InsertTop(payload int) NodeID {
	z := t.alloc(payload)
	t.root, t.head, t.tail = z, z, z
	t.count++
	return z
}

// InsertBefore inserts payload immediately before at in the in-order
// sequence. at must be a live node in the tree.
//
// Complexity: O(log n) (attachment is O(1); rebalancing up to the root is
// O(log n)).
func (t *Tree) InsertBefore(at NodeID, payload int) NodeID {
	z := t.alloc(payload)

	if t.nodes[at].left == Nil {
		t.setChild(at, true, z)
	} else {
		pred := t.nodes[at].prev
		t.setChild(pred, false, z)
	}

	p := t.nodes[at].prev
	t.nodes[z].prev, t.nodes[z].next = p, at
	t.nodes[at].prev = z
	if p != Nil {
		t.nodes[p].next = z
	} else {
		t.head = z
	}

	t.count++
	t.rebalance(z)
	return z
}

// InsertAfter inserts payload immediately after at in the in-order sequence.
func (t *Tree) InsertAfter(at NodeID, payload int) NodeID {
	z := t.alloc(payload)

	if t.nodes[at].right == Nil {
		t.setChild(at, false, z)
	} else {
		succ := t.nodes[at].next
		t.setChild(succ, true, z)
	}

	n := t.nodes[at].next
	t.nodes[z].next, t.nodes[z].prev = n, at
	t.nodes[at].next = z
	if n != Nil {
		t.nodes[n].prev = z
	} else {
		t.tail = z
	}

	t.count++
	t.rebalance(z)
	return z
}

func (t *Tree) setChild(parent NodeID, left bool, child NodeID) {
	if left {
		t.nodes[parent].left = child
	} else {
		t.nodes[parent].right = child
	}
	t.nodes[child].parent = parent
}

func (t *Tree) transplant(u, v NodeID) {
	p := t.nodes[u].parent
	switch {
	case p == Nil:
		t.root = v
	case t.nodes[p].left == u:
		t.nodes[p].left = v
	default:
		t.nodes[p].right = v
	}
	if v != Nil {
		t.nodes[v].parent = p
	}
}

// Unlink splices z out of both the tree structure and the order list. The
// arena slot is not reclaimed.
//
// Complexity: O(log n).
func (t *Tree) Unlink(z NodeID) {
	p, n := t.nodes[z].prev, t.nodes[z].next
	if p != Nil {
		t.nodes[p].next = n
	} else {
		t.head = n
	}
	if n != Nil {
		t.nodes[n].prev = p
	} else {
		t.tail = p
	}

	left, right := t.nodes[z].left, t.nodes[z].right
	parent := t.nodes[z].parent
	var rebalanceFrom NodeID

	switch {
	case left == Nil:
		t.transplant(z, right)
		rebalanceFrom = parent
	case right == Nil:
		t.transplant(z, left)
		rebalanceFrom = parent
	default:
		y := n // z's in-order successor is exactly the node we already had as "next"
		yParent := t.nodes[y].parent
		if yParent == z {
			rebalanceFrom = y
		} else {
			t.transplant(y, t.nodes[y].right)
			t.nodes[y].right = right
			t.nodes[right].parent = y
			t.updateHeight(y)
			rebalanceFrom = yParent
		}
		t.transplant(z, y)
		t.nodes[y].left = left
		t.nodes[left].parent = y
		t.updateHeight(y)
	}

	t.count--
	t.rebalance(rebalanceFrom)
}
