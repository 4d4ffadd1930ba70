// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

// Row is one line of a rendered listing.
type Row struct {
	Category Category `json:"category"`
	Level    int      `json:"level"`
	Match    bool     `json:"match,omitempty"`
}

// visit is a (node, depth) pair on the traversal worklist.
type visit struct {
	position int
	level    int
}

// walk performs a pre-order depth-first traversal starting at the given
// sibling positions, using an explicit stack instead of recursion.
func (index *Index) walk(starts []int, level int) []visit {
	visits := make([]visit, 0, len(index.records))

	stack := make([]visit, 0, len(starts))
	for i := len(starts) - 1; i >= 0; i-- {
		stack = append(stack, visit{position: starts[i], level: level})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visits = append(visits, top)

		children := index.children[top.position]
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, visit{position: children[i], level: top.level + 1})
		}
	}

	return visits
}

/*
Flatten returns the whole hierarchy in display order.

Each root is followed by its subtree before the next root; siblings are in
name order and Level counts generations from the root (0). The result is a
pure function of the record set, independent of ingestion order.
*/
func (index *Index) Flatten() []Row {
	visits := index.walk(index.roots, 0)

	rows := make([]Row, len(visits))
	for i, visit := range visits {
		rows[i] = Row{Category: index.records[visit.position], Level: visit.level}
	}
	return rows
}

/*
Tree returns the forest with Children attached to every node.

Nodes are assembled in reverse pre-order, so every subtree is complete before
its parent is built and no recursion is needed.
*/
func (index *Index) Tree() []Category {
	visits := index.walk(index.roots, 0)
	built := make([]Category, len(index.records))

	for i := len(visits) - 1; i >= 0; i-- {
		position := visits[i].position
		node := index.records[position]

		if children := index.children[position]; len(children) > 0 {
			node.Children = make([]Category, len(children))
			for j, child := range children {
				node.Children[j] = built[child]
			}
		}

		built[position] = node
	}

	forest := make([]Category, len(index.roots))
	for i, root := range index.roots {
		forest[i] = built[root]
	}
	return forest
}
