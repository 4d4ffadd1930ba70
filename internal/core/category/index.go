// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"slices"
)

// noParent marks a position whose parent is not part of the snapshot.
const noParent = -1

// Index is an immutable snapshot of the category collection.
//
// Records live in one flat arena. Structure is kept beside it as positions:
// the resolved parent of every record and the alphabetically ordered
// children of every record. Nothing is mutated after [NewIndex] returns, so
// an Index may be shared by concurrent readers.
type Index struct {
	records  []Category
	position map[ID]int
	parent   []int
	children [][]int
	roots    []int
	detached []ID
}

/*
NewIndex builds the snapshot for a flat collection.

Rules:
  - Records without an id cannot be addressed and are skipped.
  - Repeated ids keep the first record.
  - A parent reference to an unknown id, or to the record itself, makes the
    record a root.
  - A reference cycle is broken at its member with the lowest id, which
    becomes a root and is reported by [Index.Detached].

Siblings and roots are ordered by name under collation, then by id.
*/
func NewIndex(records []Category, collation Collation) *Index {
	index := &Index{position: make(map[ID]int, len(records))}

	for _, record := range records {
		if record.ID.Empty() {
			continue
		}
		if _, seen := index.position[record.ID]; seen {
			continue
		}

		record.Children = nil
		record.ParentName = ""
		index.position[record.ID] = len(index.records)
		index.records = append(index.records, record)
	}

	size := len(index.records)
	index.parent = make([]int, size)
	index.children = make([][]int, size)

	for position, record := range index.records {
		index.parent[position] = noParent

		parentID := record.Parent()
		if parentID.Empty() || parentID == record.ID {
			continue
		}

		if parentPosition, ok := index.position[parentID]; ok {
			index.parent[position] = parentPosition
			index.records[position].ParentName = index.records[parentPosition].Name
		}
	}

	index.detachCycles()

	for position := range index.records {
		if parentPosition := index.parent[position]; parentPosition != noParent {
			index.children[parentPosition] = append(index.children[parentPosition], position)
			continue
		}
		index.roots = append(index.roots, position)
	}

	compare := collation.byName()
	byName := func(a, b int) int {
		return compare(index.records[a], index.records[b])
	}

	slices.SortFunc(index.roots, byName)
	for position := range index.children {
		slices.SortFunc(index.children[position], byName)
	}

	return index
}

// detachCycles walks every parent chain once and cuts each closed loop.
func (index *Index) detachCycles() {
	const (
		unvisited = iota
		onPath
		done
	)

	state := make([]uint8, len(index.records))

	for start := range index.records {
		if state[start] != unvisited {
			continue
		}

		var path []int
		node := start
		for node != noParent && state[node] == unvisited {
			state[node] = onPath
			path = append(path, node)
			node = index.parent[node]
		}

		if node != noParent && state[node] == onPath {
			loop := path[slices.Index(path, node):]
			cut := slices.MinFunc(loop, func(a, b int) int {
				return compareIDs(index.records[a].ID, index.records[b].ID)
			})

			index.parent[cut] = noParent
			index.detached = append(index.detached, index.records[cut].ID)
		}

		for _, visited := range path {
			state[visited] = done
		}
	}
}

// # Lookups

// Len returns the number of categories in the snapshot.
func (index *Index) Len() int {
	return len(index.records)
}

// Records returns the categories in ingestion order.
func (index *Index) Records() []Category {
	return slices.Clone(index.records)
}

// Get returns the category with the given id.
func (index *Index) Get(id ID) (Category, bool) {
	position, ok := index.position[id]
	if !ok {
		return Category{}, false
	}
	return index.records[position], true
}

// Has reports whether the snapshot contains id.
func (index *Index) Has(id ID) bool {
	_, ok := index.position[id]
	return ok
}

// Detached lists the categories promoted to roots to break reference cycles.
func (index *Index) Detached() []ID {
	return slices.Clone(index.detached)
}

// Roots returns the root categories in display order.
func (index *Index) Roots() []Category {
	return index.collect(index.roots)
}

// Children returns the direct children of id in display order.
// An empty id returns the roots.
func (index *Index) Children(id ID) []Category {
	if id.Empty() {
		return index.Roots()
	}

	position, ok := index.position[id]
	if !ok {
		return []Category{}
	}
	return index.collect(index.children[position])
}

// HasChildren reports whether any record references id as its parent.
func (index *Index) HasChildren(id ID) bool {
	for _, record := range index.records {
		if record.ID != id && record.Parent() == id {
			return true
		}
	}
	return false
}

// Ancestors returns the chain of resolved parents of id, nearest first.
func (index *Index) Ancestors(id ID) []Category {
	position, ok := index.position[id]
	if !ok {
		return []Category{}
	}

	ancestors := []Category{}
	for parent := index.parent[position]; parent != noParent; parent = index.parent[parent] {
		ancestors = append(ancestors, index.records[parent])
	}
	return ancestors
}

// Depth returns the number of parent hops from id to its root.
func (index *Index) Depth(id ID) int {
	return len(index.Ancestors(id))
}

// Descendants returns every transitive descendant of id in display order.
func (index *Index) Descendants(id ID) []ID {
	position, ok := index.position[id]
	if !ok {
		return []ID{}
	}

	visits := index.walk(index.children[position], 1)
	descendants := make([]ID, len(visits))
	for i, visit := range visits {
		descendants[i] = index.records[visit.position].ID
	}
	return descendants
}

// Stats counts the categories of the snapshot.
func (index *Index) Stats() Stats {
	stats := Stats{Total: len(index.records)}
	for _, record := range index.records {
		if record.Enabled {
			stats.Enabled++
		}
	}
	return stats
}

func (index *Index) collect(positions []int) []Category {
	categories := make([]Category, len(positions))
	for i, position := range positions {
		categories[i] = index.records[position]
	}
	return categories
}
