// Package tree assembles flat parent/child record sets into trees and
// annotates trees with their depth.
//
// # Building
//
// A flat record set names its hierarchy through two fields: a
// self-identifier and a parent identifier.
//
//	records, _ := record.ParseRecords([]byte(`[
//	  {"id": 1, "parent": 0},
//	  {"id": 2, "parent": 1},
//	  {"id": 3, "parent": 1}
//	]`))
//	roots := tree.Build(records, "parent", "id", 0)
//	// [{"id":1,"parent":0,"children":[{"id":2,"parent":1},{"id":3,"parent":1}]}]
//
// Identifiers are compared the way JSON values compare: the number 1 matches
// 1, int64(1) and 1.0 but not the string "1". Leaves never get a children
// field.
//
// Two records sharing one self-identifier both adopt the same children, so
// those subtrees appear twice in the output. The child records themselves
// are shared, not copied.
//
// # Annotating
//
// [Annotate] copies a forest and writes each node's depth (1 for roots) to
// "hierarchyIndex". Levels past the maximum depth are removed entirely:
//
//	tree.Annotate(roots, 1)
//	// [{"id":1,"parent":0,"hierarchyIndex":1}]
//
// # Configuration
//
// [Builder] and [Annotator] accept a [Config] for custom field names, the
// lookup [Strategy] and a recursion limit.
package tree
