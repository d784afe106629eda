package tree

import "github.com/jacentio/arbor/record"

// Annotate returns a copy of trees in which every node carries its 1-based
// depth under "hierarchyIndex". Only maxDepth levels are kept: nodes below
// the last kept level are dropped, not flattened into their ancestors.
//
// Nodes are copied shallowly. The inputs are not modified.
func Annotate(trees []*record.Record, maxDepth int) []*record.Record {
	return AnnotateFrom(trees, maxDepth, 0)
}

// AnnotateFrom is Annotate for trees whose top level sits at currentDepth.
// When currentDepth >= maxDepth the result is empty.
func AnnotateFrom(trees []*record.Record, maxDepth, currentDepth int) []*record.Record {
	w := walker{
		childrenKey: DefaultChildrenKey,
		indexKey:    DefaultIndexKey,
		maxDepth:    maxDepth,
	}
	return w.level(trees, currentDepth)
}

// Annotator annotates trees with custom field names and depth.
type Annotator struct {
	Config Config
}

// Annotate stamps trees using the configured keys and Config.MaxDepth.
func (a Annotator) Annotate(trees []*record.Record) []*record.Record {
	cfg := a.Config
	cfg.validate()

	w := walker{
		childrenKey: cfg.ChildrenKey,
		indexKey:    cfg.IndexKey,
		maxDepth:    cfg.MaxDepth,
	}
	return w.level(trees, 0)
}

type walker struct {
	childrenKey string
	indexKey    string
	maxDepth    int
}

func (w walker) level(nodes []*record.Record, depth int) []*record.Record {
	out := []*record.Record{}
	if depth >= w.maxDepth {
		return out
	}

	for _, node := range nodes {
		if node == nil {
			continue
		}
		stamped := record.New()
		node.Range(func(key string, value any) bool {
			if key != w.childrenKey {
				stamped.Set(key, value)
			}
			return true
		})
		stamped.Set(w.indexKey, depth+1)

		if children := childRecords(node.Value(w.childrenKey)); len(children) > 0 {
			if annotated := w.level(children, depth+1); len(annotated) > 0 {
				stamped.Set(w.childrenKey, toSequence(annotated))
			}
		}
		out = append(out, stamped)
	}
	return out
}

// childRecords extracts the Record entries of a children value.
func childRecords(v any) []*record.Record {
	switch t := v.(type) {
	case []any:
		out := make([]*record.Record, 0, len(t))
		for _, item := range t {
			if r, ok := item.(*record.Record); ok && r != nil {
				out = append(out, r)
			}
		}
		return out
	case []*record.Record:
		return t
	}
	return nil
}
