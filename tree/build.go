package tree

import (
	"fmt"

	"github.com/jacentio/arbor/record"
)

// Build assembles flat records into a forest. The roots are the records
// whose parentKey value equals root; the children of a record are the
// records whose parentKey value equals that record's childKey value.
//
// Records are modified in place: a record with at least one child gets a
// children field holding them, and a record without children is left as it
// was. Sibling order follows input order. Build never returns nil.
//
// Build does not guard against parent chains that loop back on themselves;
// use a Builder with RecursionLimit for untrusted input.
func Build(records []*record.Record, parentKey, childKey string, root any) []*record.Record {
	out, _ := Builder{Config: DefaultConfig()}.Build(records, parentKey, childKey, root)
	return out
}

// Builder assembles trees with a custom Config.
type Builder struct {
	Config Config
}

// Build assembles records as the package-level Build does. It fails only
// when Config.RecursionLimit is set and exceeded.
func (b Builder) Build(records []*record.Record, parentKey, childKey string, root any) ([]*record.Record, error) {
	cfg := b.Config
	cfg.validate()

	a := &assembler{
		cfg:       cfg,
		records:   records,
		parentKey: parentKey,
		childKey:  childKey,
	}
	if cfg.Strategy == StrategyIndexed {
		a.index()
	}
	return a.level(root, "", 1)
}

type assembler struct {
	cfg       Config
	records   []*record.Record
	parentKey string
	childKey  string

	// groups maps a normalized parent value to its records in input order.
	// nil under StrategyScan.
	groups map[any][]*record.Record
}

func (a *assembler) index() {
	a.groups = make(map[any][]*record.Record)
	for _, r := range a.records {
		if r == nil {
			continue
		}
		key, ok := record.IndexKey(r.Value(a.parentKey))
		if !ok {
			continue
		}
		a.groups[key] = append(a.groups[key], r)
	}
}

func (a *assembler) matches(parent any) []*record.Record {
	if a.groups != nil {
		key, ok := record.IndexKey(parent)
		if !ok {
			return nil
		}
		return a.groups[key]
	}

	var out []*record.Record
	for _, r := range a.records {
		if r != nil && record.SameValue(r.Value(a.parentKey), parent) {
			out = append(out, r)
		}
	}
	return out
}

// level assembles the records under parent. path lists the identifiers
// walked so far and is only tracked when a recursion limit is set.
func (a *assembler) level(parent any, path string, depth int) ([]*record.Record, error) {
	found := a.matches(parent)
	out := make([]*record.Record, 0, len(found))
	if len(found) == 0 {
		return out, nil
	}
	if limit := a.cfg.RecursionLimit; limit > 0 && depth > limit {
		return nil, &record.DepthError{Path: path, Limit: limit}
	}

	for _, r := range found {
		id := r.Value(a.childKey)
		var childPath string
		if a.cfg.RecursionLimit > 0 {
			childPath = record.JoinPath(path, fmt.Sprint(id))
		}
		children, err := a.level(id, childPath, depth+1)
		if err != nil {
			return nil, err
		}
		if len(children) > 0 {
			r.Set(a.cfg.ChildrenKey, toSequence(children))
		}
		out = append(out, r)
	}
	return out, nil
}

func toSequence(nodes []*record.Record) []any {
	seq := make([]any, len(nodes))
	for i, n := range nodes {
		seq[i] = n
	}
	return seq
}
