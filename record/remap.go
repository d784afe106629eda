package record

// RenameTable maps old key names to new ones. Keys absent from the table
// keep their name.
type RenameTable map[string]string

// Rename returns the output name for key.
func (t RenameTable) Rename(key string) string {
	if renamed, ok := t[key]; ok {
		return renamed
	}
	return key
}

// Remap renames the keys of v according to table without a depth guard.
//
// v must be a *Record or a []any and table must be non-nil; otherwise the
// returned error matches ErrTypeKind. Output keys keep the input order, with
// a renamed key taking the position of the original. When two keys map to
// the same name the later value wins and the earlier position is kept.
//
// With deep set, values that are non-empty Records are remapped recursively.
// Sequences nested in a Record are not descended into. Values that are not
// remapped are shared with the input.
//
// For a top-level sequence every Record element is remapped even when deep
// is false; deep only decides whether Records nested inside those elements
// are remapped too. Other elements are shared.
func Remap(v any, table RenameTable, deep bool) (any, error) {
	return Remapper{Table: table, Deep: deep}.Apply(v)
}

// RemapRecord is Remap for a known Record.
func RemapRecord(r *Record, table RenameTable, deep bool) (*Record, error) {
	out, err := Remap(r, table, deep)
	if err != nil {
		return nil, err
	}
	return out.(*Record), nil
}

// Remapper renames keys. See Remap.
type Remapper struct {
	Table  RenameTable
	Deep   bool
	Config Config
}

// Apply returns a remapped copy of v.
func (m Remapper) Apply(v any) (any, error) {
	if !IsContainer(v) {
		return nil, &KindError{Op: "remap", Arg: "value", Want: "a mapping or a sequence", Got: v}
	}
	if m.Table == nil {
		return nil, &KindError{Op: "remap", Arg: "table", Want: "a rename table", Got: nil}
	}

	cfg := m.Config
	cfg.validate()

	if s, ok := v.([]any); ok {
		return m.remapSequence(cfg, s, 1)
	}
	return m.remapRecord(cfg, v.(*Record), "", 1)
}

func (m Remapper) remapRecord(cfg Config, r *Record, path string, depth int) (*Record, error) {
	if cfg.exceeds(depth) {
		return nil, &DepthError{Path: path, Limit: cfg.MaxDepth}
	}
	out := New()
	var err error
	r.Range(func(key string, value any) bool {
		if nested, ok := value.(*Record); ok && m.Deep && nested.Len() > 0 {
			if value, err = m.remapRecord(cfg, nested, JoinPath(path, key), depth+1); err != nil {
				return false
			}
		}
		out.Set(m.Table.Rename(key), value)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m Remapper) remapSequence(cfg Config, s []any, depth int) ([]any, error) {
	if cfg.exceeds(depth) {
		return nil, &DepthError{Limit: cfg.MaxDepth}
	}
	out := make([]any, len(s))
	for i, item := range s {
		nested, ok := item.(*Record)
		if !ok || nested == nil {
			out[i] = item
			continue
		}
		remapped, err := m.remapRecord(cfg, nested, indexPath("", i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = remapped
	}
	return out, nil
}
