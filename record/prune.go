package record

// PruneStrict deletes, in place, every key of v whose value is nil or the
// empty string. With recurse set it also descends into nested Records and
// sequences. A container emptied by the descent stays in its parent.
//
// Sequence slots cannot be removed in place, so empty elements are reset to
// nil. A non-container v is left alone.
func PruneStrict(v any, recurse bool) {
	_ = Pruner{Policy: Strict, Recurse: recurse}.ApplyInPlace(v)
}

// PruneLoose deletes, in place, every key whose value is empty under the
// Loose policy and returns v. It always descends into non-empty containers;
// containers are removed only when they are empty on entry.
func PruneLoose(v any) any {
	_ = Pruner{Policy: Loose}.ApplyInPlace(v)
	return v
}

// Pruner removes empty entries in place. The Loose policy always recurses
// and ignores Recurse.
type Pruner struct {
	Policy  Policy
	Recurse bool
	Config  Config
}

// ApplyInPlace prunes v.
func (p Pruner) ApplyInPlace(v any) error {
	cfg := p.Config
	cfg.validate()
	return p.prune(cfg, v, "", 1)
}

// verdict decides what happens to a single value.
func (p Pruner) verdict(v any) (remove, descend bool) {
	if IsEmpty(p.Policy, v) {
		return true, false
	}
	if p.Policy == Loose {
		return false, IsContainer(v)
	}
	return false, p.Recurse && IsContainer(v)
}

func (p Pruner) prune(cfg Config, v any, path string, depth int) error {
	switch t := v.(type) {
	case *Record:
		if t == nil {
			return nil
		}
		if cfg.exceeds(depth) {
			return &DepthError{Path: path, Limit: cfg.MaxDepth}
		}
		var err error
		t.Range(func(key string, value any) bool {
			remove, descend := p.verdict(value)
			switch {
			case remove:
				t.Delete(key)
			case descend:
				err = p.prune(cfg, value, JoinPath(path, key), depth+1)
			}
			return err == nil
		})
		return err
	case []any:
		if cfg.exceeds(depth) {
			return &DepthError{Path: path, Limit: cfg.MaxDepth}
		}
		for i, item := range t {
			remove, descend := p.verdict(item)
			switch {
			case remove:
				t[i] = nil
			case descend:
				if err := p.prune(cfg, item, indexPath(path, i), depth+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
