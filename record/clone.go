package record

// Clone returns a deep copy of v without a depth guard.
//
// Records and sequences are copied recursively; every other value is copied
// as-is. A non-container argument yields an empty Record rather than the
// argument itself.
func Clone(v any) any {
	out, _ := Cloner{}.Apply(v)
	return out
}

// CloneRecord is Clone for a known Record.
func CloneRecord(r *Record) *Record {
	out, _ := Clone(r).(*Record)
	return out
}

// Cloner deep-copies values.
type Cloner struct {
	Config Config
}

// Apply returns a deep copy of v. See Clone.
func (c Cloner) Apply(v any) (any, error) {
	cfg := c.Config
	cfg.validate()

	switch t := v.(type) {
	case *Record:
		if t == nil {
			return New(), nil
		}
		return cloneRecord(cfg, t, "", 1)
	case []any:
		return cloneSequence(cfg, t, "", 1)
	default:
		return New(), nil
	}
}

func cloneValue(cfg Config, v any, path string, depth int) (any, error) {
	switch t := v.(type) {
	case *Record:
		if t == nil {
			return t, nil
		}
		return cloneRecord(cfg, t, path, depth)
	case []any:
		if t == nil {
			return t, nil
		}
		return cloneSequence(cfg, t, path, depth)
	default:
		return v, nil
	}
}

func cloneRecord(cfg Config, r *Record, path string, depth int) (*Record, error) {
	if cfg.exceeds(depth) {
		return nil, &DepthError{Path: path, Limit: cfg.MaxDepth}
	}
	out := New()
	var err error
	r.Range(func(key string, value any) bool {
		var copied any
		if copied, err = cloneValue(cfg, value, JoinPath(path, key), depth+1); err != nil {
			return false
		}
		out.Set(key, copied)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func cloneSequence(cfg Config, s []any, path string, depth int) ([]any, error) {
	if cfg.exceeds(depth) {
		return nil, &DepthError{Path: path, Limit: cfg.MaxDepth}
	}
	out := make([]any, len(s))
	for i, item := range s {
		copied, err := cloneValue(cfg, item, indexPath(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = copied
	}
	return out, nil
}
