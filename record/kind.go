package record

// Kind classifies a value by structural shape.
type Kind int

const (
	KindLeaf Kind = iota
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "leaf"
	}
}

// KindOf returns the structural kind of v. A nil *Record is a leaf.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case *Record:
		if t == nil {
			return KindLeaf
		}
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindLeaf
	}
}

// IsContainer reports whether v is a mapping or a sequence.
func IsContainer(v any) bool {
	return KindOf(v) != KindLeaf
}
