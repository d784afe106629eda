package record

// PureTransform produces a new value and never modifies its input.
type PureTransform interface {
	Apply(v any) (any, error)
}

// MutatingTransform rewrites its argument in place. Callers must hold the
// only reference to the argument for the duration of the call.
type MutatingTransform interface {
	ApplyInPlace(v any) error
}

var (
	_ PureTransform     = Cloner{}
	_ PureTransform     = Remapper{}
	_ MutatingTransform = Pruner{}
)
