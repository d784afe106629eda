// Package record provides an ordered, untyped value model and the structural
// transforms that operate on it.
//
// Data handled by this package comes from JSON documents, DynamoDB images and
// application code that does not know its shape ahead of time. Values are
// modelled as three kinds:
//
//   - Mapping: a [*Record], an insertion-ordered string-keyed mapping
//   - Sequence: a []any
//   - Leaf: every other value (nil, strings, numbers, booleans, ...)
//
// # Transforms
//
// Transforms come in two flavours and the difference is visible in their
// signatures:
//
//   - [PureTransform] returns a new value and leaves its input untouched:
//     [Cloner] ([Clone]) and [Remapper] ([Remap]).
//   - [MutatingTransform] rewrites its argument in place: [Pruner]
//     ([PruneStrict], [PruneLoose]).
//
// Callers that need an untouched original must [Clone] before pruning.
//
// # Recursion
//
// Inputs are expected to be acyclic. With the zero [Config] the transforms
// recurse without bound, so a self-referential value exhausts the goroutine
// stack and the runtime aborts. Setting [Config.MaxDepth] turns that into an
// [ErrDepthExceeded] error:
//
//	c := record.Cloner{Config: record.Config{MaxDepth: 64}}
//	out, err := c.Apply(value)
//
// # Errors
//
//   - [ErrTypeKind] - an argument has the wrong runtime shape (see [KindError])
//   - [ErrDepthExceeded] - a guarded transform nested deeper than allowed (see [DepthError] for the path)
package record
