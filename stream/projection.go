package stream

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jacentio/arbor/record"
)

// ErrInvalidProjection is returned for projection definitions that cannot
// be applied.
var ErrInvalidProjection = errors.New("arbor: invalid projection")

// Projection describes how items of one source table are reshaped before
// they are stored.
type Projection struct {
	// Table is the source table name.
	Table string `yaml:"table"`

	// KeyAttribute names the item attribute whose value becomes the store
	// key (prefixed with the table name).
	KeyAttribute string `yaml:"key"`

	// Rename maps attribute names to the names they are stored under.
	Rename record.RenameTable `yaml:"rename"`

	// Deep also renames attributes of nested maps.
	Deep bool `yaml:"deep"`

	// Prune removes empty attributes: "strict", "loose" or "" for none.
	Prune string `yaml:"prune"`

	// Recurse makes strict pruning descend into nested values.
	Recurse bool `yaml:"recurse"`

	// MaxDepth bounds nesting while reshaping. 0 means unbounded.
	MaxDepth int `yaml:"max_depth"`
}

// Validate reports whether the projection can be applied.
func (p Projection) Validate() error {
	if p.Table == "" {
		return fmt.Errorf("%w: table is required", ErrInvalidProjection)
	}
	if p.KeyAttribute == "" {
		return fmt.Errorf("%w: %s: key is required", ErrInvalidProjection, p.Table)
	}
	if p.Prune != "" {
		if _, err := record.ParsePolicy(p.Prune); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidProjection, p.Table, err)
		}
	}
	if p.MaxDepth < 0 {
		return fmt.Errorf("%w: %s: max_depth must not be negative", ErrInvalidProjection, p.Table)
	}
	return nil
}

// Apply returns the reshaped copy of r. r itself is not modified.
func (p Projection) Apply(r *record.Record) (*record.Record, error) {
	cfg := record.SafeConfig(p.MaxDepth)

	rename := p.Rename
	if rename == nil {
		rename = record.RenameTable{}
	}
	remapped, err := record.Remapper{Table: rename, Deep: p.Deep, Config: cfg}.Apply(r)
	if err != nil {
		return nil, err
	}
	out := remapped.(*record.Record)

	if p.Prune == "" {
		return out, nil
	}
	policy, err := record.ParsePolicy(p.Prune)
	if err != nil {
		return nil, err
	}
	// pruning descends into nested values the remap shares with r
	cloned, err := record.Cloner{Config: cfg}.Apply(out)
	if err != nil {
		return nil, err
	}
	out = cloned.(*record.Record)
	pruner := record.Pruner{Policy: policy, Recurse: p.Recurse, Config: cfg}
	if err := pruner.ApplyInPlace(out); err != nil {
		return nil, err
	}
	return out, nil
}

type projectionFile struct {
	Projections []Projection `yaml:"projections"`
}

// LoadProjections reads a YAML projection file into a Registry:
//
//	projections:
//	  - table: orders
//	    key: order_id
//	    rename: {order_id: id, cust: customer}
//	    deep: true
//	    prune: strict
//	    recurse: true
func LoadProjections(r io.Reader) (*Registry, error) {
	var file projectionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode projections: %w", err)
	}

	registry := NewRegistry()
	for _, p := range file.Projections {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		registry.Register(p)
	}
	return registry, nil
}
