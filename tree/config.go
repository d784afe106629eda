package tree

import (
	"fmt"
	"strings"
)

const (
	// DefaultChildrenKey is the field holding a node's children.
	DefaultChildrenKey = "children"

	// DefaultIndexKey is the field Annotate stamps with the depth index.
	DefaultIndexKey = "hierarchyIndex"

	// DefaultMaxDepth is how many levels Annotate keeps by default.
	DefaultMaxDepth = 10
)

// Strategy selects how Build finds the children of a node.
type Strategy int

const (
	// StrategyIndexed groups records by parent value in one pass and
	// assembles the tree from the groups.
	StrategyIndexed Strategy = iota

	// StrategyScan re-scans every record at every level. Output is identical
	// to StrategyIndexed; cost is quadratic in the record count.
	StrategyScan
)

func (s Strategy) String() string {
	switch s {
	case StrategyIndexed:
		return "indexed"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "indexed" or "scan" (case-insensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "indexed", "":
		return StrategyIndexed, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("arbor: unknown tree strategy %q", s)
	}
}

// Config holds configuration for Builder and Annotator.
type Config struct {
	// ChildrenKey is the field that holds child nodes.
	// Default: "children"
	ChildrenKey string

	// IndexKey is the field Annotator writes the 1-based depth to.
	// Default: "hierarchyIndex"
	IndexKey string

	// MaxDepth is the number of levels Annotator keeps. Nodes below it are
	// dropped together with their subtrees.
	// Default: 10
	MaxDepth int

	// Strategy selects the Builder lookup.
	// Default: StrategyIndexed
	Strategy Strategy

	// RecursionLimit bounds how many levels Builder may assemble. A parent
	// chain that loops back on itself reports ErrDepthExceeded instead of
	// recursing forever.
	// Default: 0 (unbounded)
	RecursionLimit int
}

// DefaultConfig returns the conventional field names and depth.
func DefaultConfig() Config {
	return Config{
		ChildrenKey: DefaultChildrenKey,
		IndexKey:    DefaultIndexKey,
		MaxDepth:    DefaultMaxDepth,
		Strategy:    StrategyIndexed,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.ChildrenKey == "" {
		c.ChildrenKey = DefaultChildrenKey
	}
	if c.IndexKey == "" {
		c.IndexKey = DefaultIndexKey
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Strategy != StrategyIndexed && c.Strategy != StrategyScan {
		c.Strategy = StrategyIndexed
	}
	if c.RecursionLimit < 0 {
		c.RecursionLimit = 0
	}
}
