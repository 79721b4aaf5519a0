package hasher

import (
	"hash"
	"sort"
	"strings"
)

// Algorithm describes a registered digest algorithm.
type Algorithm interface {
	Name() string
	New() hash.Hash
}

var registry = map[string]Algorithm{}

// Register adds a digest algorithm to the registry.
func Register(alg Algorithm) {
	if alg == nil {
		return
	}
	registry[strings.ToLower(alg.Name())] = alg
}

// Lookup returns a registered algorithm by name.
func Lookup(name string) (Algorithm, bool) {
	alg, ok := registry[strings.ToLower(name)]
	return alg, ok
}

// Available returns the sorted names of registered algorithms.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
