package stylus

import (
	"iter"
	"slices"
)

// Stylus metadata keys.
const (
	KeyAssetIDRange   = "MPI_ASSETIDRANGE"
	KeyLabelRange     = "MPI_LABELRANGE"
	KeyDBIDRange      = "MPI_ASSETDBIDRANGE"
	KeyDateRange      = "MPI_PORTFOLIODATERANGE"
	KeyRebalance      = "MPI_Rebalance"
	KeyPortfolioType  = "MPI_PORTFOLIOTYPE"
	DefaultRebalance  = "Monthly"
	AdvancedPortfolio = "Advanced"
)

// derivedKeys are computed from the table shape and never taken from the user.
var derivedKeys = []string{KeyAssetIDRange, KeyLabelRange, KeyDBIDRange, KeyDateRange}

// IsDerived reports whether key is one of the range keys computed from the table shape.
func IsDerived(key string) bool { return slices.Contains(derivedKeys, key) }

// Metadata is an ordered mapping of Stylus metadata keys to their values.
//
// The zero value is an empty mapping ready to use.
type Metadata struct {
	keys   []string
	values map[string]string
}

// NewMetadata returns an empty Metadata.
func NewMetadata() *Metadata { return &Metadata{} }

// Len returns the number of keys.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in order.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Get returns the value for key and whether it exists.
func (m *Metadata) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key exists.
func (m *Metadata) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set replaces the value of an existing key in place, or appends a new key.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// All iterates over key/value pairs in order.
func (m *Metadata) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Cloning nil returns an empty Metadata.
func (m *Metadata) Clone() *Metadata {
	c := NewMetadata()
	for k, v := range m.All() {
		c.Set(k, v)
	}
	return c
}
