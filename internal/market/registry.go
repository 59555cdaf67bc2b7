package market

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// UnknownLabel is used for market keys missing from the registry.
const UnknownLabel = "Unknown Pool"

// Key identifies a lending market by its 32-byte unique key.
type Key = common.Hash

// ParseKey converts a 0x-prefixed hex market key into a Key.
func ParseKey(input string) (Key, error) {
	input = strings.TrimSpace(input)
	data, err := hexutil.Decode(input)
	if err != nil {
		return Key{}, fmt.Errorf("invalid market key: %s", input)
	}
	if len(data) != common.HashLength {
		return Key{}, fmt.Errorf("invalid market key length: %s", input)
	}
	return common.BytesToHash(data), nil
}

// Registry maps market keys to "Collateral/Loan" labels. It is immutable once built.
type Registry struct {
	labels map[Key]string
}

// NewRegistry builds a registry from raw key -> label pairs.
func NewRegistry(labels map[string]string) (*Registry, error) {
	out := make(map[Key]string, len(labels))
	for raw, label := range labels {
		key, err := ParseKey(raw)
		if err != nil {
			return nil, err
		}
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, fmt.Errorf("empty label for market %s", key.Hex())
		}
		out[key] = label
	}
	return &Registry{labels: out}, nil
}

// Label returns the market label, falling back to UnknownLabel.
func (r *Registry) Label(rawKey string) (string, bool) {
	if r == nil {
		return UnknownLabel, false
	}
	key, err := ParseKey(rawKey)
	if err != nil {
		return UnknownLabel, false
	}
	label, ok := r.labels[key]
	if !ok {
		return UnknownLabel, false
	}
	return label, true
}

// Len returns the number of known markets.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.labels)
}

// SplitLabel splits "Collateral/Loan" into its assets. A label without a
// separator yields an empty loan asset.
func SplitLabel(label string) (collateral, loan string) {
	collateral, loan, _ = strings.Cut(label, "/")
	return collateral, loan
}
