package iotsitewise

import (
	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

// modelEqual compares the pointed-to values field by field. Two nil pointers
// are equal, a nil and a non-nil pointer are not. NaN equals NaN, so every
// value equals itself.
func modelEqual[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b, cmpopts.EquateNaNs())
}

// modelHash hashes the JSON encoding of v. Unset fields are left out of the
// encoding and map keys are sorted, so Equal values hash the same.
//
// JSON has no form for NaN or ±Inf. Values holding one are hashed from
// their YAML encoding instead, which writes them as .nan and ±.inf.
func modelHash[T any](v *T) uint64 {
	if v == nil {
		return 0
	}
	data, err := json.Marshal(v)
	if err != nil {
		if data, err = yaml.Marshal(v); err != nil {
			return 0
		}
	}
	return xxhash.Sum64(data)
}
