package statesman

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Rules is the transition rule table: for each state, the set of states
// reachable from it. A state absent from the table accepts no further
// transitions, which makes it a natural absorbing state.
//
// The machine copies the table at construction; mutating a Rules value
// after passing it to New has no effect on the machine.
type Rules[S comparable] map[S][]S

// Allows reports whether the table permits a direct from→to move.
func (r Rules[S]) Allows(from, to S) bool {
	return slices.Contains(r[from], to)
}

// Allowed returns the states reachable from the given state. The result
// is a copy and safe to modify.
func (r Rules[S]) Allowed(from S) []S {
	return slices.Clone(r[from])
}

// compile builds the set-valued lookup structure the machine validates
// against. Duplicate targets collapse.
func (r Rules[S]) compile() map[S]map[S]struct{} {
	compiled := make(map[S]map[S]struct{}, len(r))
	for from, targets := range r {
		set := make(map[S]struct{}, len(targets))
		for _, to := range targets {
			set[to] = struct{}{}
		}
		compiled[from] = set
	}
	return compiled
}

// ParseRules decodes a YAML rule table, letting transition graphs live in
// configuration files:
//
//	pending: [confirmed, cancelled]
//	confirmed: [cancelled]
func ParseRules[S ~string](data []byte) (Rules[S], error) {
	var rules Rules[S]
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse transition rules: %w", err)
	}
	return rules, nil
}

// DecodeRules reads a YAML rule table from r. See ParseRules for the
// expected document shape.
func DecodeRules[S ~string](r io.Reader) (Rules[S], error) {
	var rules Rules[S]
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("decode transition rules: %w", err)
	}
	return rules, nil
}
