// SPDX-License-Identifier: MIT
// Package: praxis/store
//
// persist.go — serialization of the full pattern set. JSON is the
// canonical format; YAML is offered for hand-edited pattern catalogs.
// Both codecs share one contract: Save writes the insertion-ordered
// record list, Load parses and validates the entire document into a
// buffer and only then merges it into the store (by ID, last write
// wins), so a failed Load leaves the store exactly as it was.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/praxis/core"
)

// Save writes the store's patterns to w as an indented JSON record list,
// in insertion order.
func (ps *PatternStore) Save(w io.Writer) error {
	data, err := json.MarshalIndent(ps.Patterns(), "", "  ")
	if err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("store: save: %w", err)
	}

	return nil
}

// Load reads a JSON record list from r and merges every pattern into the
// store by ID. All records are decoded and validated before the first
// insertion: on any error the store is untouched and the returned error
// satisfies errors.Is(err, ErrDecode), with a *DecodeError naming the
// offending record and field.
func (ps *PatternStore) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &DecodeError{Index: -1, Err: err}
	}

	// 1) Split the document into raw records first, so a per-record
	//    failure can report its index.
	var raws []json.RawMessage
	if err = json.Unmarshal(data, &raws); err != nil {
		return &DecodeError{Index: -1, Err: err}
	}

	// 2) Decode and validate every record into a buffer.
	buf := make([]core.Pattern, 0, len(raws))
	for i, raw := range raws {
		var p core.Pattern
		if err = json.Unmarshal(raw, &p); err != nil {
			return decodeErr(i, jsonErrField(err), err)
		}
		if field, verr := normalizePattern(&p); verr != nil {
			return decodeErr(i, field, verr)
		}
		buf = append(buf, p)
	}

	// 3) Commit atomically: nothing above mutated the store.
	for _, p := range buf {
		ps.Add(p)
	}

	return nil
}

// SaveYAML writes the pattern set to w as a YAML record list.
func (ps *PatternStore) SaveYAML(w io.Writer) error {
	data, err := yaml.Marshal(ps.Patterns())
	if err != nil {
		return fmt.Errorf("store: save yaml: %w", err)
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("store: save yaml: %w", err)
	}

	return nil
}

// LoadYAML reads a YAML record list from r with the same all-or-nothing
// merge semantics as Load.
func (ps *PatternStore) LoadYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &DecodeError{Index: -1, Err: err}
	}

	var nodes []yaml.Node
	if err = yaml.Unmarshal(data, &nodes); err != nil {
		return &DecodeError{Index: -1, Err: err}
	}

	buf := make([]core.Pattern, 0, len(nodes))
	for i := range nodes {
		var p core.Pattern
		if err = nodes[i].Decode(&p); err != nil {
			return decodeErr(i, "", err)
		}
		if field, verr := normalizePattern(&p); verr != nil {
			return decodeErr(i, field, verr)
		}
		buf = append(buf, p)
	}

	for _, p := range buf {
		ps.Add(p)
	}

	return nil
}

// SaveFile writes the store to path, choosing the YAML codec when the
// file name ends in .yaml or .yml and JSON otherwise.
func (ps *PatternStore) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", path, err)
	}
	defer f.Close()

	if yamlPath(path) {
		return ps.SaveYAML(f)
	}

	return ps.Save(f)
}

// LoadFile merges patterns from path with codec selection as in SaveFile.
func (ps *PatternStore) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("store: load %s: %w", path, err)
	}
	defer f.Close()

	if yamlPath(path) {
		return ps.LoadYAML(f)
	}

	return ps.Load(f)
}

// yamlPath reports whether path names a YAML document.
func yamlPath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// jsonErrField extracts the offending field path from a json type error,
// or "" when the codec does not say.
func jsonErrField(err error) string {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return ute.Field
	}

	return ""
}

// normalizePattern applies the documented decode defaults and then
// validates every closed enumeration strictly. Returns the dotted field
// path and cause on failure.
//
// Defaults: an absent constraint kind decodes as "invariant" and an
// absent composition type as "sequential". Any present-but-unknown tag
// is a hard error.
func normalizePattern(p *core.Pattern) (string, error) {
	// Problem constraints.
	for i := range p.Problem.Constraints {
		c := &p.Problem.Constraints[i]
		if c.Kind == "" {
			c.Kind = core.Invariant
		}
		if !c.Kind.Valid() {
			return fmt.Sprintf("problem.constraints[%d].type", i),
				fmt.Errorf("%w: %q", core.ErrUnknownConstraintKind, c.Kind)
		}
	}

	// Problem goal (optional).
	if p.Problem.Goal != nil && !p.Problem.Goal.Kind.Valid() {
		return "problem.goal.type",
			fmt.Errorf("%w: %q", core.ErrUnknownGoalKind, p.Problem.Goal.Kind)
	}

	// Transformation composition.
	tr := &p.Solution.Transformation
	if tr.Composition == "" {
		tr.Composition = core.Sequential
	}
	if !tr.Composition.Valid() {
		return "solution.transformation.composition_type",
			fmt.Errorf("%w: %q", core.ErrUnknownComposition, tr.Composition)
	}

	// Steps: the operation is mandatory and drawn from the closed catalog.
	for i := range tr.Steps {
		if op := tr.Steps[i].Op; !op.Valid() {
			return fmt.Sprintf("solution.transformation.steps[%d].operation", i),
				fmt.Errorf("%w: %q", core.ErrUnknownOp, op)
		}
	}

	return "", nil
}
