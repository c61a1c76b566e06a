// input.go — problem-file loading shared by the match and features
// commands. Problems arrive as JSON or YAML documents; when a --domain is
// given the file is read as a concrete description and lifted through the
// stock mapping for that domain first.

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/praxis/catalog"
	"github.com/katalvlaran/praxis/core"
	"github.com/katalvlaran/praxis/mapping"
	"github.com/katalvlaran/praxis/store"
)

// decodeFile unmarshals path into v, choosing the codec by extension.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Unmarshal(data, v)
	}

	return json.Unmarshal(data, v)
}

// loadProblem reads an abstract problem from path. With a non-empty
// domain the file is treated as a concrete description in that domain's
// vocabulary and abstracted through the stock mapping. Problems without
// an ID get a generated one so downstream output stays addressable.
func loadProblem(path, domain string) (core.Problem, error) {
	var problem core.Problem

	if domain != "" {
		m, ok := catalog.Mappings()[domain]
		if !ok {
			return core.Problem{}, fmt.Errorf("unknown domain %q", domain)
		}
		var desc mapping.ProblemDesc
		if err := decodeFile(path, &desc); err != nil {
			return core.Problem{}, fmt.Errorf("read %s: %w", path, err)
		}
		abstracted, err := mapping.Abstract(desc, m)
		if err != nil {
			return core.Problem{}, err
		}
		problem = abstracted
	} else if err := decodeFile(path, &problem); err != nil {
		return core.Problem{}, fmt.Errorf("read %s: %w", path, err)
	}

	if problem.ID == "" {
		problem.ID = "prob-" + uuid.NewString()
		slog.Debug("assigned generated problem id", "id", problem.ID)
	}

	return problem, nil
}

// loadStore seeds the stock catalog and, when storePath is non-empty,
// merges a saved pattern library over it.
func loadStore(storePath string) (*store.PatternStore, error) {
	st := store.New()
	catalog.Seed(st)
	if storePath != "" {
		if err := st.LoadFile(storePath); err != nil {
			return nil, err
		}
		slog.Debug("merged pattern library", "path", storePath, "patterns", st.Len())
	}

	return st, nil
}
