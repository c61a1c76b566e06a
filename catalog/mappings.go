// SPDX-License-Identifier: MIT
// Package: praxis/catalog
//
// mappings.go — the stock domain mappings, keyed by domain name.

package catalog

import "github.com/katalvlaran/praxis/mapping"

// Mappings returns the stock domain mappings keyed by domain name. The
// map and its entries are fresh on every call.
func Mappings() map[string]mapping.DomainMapping {
	return map[string]mapping.DomainMapping{
		"algorithms": {
			Domain: "algorithms",
			Types: map[string]string{
				"array":      "collection",
				"element":    "element",
				"comparison": "relation",
				"index":      "position",
			},
			Ops: map[string]string{
				"split":         "decompose",
				"merge":         "compose",
				"sort":          "transform",
				"binary_search": "search",
				"memoize":       "fix",
			},
		},
		"linear_algebra": {
			Domain: "linear_algebra",
			Types: map[string]string{
				"vector_space": "collection",
				"vector":       "element",
				"matrix":       "operation",
				"scalar":       "element",
				"subspace":     "sub_collection",
			},
			Ops: map[string]string{
				"eigendecomposition": "decompose",
				"matrix_multiply":    "compose",
				"linear_transform":   "transform",
				"row_reduce":         "reduce",
				"solve_system":       "search",
				"transpose":          "dualize",
			},
			Axioms: map[string]any{
				"composable":  true,
				"commutative": false,
				"invertible":  "when det != 0",
			},
		},
		"software_engineering": {
			Domain: "software_engineering",
			Types: map[string]string{
				"class":      "collection",
				"method":     "operation",
				"field":      "element",
				"interface":  "contract",
				"module":     "container",
				"dependency": "relation",
			},
			Ops: map[string]string{
				"extract_class":       "decompose",
				"compose_services":    "compose",
				"refactor":            "transform",
				"simplify":            "reduce",
				"find_implementation": "search",
				"define_interface":    "lift",
				"implement_interface": "project",
			},
		},
	}
}
