package fieldiff

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/attrpath"
	"github.com/dmitrymomot/recordkit/pkg/valuerepr"
)

// ErrFieldsDiffer is wrapped by every reported difference.
var ErrFieldsDiffer = errors.New("fields differ")

// Schema selects paths to compare: a string path, a []string of paths, a
// []any of sub-schemas, or a map[string]any of path prefixes to sub-schemas.
type Schema = any

// PairSchema maps paths on the first object to paths on the second: a
// map[string]any whose values are a string (one target path), a []string
// (several target paths), or a nested map extending the source prefix.
type PairSchema = any

// Same compares the same paths on a and b, returning an error listing every
// differing path with both values.
func Same(a, b any, schema Schema) error {
	paths := compilePaths(schema)

	type entry struct {
		path string
		av   any
		bv   any
	}
	var diff []entry
	for _, path := range paths {
		av, err := attrpath.Resolve(a, path)
		if err != nil {
			return err
		}
		bv, err := attrpath.Resolve(b, path)
		if err != nil {
			return err
		}
		if !reflect.DeepEqual(av, bv) {
			diff = append(diff, entry{path: path, av: av, bv: bv})
		}
	}
	if len(diff) == 0 {
		return nil
	}

	sort.Slice(diff, func(i, j int) bool { return diff[i].path < diff[j].path })
	width := 0
	for _, d := range diff {
		if len(d.path) > width {
			width = len(d.path)
		}
	}
	lines := make([]string, len(diff))
	for i, d := range diff {
		lines[i] = fmt.Sprintf("      %*s: %s -> %s", width, d.path, valuerepr.Value(d.av), valuerepr.Value(d.bv))
	}
	return fmt.Errorf("%w: unexpected difference %v -> %v:\n%s", ErrFieldsDiffer, a, b, strings.Join(lines, "\n"))
}

// Pairs compares paths on a against the paired paths on b.
func Pairs(a, b any, schema PairSchema) error {
	pairs := compilePairs(schema)

	type entry struct {
		aPath, bPath string
		av, bv       any
	}
	var diff []entry
	for _, p := range pairs {
		av, err := attrpath.Resolve(a, p[0])
		if err != nil {
			return err
		}
		bv, err := attrpath.Resolve(b, p[1])
		if err != nil {
			return err
		}
		if !reflect.DeepEqual(av, bv) {
			diff = append(diff, entry{aPath: p[0], bPath: p[1], av: av, bv: bv})
		}
	}
	if len(diff) == 0 {
		return nil
	}

	sort.Slice(diff, func(i, j int) bool {
		if diff[i].aPath != diff[j].aPath {
			return diff[i].aPath < diff[j].aPath
		}
		return diff[i].bPath < diff[j].bPath
	})
	width := 0
	for _, d := range diff {
		if n := len(d.aPath) + len(d.bPath) + 4; n > width {
			width = n
		}
	}
	lines := make([]string, len(diff))
	for i, d := range diff {
		k := d.aPath + " -> " + d.bPath
		lines[i] = fmt.Sprintf("    %*s: %s -> %s", width, k, valuerepr.Value(d.av), valuerepr.Value(d.bv))
	}
	return fmt.Errorf("%w: unexpected difference %v -> %v:\n%s", ErrFieldsDiffer, a, b, strings.Join(lines, "\n"))
}

func joinKeys(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case strings.HasSuffix(a, "."):
		return a + b
	default:
		return a + "." + b
	}
}

// compilePaths flattens a Schema into dotted paths. Malformed schemas are
// definition errors and panic.
func compilePaths(schema Schema) []string {
	switch s := schema.(type) {
	case string:
		return []string{s}
	case []string:
		return append([]string(nil), s...)
	case []any:
		var result []string
		for _, item := range s {
			result = append(result, compilePaths(item)...)
		}
		return result
	case map[string]any:
		result := make([]string, 0, len(s))
		for _, key := range sortedKeys(s) {
			for _, sub := range compilePaths(s[key]) {
				result = append(result, joinKeys(key, sub))
			}
		}
		return result
	default:
		panic(fmt.Sprintf("fieldiff: invalid schema element %T", schema))
	}
}

// compilePairs flattens a PairSchema into (source path, target path) pairs.
func compilePairs(schema PairSchema) [][2]string {
	m, ok := schema.(map[string]any)
	if !ok {
		panic(fmt.Sprintf("fieldiff: invalid pair schema %T", schema))
	}
	var result [][2]string
	for _, key := range sortedKeys(m) {
		switch v := m[key].(type) {
		case string:
			result = append(result, [2]string{key, v})
		case []string:
			for _, target := range v {
				result = append(result, [2]string{key, target})
			}
		case map[string]any:
			for _, sub := range compilePairs(v) {
				result = append(result, [2]string{joinKeys(key, sub[0]), sub[1]})
			}
		default:
			panic(fmt.Sprintf("fieldiff: invalid pair schema value %T for key %q", m[key], key))
		}
	}
	return result
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
