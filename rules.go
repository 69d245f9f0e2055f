package recordkit

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Every built-in rule skips nil values: use the type descriptor (a union
// without None) to forbid nil, and rules to constrain present values.

// Min checks that the value is not less than min.
func Min[T cmp.Ordered](min T) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			c, ok := compareOrdered(v, min)
			return ok && c >= 0
		},
		Message:  fmt.Sprintf("min value %v", min),
		SkipNone: true,
	}
}

// Max checks that the value is not greater than max.
func Max[T cmp.Ordered](max T) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			c, ok := compareOrdered(v, max)
			return ok && c <= 0
		},
		Message:  fmt.Sprintf("max value %v", max),
		SkipNone: true,
	}
}

// Range checks that the value lies in [lo, hi], inclusive on both ends.
func Range[T cmp.Ordered](lo, hi T) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			cl, ok := compareOrdered(v, lo)
			if !ok || cl < 0 {
				return false
			}
			ch, ok := compareOrdered(v, hi)
			return ok && ch <= 0
		},
		Message:  fmt.Sprintf("value in [%v, %v]", lo, hi),
		SkipNone: true,
	}
}

// MinLen checks that the value's length is not less than n.
func MinLen(n int) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			l, ok := lengthOf(v)
			return ok && l >= n
		},
		Message:  fmt.Sprintf("min length %d", n),
		SkipNone: true,
	}
}

// MaxLen checks that the value's length is not greater than n.
func MaxLen(n int) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			l, ok := lengthOf(v)
			return ok && l <= n
		},
		Message:  fmt.Sprintf("max length %d", n),
		SkipNone: true,
	}
}

// Len checks that the value's length is exactly n.
func Len(n int) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			l, ok := lengthOf(v)
			return ok && l == n
		},
		Message:  fmt.Sprintf("length %d", n),
		SkipNone: true,
	}
}

// Match checks a string value against a regular expression. The pattern is
// anchored at both ends when not already, so it must match the full string.
// An invalid pattern is a schema error and panics at construction.
func Match(pattern string) Rule {
	anchored := pattern
	if !strings.HasPrefix(anchored, "^") {
		anchored = "^" + anchored
	}
	if !strings.HasSuffix(anchored, "$") {
		anchored += "$"
	}
	rx := regexp.MustCompile(anchored)
	display := strings.TrimSuffix(strings.TrimPrefix(anchored, "^"), "$")
	return SimpleRule{
		Fn: func(v any) bool {
			rv, ok := deref(v)
			return ok && rv.Kind() == reflect.String && rx.MatchString(rv.String())
		},
		Message:  fmt.Sprintf("regular expression `%s`", display),
		SkipNone: true,
	}
}

// OneOf checks that the value is one of allowed.
func OneOf[T comparable](allowed ...T) Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			rv, ok := deref(v)
			if !ok {
				return false
			}
			tv, ok := rv.Interface().(T)
			if !ok {
				return false
			}
			for _, a := range allowed {
				if tv == a {
					return true
				}
			}
			return false
		},
		Message:  fmt.Sprintf("one of %v", allowed),
		SkipNone: true,
	}
}

// EqualsField checks that the value equals another field of the same record,
// addressed by dotted path.
func EqualsField(path string) Rule {
	return DependentRule{
		Path: path,
		Fn: func(v, other any) bool {
			av, aOK := deref(v)
			bv, bOK := deref(other)
			if !aOK || !bOK {
				return aOK == bOK
			}
			return reflect.DeepEqual(av.Interface(), bv.Interface())
		},
		Message:  "equal",
		SkipNone: true,
	}
}

// IsUUID checks that a string value is a well-formed UUID.
func IsUUID() Rule {
	return SimpleRule{
		Fn: func(v any) bool {
			rv, ok := deref(v)
			if !ok || rv.Kind() != reflect.String {
				return false
			}
			return uuid.Validate(rv.String()) == nil
		},
		Message:  "UUID string",
		SkipNone: true,
	}
}
