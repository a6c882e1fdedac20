package nested

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultDelimiter separates keys in the string form of a path.
const DefaultDelimiter = "."

// ErrInvalidPath is returned when a path specification is neither a string
// nor a sequence of keys.
var ErrInvalidPath = errors.New("path must be a string or a sequence of keys")

// Path is an ordered sequence of keys, each identifying one level of descent
// into a nested structure. An empty Path denotes the structure itself.
type Path []string

// Root is the empty path, addressing the whole structure.
var Root = Path{}

// ParsePath normalizes a path specification into a Path.
//
// A string is split on the delimiter; empty segments are preserved as
// literal empty-string keys. A []string, Path, or []any of strings and
// integers is used as-is, each element converted to its key form. A nil
// specification is the root path. Any other type fails with ErrInvalidPath.
// An empty delimiter falls back to DefaultDelimiter.
func ParsePath(spec any, delimiter string) (Path, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	switch p := spec.(type) {
	case nil:
		return Root, nil
	case string:
		return Path(strings.Split(p, delimiter)), nil
	case Path:
		return p, nil
	case []string:
		return Path(p), nil
	case []any:
		keys := make(Path, 0, len(p))

		for _, elem := range p {
			key, err := keyOf(elem)
			if err != nil {
				return nil, err
			}

			keys = append(keys, key)
		}

		return keys, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidPath, spec)
	}
}

// keyOf converts a single path segment to its string key form.
func keyOf(elem any) (string, error) {
	switch k := elem.(type) {
	case string:
		return k, nil
	case int:
		return strconv.Itoa(k), nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	case uint64:
		return strconv.FormatUint(k, 10), nil
	case float64:
		// JSON decoding yields float64 for numeric keys passed through
		// generic structures; only integral values are valid keys.
		if k == float64(int64(k)) {
			return strconv.FormatInt(int64(k), 10), nil
		}

		return "", fmt.Errorf("%w: non-integral key %v", ErrInvalidPath, k)
	default:
		return "", fmt.Errorf("%w: unsupported key type %T", ErrInvalidPath, elem)
	}
}
