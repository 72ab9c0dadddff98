package argset

import (
	"encoding"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// ParsedArgs is the result of a successful Parse. It is constructed
// fresh per call and owned by the caller; the long name of each
// definition is the stable key throughout.
type ParsedArgs struct {
	flags      map[string]struct{}
	options    map[string]string
	positional []string
}

// Has reports whether the named flag was present. Repetition is
// idempotent: a flag is either present or absent.
func (a *ParsedArgs) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Option returns the raw string value of the named option. If the
// option was repeated, the last occurrence wins.
func (a *ParsedArgs) Option(name string) (string, bool) {
	v, ok := a.options[name]
	return v, ok
}

// Positional returns the bare tokens in encounter order.
func (a *ParsedArgs) Positional() []string {
	return a.positional
}

// FlagNames returns the present flags' long names, sorted for stable
// output.
func (a *ParsedArgs) FlagNames() []string {
	names := make([]string, 0, len(a.flags))
	for name := range a.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Value converts the named option's string value into T.
//
// The second return distinguishes absence from failure:
//
//	absent key            -> zero, false, nil
//	present, unparseable  -> zero, true, wrapped parse error
//	present, parseable    -> value, true, nil
//
// Supported targets are string, bool, int, int64, uint, uint64,
// float64, time.Duration, and any type whose pointer implements
// encoding.TextUnmarshaler.
func Value[T any](args *ParsedArgs, name string) (T, bool, error) {
	var out T

	raw, ok := args.options[name]
	if !ok {
		return out, false, nil
	}

	if err := parseInto(raw, &out); err != nil {
		return out, true, fmt.Errorf("parse option '%s': %w", name, err)
	}
	return out, true, nil
}

func parseInto(raw string, out any) error {
	switch v := out.(type) {
	case *string:
		*v = raw
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*v = b
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*v = n
	case *int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		*v = n
	case *uint:
		n, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return err
		}
		*v = uint(n)
	case *uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		*v = n
	case *float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*v = f
	case *time.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*v = d
	default:
		if u, ok := out.(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(raw))
		}
		return fmt.Errorf("unsupported target type %T", out)
	}
	return nil
}
