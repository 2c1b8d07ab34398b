package internal

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Attr is a single tag attribute. A bare key is a flag; key=value carries
// a string value.
type Attr struct {
	Value string
	Flag  bool
}

// String returns the attribute value, "true" for flags.
func (a Attr) String() string {
	if a.Flag {
		return AttrValueTrue
	}
	return a.Value
}

// Attributes maps attribute names to values.
type Attributes map[string]Attr

var (
	attrSplitter = regexp.MustCompile(`\s+`)
	attrSegment  = regexp.MustCompile(`^(.+?)(?:\s*=\s*(.+))?$`)

	autoDirections = map[string]bool{
		DirectionBackward:        true,
		DirectionForward:         true,
		DirectionBackwardForward: true,
		DirectionForwardBackward: true,
		DirectionNearest:         true,
	}
)

// ParseAttributes parses the trailing attribute text of a tag.
// Direction shorthands (<, >, <>, ><, |) become direction=<shorthand>.
// Malformed segments are dropped.
func ParseAttributes(raw string) Attributes {
	attrs := make(Attributes)
	if strings.TrimSpace(raw) == StringValueEmpty {
		return attrs
	}

	for _, segment := range attrSplitter.Split(raw, -1) {
		m := attrSegment.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		key, val := m[1], m[2]
		if strings.HasPrefix(key, "=") {
			continue
		}

		if autoDirections[key] {
			attrs[AttrDirection] = Attr{Value: key}
			continue
		}

		if val == StringValueEmpty {
			attrs[key] = Attr{Flag: true}
		} else {
			attrs[key] = Attr{Value: val}
		}
	}

	return attrs
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Get returns the attribute and whether it was present.
func (a Attributes) Get(key string) (Attr, bool) {
	v, ok := a[key]
	return v, ok
}

// Flag reports whether key is set to a truthy value: a bare flag or any
// value other than "false", "0" and "".
func (a Attributes) Flag(key string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	if v.Flag {
		return true
	}
	switch v.Value {
	case StringValueEmpty, AttrValueFalse, "0":
		return false
	}
	return true
}

// String returns the string value of key, or def when key is absent or a
// bare flag.
func (a Attributes) String(key, def string) string {
	v, ok := a[key]
	if !ok || v.Flag {
		return def
	}
	return v.Value
}

// Int returns key parsed as an integer, or def.
func (a Attributes) Int(key string, def int) int {
	v, ok := a[key]
	if !ok || v.Flag {
		return def
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil {
		f, ferr := strconv.ParseFloat(v.Value, 64)
		if ferr != nil {
			return def
		}
		return int(f)
	}
	return n
}

// Direction returns the direction attribute, empty when unset.
func (a Attributes) Direction() string {
	return a.String(AttrDirection, StringValueEmpty)
}

// Keys returns all attribute keys in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the attributes as strings.
func (a Attributes) Map() map[string]string {
	m := make(map[string]string, len(a))
	for k, v := range a {
		m[k] = v.String()
	}
	return m
}
