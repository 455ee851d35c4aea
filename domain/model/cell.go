package model

import (
	"fmt"
	"sort"
	"strings"
)

// Cell grammar tokens
const (
	// MapPrefix marks a cell decoded as a key-value mapping
	MapPrefix = "m:"
	// ListPrefix marks a cell decoded as an ordered list
	ListPrefix = "l:"
	// NullLiteral is the absent value
	NullLiteral = "null"
	// EmptyLiteral is a zero-entry container inside a map or list body
	EmptyLiteral = "empty"
	// CommentPrefix marks a row that is skipped entirely
	CommentPrefix = "#"

	mapItemSeparator     = "|"
	mapKeyValueSeparator = ":"
	listItemSeparator    = ","
	sigilLength          = 2
)

// CellKind is the shape of a decoded cell
type CellKind int

const (
	// KindScalar is plain text used as-is
	KindScalar CellKind = iota
	// KindNull is the bare null literal
	KindNull
	// KindList is an ordered list of strings
	KindList
	// KindMapList is an ordered list of mappings
	KindMapList
	// KindMap is a string to string mapping
	KindMap
)

// String returns the kind name
func (k CellKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindNull:
		return "null"
	case KindList:
		return "list"
	case KindMapList:
		return "map list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Cell is one decoded fixture cell. Container kinds distinguish absent
// (nil) from empty (non-nil, zero length).
type Cell struct {
	kind CellKind
	text string
	list []string
	maps []map[string]string
	m    map[string]string
}

// NullCell returns the absent value.
func NullCell() Cell {
	return Cell{kind: KindNull}
}

// ScalarCell returns a plain text cell.
func ScalarCell(text string) Cell {
	return Cell{kind: KindScalar, text: text}
}

// ListCell returns a list cell. A nil slice is an absent list.
func ListCell(items []string) Cell {
	return Cell{kind: KindList, list: items}
}

// MapListCell returns a list-of-mappings cell. A nil slice is an absent list.
func MapListCell(items []map[string]string) Cell {
	return Cell{kind: KindMapList, maps: items}
}

// MapCell returns a mapping cell. A nil map is an absent mapping.
func MapCell(m map[string]string) Cell {
	return Cell{kind: KindMap, m: m}
}

// Kind returns the cell kind
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsAbsent reports whether the cell is null or an absent container.
func (c Cell) IsAbsent() bool {
	switch c.kind {
	case KindNull:
		return true
	case KindList:
		return c.list == nil
	case KindMapList:
		return c.maps == nil
	case KindMap:
		return c.m == nil
	default:
		return false
	}
}

// Text returns the scalar text. It is empty for every other kind.
func (c Cell) Text() string {
	return c.text
}

// List returns the list items of a KindList cell
func (c Cell) List() []string {
	return c.list
}

// Maps returns the mappings of a KindMapList cell
func (c Cell) Maps() []map[string]string {
	return c.maps
}

// Map returns the mapping of a KindMap cell
func (c Cell) Map() map[string]string {
	return c.m
}

// Value returns the cell as a plain Go value: nil, string, []string,
// []map[string]string or map[string]string.
func (c Cell) Value() any {
	switch c.kind {
	case KindNull:
		return nil
	case KindList:
		return c.list
	case KindMapList:
		return c.maps
	case KindMap:
		return c.m
	default:
		return c.text
	}
}

// String implements fmt.Stringer using the fixture encoding
func (c Cell) String() string {
	return EncodeCell(c)
}

// DecodeCell interprets one raw cell. Sigils are checked in order:
// "m:", "l:", the null literal, then plain text.
func DecodeCell(raw string) (Cell, error) {
	switch {
	case strings.HasPrefix(raw, MapPrefix):
		return MapCell(DecodeMapBody(raw[sigilLength:])), nil
	case strings.HasPrefix(raw, ListPrefix):
		return DecodeListBody(raw[sigilLength:])
	case raw == NullLiteral:
		return NullCell(), nil
	default:
		return ScalarCell(raw), nil
	}
}

// DecodeMapBody decodes "k1:v1|k2:v2". The null literal yields a nil map and
// the empty literal a non-nil empty map. Empty items are skipped, an item
// without ":" maps to an empty value, and later keys overwrite earlier ones.
func DecodeMapBody(body string) map[string]string {
	switch body {
	case NullLiteral:
		return nil
	case EmptyLiteral:
		return map[string]string{}
	}

	result := make(map[string]string)
	for _, item := range strings.Split(body, mapItemSeparator) {
		if item == "" {
			continue
		}
		key, value, _ := strings.Cut(item, mapKeyValueSeparator)
		result[key] = value
	}
	return result
}

// DecodeListBody decodes the body of an "l:" cell. Whether the elements are
// mappings is decided once, from the "m:" prefix of the body; every element
// of a map list then loses its own two character prefix.
func DecodeListBody(body string) (Cell, error) {
	if body == NullLiteral {
		return ListCell(nil), nil
	}

	if strings.HasPrefix(body, MapPrefix) {
		items := strings.Split(body, listItemSeparator)
		maps := make([]map[string]string, 0, len(items))
		for i, item := range items {
			if len(item) < sigilLength {
				return Cell{}, fmt.Errorf("%w: list item %d %q has no sigil prefix", ErrMalformedCell, i, item)
			}
			maps = append(maps, decodeNestedMap(item[sigilLength:]))
		}
		return MapListCell(maps), nil
	}

	if body == EmptyLiteral {
		return ListCell([]string{}), nil
	}
	return ListCell(strings.Split(body, listItemSeparator)), nil
}

// decodeNestedMap never yields nil: a nested null is an ordinary key.
func decodeNestedMap(body string) map[string]string {
	if body == NullLiteral {
		return map[string]string{NullLiteral: ""}
	}
	return DecodeMapBody(body)
}

// DecodeRow decodes every cell of a row left to right. The first failure
// aborts the row.
func DecodeRow(raw []string) ([]Cell, error) {
	cells := make([]Cell, 0, len(raw))
	for i, value := range raw {
		cell, err := DecodeCell(value)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// IsCommentRow reports whether the first cell of a row starts with "#"
func IsCommentRow(raw []string) bool {
	return len(raw) > 0 && strings.HasPrefix(raw[0], CommentPrefix)
}

// EncodeCell writes a cell back in fixture form. For cells decoded from
// canonical text, DecodeCell(EncodeCell(c)) reproduces c. Map entries are
// written in key order. An absent map list is written as "l:null" and
// therefore reads back as an absent plain list.
func EncodeCell(c Cell) string {
	switch c.kind {
	case KindNull:
		return NullLiteral
	case KindList:
		switch {
		case c.list == nil:
			return ListPrefix + NullLiteral
		case len(c.list) == 0:
			return ListPrefix + EmptyLiteral
		default:
			return ListPrefix + strings.Join(c.list, listItemSeparator)
		}
	case KindMapList:
		if c.maps == nil {
			return ListPrefix + NullLiteral
		}
		items := make([]string, 0, len(c.maps))
		for _, m := range c.maps {
			items = append(items, MapPrefix+encodeMapBody(m))
		}
		return ListPrefix + strings.Join(items, listItemSeparator)
	case KindMap:
		return MapPrefix + encodeMapBody(c.m)
	default:
		return c.text
	}
}

func encodeMapBody(m map[string]string) string {
	if m == nil {
		return NullLiteral
	}
	if len(m) == 0 {
		return EmptyLiteral
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, k+mapKeyValueSeparator+m[k])
	}
	return strings.Join(items, mapItemSeparator)
}
