// Package fieldcodec converts between structured in-memory field values and
// the flat text cells the record store persists.
//
// Multi-value fields are stored as a JSON array in a single TEXT cell. Older
// rows, and rows edited by hand, may instead hold a comma-separated string;
// both shapes must keep decoding forever, so DecodeList is deliberately
// defensive.
package fieldcodec

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DecodeList turns a persisted cell value into an ordered list of strings.
//
// Resolution order:
//  1. value is already a sequence: returned as-is.
//  2. value parses as a JSON array: the parsed elements.
//  3. fallback: comma-split, each piece trimmed, empty pieces dropped.
//     A legacy element containing a literal comma cannot round-trip through
//     this path; there is no escaping rule, matching the historical data.
//  4. absent or empty value: empty list.
func DecodeList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			out = append(out, stringify(elem))
		}
		return out
	case []byte:
		return decodeListText(string(v))
	case string:
		return decodeListText(v)
	default:
		return []string{}
	}
}

func decodeListText(text string) []string {
	if text == "" {
		return []string{}
	}

	var parsed []any
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		out := make([]string, 0, len(parsed))
		for _, elem := range parsed {
			out = append(out, stringify(elem))
		}
		return out
	}

	pieces := strings.Split(text, ",")
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		out = append(out, piece)
	}
	return out
}

// EncodeList serializes a list of strings into the canonical persisted form,
// a JSON array. A nil list encodes as "[]".
func EncodeList(list []string) string {
	if list == nil {
		list = []string{}
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		// []string cannot fail to marshal; keep the cell well-formed anyway.
		return "[]"
	}
	return string(encoded)
}

// DecodeInt reads a numeric cell. The store returns TEXT and the JSON codec
// returns float64, so both are accepted. A value that does not parse reports
// ok=false; numeric fields degrade to "unset" rather than erroring.
func DecodeInt(value any) (int, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case []byte:
		return parseInt(string(v))
	case string:
		return parseInt(v)
	default:
		return 0, false
	}
}

func parseInt(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return n, true
}

// DecodeString normalizes a scalar cell to a Go string. Absent values
// decode to the empty string.
func DecodeString(value any) string {
	if value == nil {
		return ""
	}
	return stringify(value)
}

// EncodeJSON serializes a nested field value (link maps, coordinates) for a
// TEXT cell. Returns the empty string when v is nil so the column stays
// unset instead of holding "null".
func EncodeJSON(v any) string {
	if v == nil {
		return ""
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// DecodeJSON parses a nested field cell into dst. Reports false on absent
// or malformed cells; callers treat that as the zero value.
func DecodeJSON(value any, dst any) bool {
	var text string
	switch v := value.(type) {
	case nil:
		return false
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return false
	}
	if text == "" {
		return false
	}
	return json.Unmarshal([]byte(text), dst) == nil
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(s, 10)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}
