package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Standard collection names. Each one maps to a single key in the store.
const (
	OrdersCollection        = "orders"
	UsersCollection         = "users"
	ProductsCollection      = "products"
	NotificationsCollection = "notifications"
	SettingsCollection      = "settings"
)

// StandardCollections lists the record collections for enumeration. The
// settings collection holds a single record and is handled separately.
var StandardCollections = []string{
	OrdersCollection,
	UsersCollection,
	ProductsCollection,
	NotificationsCollection,
}

// IsStandardCollection reports whether name is a known record collection.
func IsStandardCollection(name string) bool {
	for _, c := range StandardCollections {
		if c == name {
			return true
		}
	}
	return false
}

// Common field names.
const (
	FieldID      = "id"
	FieldClient  = "client"
	FieldProduct = "product"
	FieldAmount  = "amount"
	FieldStatus  = "status"
	FieldDate    = "date"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPlan    = "plan"
	FieldPrice   = "price"
	FieldSales   = "sales"
	FieldUnread  = "unread"
)

// Record is one entity decoded from JSON. Numbers arrive as float64 (or
// json.Number when the decoder is configured for it); every record carries an
// "id" field unique within its collection.
type Record map[string]any

// ID returns the record identifier rendered as text. Whole float64 values are
// printed without a fractional part so that 7 and "7" compare equal.
func (r Record) ID() string {
	return Text(r[FieldID])
}

// Str returns the field as text, or "" when absent.
func (r Record) Str(field string) string {
	return Text(r[field])
}

// Number returns the field coerced to float64, NaN when malformed.
func (r Record) Number(field string) float64 {
	return ToNumber(r[field])
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Text renders a field value the way it is displayed and searched.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ToNumber coerces a field value to float64. Strings yield their leading
// decimal number, so "149 €" is 149; a string with no leading number yields
// NaN, as does any non-numeric type. Callers decide whether NaN means
// "unordered" (sorting) or zero (aggregation).
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		f, err := strconv.ParseFloat(leadingNumber(strings.TrimSpace(x)), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// ParseNumber parses s as a complete decimal number. Unlike ToNumber it
// rejects trailing text.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// leadingNumber returns the longest prefix of s that is a decimal literal:
// an optional sign, digits with an optional fraction, and an optional
// exponent. Infinity is accepted after the sign.
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Amount returns the numeric value of v, with malformed values counted as 0.
func Amount(v any) float64 {
	f := ToNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CloneRecords returns a new slice holding shallow copies of recs.
func CloneRecords(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}
