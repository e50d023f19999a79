package assettypes

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType is the declared type of an editable field.
type FieldType int

const (
	// FieldString is free text that must not be blank.
	FieldString FieldType = iota
	// FieldInteger is a whole number.
	FieldInteger
	// FieldFloat is a decimal number.
	FieldFloat
	// FieldDate is a calendar date with optional time of day.
	FieldDate
)

// String returns the type name.
func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "String"
	case FieldInteger:
		return "Integer"
	case FieldFloat:
		return "Float"
	case FieldDate:
		return "Date"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// FieldDescriptor describes one field of an Asset so it can be read and written
// without knowing its Go type at the call site.
type FieldDescriptor struct {
	Name string
	Type FieldType
	// Immutable fields are shown but never edited.
	Immutable bool
	Get       func(a *Asset) interface{}
	Set       func(a *Asset, v interface{}) error
}

// Date layouts accepted for user input, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a calendar date in local time. Spaced separators such as
// "2017 - 08 - 15" are accepted.
func ParseDate(s string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " - ", "-")
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// FormatDate renders a date the way ParseDate reads it back, omitting the
// time of day when it is midnight.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatValue renders a field value as editable default text.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return FormatDate(val)
	default:
		return fmt.Sprint(val)
	}
}

func typeMismatch(name string, v interface{}) error {
	return fmt.Errorf("field %s: unexpected value type %T", name, v)
}

func stringField(name string, get func(a *Asset) *string) FieldDescriptor {
	return FieldDescriptor{
		Name: name,
		Type: FieldString,
		Get:  func(a *Asset) interface{} { return *get(a) },
		Set: func(a *Asset, v interface{}) error {
			s, ok := v.(string)
			if !ok {
				return typeMismatch(name, v)
			}
			*get(a) = s
			return nil
		},
	}
}

func intField(name string, get func(a *Asset) *int) FieldDescriptor {
	return FieldDescriptor{
		Name: name,
		Type: FieldInteger,
		Get:  func(a *Asset) interface{} { return *get(a) },
		Set: func(a *Asset, v interface{}) error {
			n, ok := v.(int)
			if !ok {
				return typeMismatch(name, v)
			}
			*get(a) = n
			return nil
		},
	}
}

func floatField(name string, get func(a *Asset) *float64) FieldDescriptor {
	return FieldDescriptor{
		Name: name,
		Type: FieldFloat,
		Get:  func(a *Asset) interface{} { return *get(a) },
		Set: func(a *Asset, v interface{}) error {
			f, ok := v.(float64)
			if !ok {
				return typeMismatch(name, v)
			}
			*get(a) = f
			return nil
		},
	}
}

func dateField(name string, get func(a *Asset) *time.Time) FieldDescriptor {
	return FieldDescriptor{
		Name: name,
		Type: FieldDate,
		Get:  func(a *Asset) interface{} { return *get(a) },
		Set: func(a *Asset, v interface{}) error {
			t, ok := v.(time.Time)
			if !ok {
				return typeMismatch(name, v)
			}
			*get(a) = t
			return nil
		},
	}
}

var baseFields = []FieldDescriptor{
	{
		Name:      "ID",
		Type:      FieldInteger,
		Immutable: true,
		Get:       func(a *Asset) interface{} { return a.ID },
		Set:       func(_ *Asset, _ interface{}) error { return ErrImmutableField },
	},
	dateField("PurchaseDate", func(a *Asset) *time.Time { return &a.PurchaseDate }),
	dateField("ExpiryDate", func(a *Asset) *time.Time { return &a.ExpiryDate }),
	floatField("Price", func(a *Asset) *float64 { return &a.Price }),
	stringField("ModelName", func(a *Asset) *string { return &a.ModelName }),
	intField("OfficeID", func(a *Asset) *int { return &a.OfficeID }),
}

var computerFields = []FieldDescriptor{
	stringField("OperatingSystem", func(a *Asset) *string { return &a.Computer.OperatingSystem }),
	stringField("RAM", func(a *Asset) *string { return &a.Computer.RAM }),
	stringField("Processor", func(a *Asset) *string { return &a.Computer.Processor }),
}

var cellphoneFields = []FieldDescriptor{
	stringField("PhoneOperator", func(a *Asset) *string { return &a.Cellphone.PhoneOperator }),
	stringField("PhoneNumber", func(a *Asset) *string { return &a.Cellphone.PhoneNumber }),
}

// FieldsFor returns the descriptor table for a variant: the shared header fields
// followed by the variant fields.
func FieldsFor(kind Kind) ([]FieldDescriptor, error) {
	var variant []FieldDescriptor
	switch kind {
	case KindComputer:
		variant = computerFields
	case KindCellphone:
		variant = cellphoneFields
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	fields := make([]FieldDescriptor, 0, len(baseFields)+len(variant))
	fields = append(fields, baseFields...)
	return append(fields, variant...), nil
}
