package app

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RawRow maps an original column name to the cell value: string, int64,
// float64 or nil.
type RawRow map[string]any

type MappedTo string

const (
	MappedToName        MappedTo = "name"
	MappedToEmail       MappedTo = "email"
	MappedToPhone       MappedTo = "phone"
	MappedToTransaction MappedTo = "transaction"
	MappedToMetadata    MappedTo = "metadata"
	MappedToIgnore      MappedTo = "ignore"
)

func (m MappedTo) IsValid() bool {
	switch m {
	case MappedToName, MappedToEmail, MappedToPhone, MappedToTransaction, MappedToMetadata, MappedToIgnore:
		return true
	}
	return false
}

const (
	SubTypeDate    = "date"
	SubTypeAmount  = "amount"
	SubTypeService = "service"
)

type ColumnMapping struct {
	OriginalName string   `json:"originalName"`
	MappedTo     MappedTo `json:"mappedTo" validate:"required,oneof=name email phone transaction metadata ignore"`
	SubType      string   `json:"subType,omitempty"`
}

// Metadata keeps the column order of the source file.
type Metadata = orderedmap.OrderedMap[string, any]

func NewMetadata() *Metadata {
	return orderedmap.New[string, any]()
}

type Customer struct {
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Metadata *Metadata `json:"metadata"`
}

// IsBlank reports whether a raw cell value carries no data.
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

// FormatValue renders a raw or JSON-decoded value as text.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprint(v)
}
