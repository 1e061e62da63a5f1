package mapping_service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
)

type rule struct {
	keywords []string
	role     app.MappedTo
	subType  string
}

// rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{[]string{"name", "customer"}, app.MappedToName, ""},
	{[]string{"email", "mail"}, app.MappedToEmail, ""},
	{[]string{"phone", "mobile", "contact"}, app.MappedToPhone, ""},
	{[]string{"date"}, app.MappedToTransaction, app.SubTypeDate},
	{[]string{"amount", "price", "cost"}, app.MappedToTransaction, app.SubTypeAmount},
	{[]string{"service", "product", "item"}, app.MappedToTransaction, app.SubTypeService},
}

type MappingService struct {
	model app.LanguageModel
	log   *slog.Logger

	maxExamplesPerColumn int
	exampleTruncateLen   int
	ctxTimeout           time.Duration
	batchSize            int
}

var _ app.ColumnMapper = &MappingService{}

func New(model app.LanguageModel, log *slog.Logger) *MappingService {
	return &MappingService{
		model:                model,
		log:                  log,
		maxExamplesPerColumn: 2,
		exampleTruncateLen:   140,
		ctxTimeout:           25 * time.Second,
		batchSize:            120,
	}
}

// AutoMapColumn classifies one column by case-insensitive keyword match.
// Unmatched columns become metadata, never ignore.
func AutoMapColumn(column string) app.ColumnMapping {
	var lower = strings.ToLower(column)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return app.ColumnMapping{OriginalName: column, MappedTo: r.role, SubType: r.subType}
			}
		}
	}

	return app.ColumnMapping{OriginalName: column, MappedTo: app.MappedToMetadata}
}

func (this *MappingService) AutoMap(columns []string) []app.ColumnMapping {
	var mappings = make([]app.ColumnMapping, 0, len(columns))
	for _, c := range columns {
		mappings = append(mappings, AutoMapColumn(c))
	}
	return mappings
}

// Override returns a copy of mappings with the role of one column replaced.
// Leaving the transaction role clears subType; entering it keeps or infers one.
func (this *MappingService) Override(mappings []app.ColumnMapping, index int, role app.MappedTo) ([]app.ColumnMapping, error) {
	if index < 0 || index >= len(mappings) {
		return nil, errs.Validation(fmt.Errorf("%w: %d", errs.ErrColumnOutOfRange, index))
	}
	if !role.IsValid() {
		return nil, errs.Validation(fmt.Errorf("%w: %q", errs.ErrUnknownRole, role))
	}

	var out = make([]app.ColumnMapping, len(mappings))
	copy(out, mappings)

	var m = out[index]
	m.MappedTo = role
	if role != app.MappedToTransaction {
		m.SubType = ""
	} else if m.SubType == "" {
		m.SubType = transactionSubType(m.OriginalName)
	}
	out[index] = m

	return out, nil
}

func transactionSubType(column string) string {
	var auto = AutoMapColumn(column)
	if auto.MappedTo == app.MappedToTransaction {
		return auto.SubType
	}
	return ""
}

// BuildCustomer projects a row through the mappings. Later name/email/phone
// columns overwrite earlier ones; transaction columns are not carried over.
func (this *MappingService) BuildCustomer(row app.RawRow, mappings []app.ColumnMapping, fallbackName string) app.Customer {
	var customer = app.Customer{Metadata: app.NewMetadata()}

	for _, m := range mappings {
		v, ok := row[m.OriginalName]
		if !ok || m.MappedTo == app.MappedToIgnore || app.IsBlank(v) {
			continue
		}

		switch m.MappedTo {
		case app.MappedToMetadata:
			customer.Metadata.Set(m.OriginalName, v)
		case app.MappedToName:
			customer.Name = app.FormatValue(v)
		case app.MappedToEmail:
			customer.Email = app.FormatValue(v)
		case app.MappedToPhone:
			customer.Phone = app.FormatValue(v)
		}
	}

	if strings.TrimSpace(customer.Name) == "" {
		customer.Name = fallbackName
	}
	return customer
}
