package mapping_service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/invopop/jsonschema"
)

type ColumnRoleSuggestion struct {
	Column  string `json:"column" jsonschema_description:"Column header exactly as given"`
	Role    string `json:"role" jsonschema:"enum=name,enum=email,enum=phone,enum=transaction,enum=metadata,enum=ignore" jsonschema_description:"Semantic role of the column"`
	SubType string `json:"sub_type" jsonschema:"enum=date,enum=amount,enum=service,enum=none" jsonschema_description:"Kind of transaction column, none for other roles"`
}

type ColumnRoleResponse struct {
	Mappings []ColumnRoleSuggestion `json:"mappings" jsonschema_description:"One entry per column"`
}

func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var columnRoleSchema = app.JSONSchema{
	Name:        "column_roles",
	Description: "Spreadsheet columns to customer field roles",
	Schema:      GenerateSchema[ColumnRoleResponse](),
}

type suggestInput struct {
	Columns       []string            `json:"columns"`
	ExampleValues map[string][]string `json:"example_values,omitempty"`
}

// Suggest asks the language model for column roles and falls back to the
// keyword heuristics for every column it cannot place.
func (this *MappingService) Suggest(ctx context.Context, columns []string, rows []app.RawRow) []app.ColumnMapping {
	var fallback = this.AutoMap(columns)
	if len(columns) == 0 || !this.model.Configured() {
		return fallback
	}

	var suggested = make(map[string]ColumnRoleSuggestion, len(columns))
	for start := 0; start < len(columns); start += this.batchSize {
		end := min(start+this.batchSize, len(columns))

		part, err := this.callModel(ctx, this.buildInputJSON(columns[start:end], rows))
		if err != nil {
			this.log.Warn("column role suggestion failed, using keyword mapping", "error", err)
			return fallback
		}
		for _, s := range part.Mappings {
			suggested[s.Column] = s
		}
	}

	var out = make([]app.ColumnMapping, len(columns))
	for i, c := range columns {
		out[i] = fallback[i]

		s, ok := suggested[c]
		if !ok || !app.MappedTo(s.Role).IsValid() {
			continue
		}

		m := app.ColumnMapping{OriginalName: c, MappedTo: app.MappedTo(s.Role)}
		if m.MappedTo == app.MappedToTransaction {
			switch s.SubType {
			case app.SubTypeDate, app.SubTypeAmount, app.SubTypeService:
				m.SubType = s.SubType
			default:
				m.SubType = transactionSubType(c)
			}
		}
		out[i] = m
	}
	return out
}

func (this *MappingService) buildInputJSON(columns []string, rows []app.RawRow) string {
	var examples = make(map[string][]string, len(columns))

	for _, c := range columns {
		samples := make([]string, 0, this.maxExamplesPerColumn)
		for _, row := range rows {
			if len(samples) >= this.maxExamplesPerColumn {
				break
			}
			v, ok := row[c]
			if !ok || app.IsBlank(v) {
				continue
			}
			val := strings.TrimSpace(app.FormatValue(v))
			if len(val) > this.exampleTruncateLen {
				val = val[:this.exampleTruncateLen] + fmt.Sprintf("…(+%d)", len(val)-this.exampleTruncateLen)
			}
			dup := false
			for _, ex := range samples {
				if ex == val {
					dup = true
					break
				}
			}
			if !dup {
				samples = append(samples, val)
			}
		}
		if len(samples) > 0 {
			examples[c] = samples
		}
	}

	b, _ := json.Marshal(suggestInput{Columns: columns, ExampleValues: examples})
	return string(b)
}

func (this *MappingService) callModel(ctx context.Context, inputJSON string) (ColumnRoleResponse, error) {
	system := "You map spreadsheet columns of a customer list to roles: name, email, phone, transaction (with sub_type date, amount or service), metadata for any other customer stat, ignore for internal ids or noise. Use examples to disambiguate. Return ONLY the JSON required by the schema."
	user := fmt.Sprintf("Map columns using the examples.\nINPUT_JSON:\n%s", inputJSON)

	ctx, cancel := context.WithTimeout(ctx, this.ctxTimeout)
	defer cancel()

	content, err := this.model.CompleteJSON(ctx, system, user, columnRoleSchema)
	if err != nil {
		return ColumnRoleResponse{}, err
	}

	var res ColumnRoleResponse
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return ColumnRoleResponse{}, fmt.Errorf("unmarshal model output: %w", err)
	}
	return res, nil
}
