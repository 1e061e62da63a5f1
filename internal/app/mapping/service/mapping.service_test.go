package mapping_service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"github.com/init-pkg/wrapped-reports/domain/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	configured bool
	content    string
	err        error
	user       string
}

func (f *fakeModel) Configured() bool { return f.configured }

func (f *fakeModel) Complete(context.Context, string) (string, error) { return f.content, f.err }

func (f *fakeModel) CompleteJSON(_ context.Context, _, user string, _ app.JSONSchema) (string, error) {
	f.user = user
	return f.content, f.err
}

func newService(model app.LanguageModel) *MappingService {
	return New(model, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAutoMapPrecedence(t *testing.T) {
	columns := []string{
		"Customer Email", "E-Mail", "Mobile", "Emergency Contact", "Visit Date", "Total Price",
		"Cost", "Product Bought", "Line Item", "Visits", "Full Name", "Username",
	}

	got := newService(&fakeModel{}).AutoMap(columns)

	assert.Equal(t, []app.ColumnMapping{
		{OriginalName: "Customer Email", MappedTo: app.MappedToName},
		{OriginalName: "E-Mail", MappedTo: app.MappedToEmail},
		{OriginalName: "Mobile", MappedTo: app.MappedToPhone},
		{OriginalName: "Emergency Contact", MappedTo: app.MappedToPhone},
		{OriginalName: "Visit Date", MappedTo: app.MappedToTransaction, SubType: app.SubTypeDate},
		{OriginalName: "Total Price", MappedTo: app.MappedToTransaction, SubType: app.SubTypeAmount},
		{OriginalName: "Cost", MappedTo: app.MappedToTransaction, SubType: app.SubTypeAmount},
		{OriginalName: "Product Bought", MappedTo: app.MappedToTransaction, SubType: app.SubTypeService},
		{OriginalName: "Line Item", MappedTo: app.MappedToTransaction, SubType: app.SubTypeService},
		{OriginalName: "Visits", MappedTo: app.MappedToMetadata},
		{OriginalName: "Full Name", MappedTo: app.MappedToName},
		{OriginalName: "Username", MappedTo: app.MappedToName},
	}, got)
}

func TestAutoMapKeepsColumnOrder(t *testing.T) {
	columns := []string{"b", "a", "Name", "c"}

	got := newService(&fakeModel{}).AutoMap(columns)

	require.Len(t, got, len(columns))
	for i, c := range columns {
		assert.Equal(t, c, got[i].OriginalName)
	}
	assert.NotNil(t, newService(&fakeModel{}).AutoMap(nil))
}

func TestOverride(t *testing.T) {
	svc := newService(&fakeModel{})
	mappings := svc.AutoMap([]string{"Name", "Visit Date", "Total Price"})

	out, err := svc.Override(mappings, 1, app.MappedToMetadata)
	require.NoError(t, err)

	assert.Equal(t, app.ColumnMapping{OriginalName: "Visit Date", MappedTo: app.MappedToMetadata}, out[1])
	assert.Equal(t, app.MappedToTransaction, mappings[1].MappedTo, "input is not mutated")

	back, err := svc.Override(out, 1, app.MappedToTransaction)
	require.NoError(t, err)
	assert.Equal(t, app.SubTypeDate, back[1].SubType)

	named, err := svc.Override(out, 0, app.MappedToTransaction)
	require.NoError(t, err)
	assert.Equal(t, "", named[0].SubType)
}

func TestOverrideErrors(t *testing.T) {
	svc := newService(&fakeModel{})
	mappings := svc.AutoMap([]string{"Name"})

	_, err := svc.Override(mappings, 3, app.MappedToEmail)
	assert.ErrorIs(t, err, errs.ErrColumnOutOfRange)

	_, err = svc.Override(mappings, -1, app.MappedToEmail)
	assert.ErrorIs(t, err, errs.ErrColumnOutOfRange)

	_, err = svc.Override(mappings, 0, app.MappedTo("owner"))
	assert.ErrorIs(t, err, errs.ErrUnknownRole)
}

func TestBuildCustomer(t *testing.T) {
	svc := newService(&fakeModel{})
	mappings := []app.ColumnMapping{
		{OriginalName: "Name", MappedTo: app.MappedToName},
		{OriginalName: "Email", MappedTo: app.MappedToEmail},
		{OriginalName: "Phone", MappedTo: app.MappedToPhone},
		{OriginalName: "Date", MappedTo: app.MappedToTransaction, SubType: app.SubTypeDate},
		{OriginalName: "Visits", MappedTo: app.MappedToMetadata},
		{OriginalName: "Notes", MappedTo: app.MappedToMetadata},
		{OriginalName: "Secret", MappedTo: app.MappedToIgnore},
		{OriginalName: "Kg", MappedTo: app.MappedToMetadata},
	}
	row := app.RawRow{
		"Name": "Ann Lee", "Email": "ann@x.io", "Phone": int64(5550100), "Date": "2024-11-02",
		"Visits": int64(12), "Notes": "   ", "Secret": "x", "Kg": 3200.5,
	}

	c := svc.BuildCustomer(row, mappings, "Customer 1")

	assert.Equal(t, "Ann Lee", c.Name)
	assert.Equal(t, "ann@x.io", c.Email)
	assert.Equal(t, "5550100", c.Phone)
	assert.Equal(t, 2, c.Metadata.Len())

	keys := []string{}
	for p := c.Metadata.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"Visits", "Kg"}, keys)
	v, _ := c.Metadata.Get("Visits")
	assert.Equal(t, int64(12), v)
}

func TestBuildCustomerLastNameWinsAndFallback(t *testing.T) {
	svc := newService(&fakeModel{})
	mappings := []app.ColumnMapping{
		{OriginalName: "First", MappedTo: app.MappedToName},
		{OriginalName: "Last", MappedTo: app.MappedToName},
	}

	c := svc.BuildCustomer(app.RawRow{"First": "Ann", "Last": "Lee"}, mappings, "Customer 1")
	assert.Equal(t, "Lee", c.Name)

	c = svc.BuildCustomer(app.RawRow{"First": "", "Last": nil}, mappings, "Customer 7")
	assert.Equal(t, "Customer 7", c.Name)
	assert.Equal(t, 0, c.Metadata.Len())
}

func TestBuildCustomerMetadataKeysProperty(t *testing.T) {
	svc := newService(&fakeModel{})
	columns := []string{"Name", "Visits", "Streak", "Blank", "Email"}
	mappings := svc.AutoMap(columns)
	row := app.RawRow{"Name": "Ann", "Visits": "12", "Streak": int64(0), "Blank": "", "Email": "a@x.io"}

	c := svc.BuildCustomer(row, mappings, "Customer 1")

	want := map[string]bool{}
	for _, m := range mappings {
		if m.MappedTo == app.MappedToMetadata && !app.IsBlank(row[m.OriginalName]) {
			want[m.OriginalName] = true
		}
	}
	got := map[string]bool{}
	for p := c.Metadata.Oldest(); p != nil; p = p.Next() {
		got[p.Key] = true
	}
	assert.Equal(t, want, got)
}

func TestSuggestUsesModel(t *testing.T) {
	model := &fakeModel{configured: true, content: `{"mappings":[
		{"column":"Member","role":"name","sub_type":"none"},
		{"column":"Joined","role":"transaction","sub_type":"date"},
		{"column":"Internal ID","role":"ignore","sub_type":"none"},
		{"column":"Ghost","role":"name","sub_type":"none"}
	]}`}
	columns := []string{"Member", "Joined", "Internal ID", "Visits"}
	rows := []app.RawRow{{"Member": "Ann", "Joined": "2024-01-02", "Internal ID": int64(42), "Visits": "12"}}

	got := newService(model).Suggest(context.Background(), columns, rows)

	assert.Equal(t, []app.ColumnMapping{
		{OriginalName: "Member", MappedTo: app.MappedToName},
		{OriginalName: "Joined", MappedTo: app.MappedToTransaction, SubType: app.SubTypeDate},
		{OriginalName: "Internal ID", MappedTo: app.MappedToIgnore},
		{OriginalName: "Visits", MappedTo: app.MappedToMetadata},
	}, got)
	assert.Contains(t, model.user, `"Member":["Ann"]`)
}

func TestSuggestFallsBack(t *testing.T) {
	columns := []string{"Name", "Visits"}
	want := newService(&fakeModel{}).AutoMap(columns)

	for name, model := range map[string]*fakeModel{
		"not configured": {configured: false},
		"model error":    {configured: true, err: errors.New("boom")},
		"bad json":       {configured: true, content: "sure! here you go"},
		"bad role":       {configured: true, content: `{"mappings":[{"column":"Name","role":"boss","sub_type":"none"}]}`},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, newService(model).Suggest(context.Background(), columns, nil))
		})
	}
}
