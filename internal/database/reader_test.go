package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vo-scaffolding/internal/apperr"
	"vo-scaffolding/internal/models"
)

type fakeSource struct {
	tables    []Table
	columns   map[string][]Column
	tablesErr error
	failOn    string
	probed    []string
}

func (f *fakeSource) GetTables(ctx context.Context, pattern string) ([]Table, error) {
	return f.tables, f.tablesErr
}

func (f *fakeSource) GetColumns(ctx context.Context, table string) ([]Column, error) {
	f.probed = append(f.probed, table)
	if table == f.failOn {
		return nil, errors.New("probe failed")
	}
	return f.columns[table], nil
}

func orderItemSource() *fakeSource {
	return &fakeSource{
		tables: []Table{{Name: "order_item", Kind: models.KindTable}},
		columns: map[string][]Column{
			"order_item": {
				{Name: "id", DataType: "INT", ScanType: reflect.TypeOf(int32(0)), Length: 11},
				{Name: "created_at", DataType: "TIMESTAMP", Length: 19},
				{Name: "note", DataType: "BLOB", Length: 65535},
			},
		},
	}
}

func TestReadSchemaOrderItem(t *testing.T) {
	entities, err := ReadSchema(context.Background(), orderItemSource(), ReadOptions{Prefix: "T", Suffix: "VO"})
	require.NoError(t, err)
	require.Len(t, entities, 1)

	e := entities[0]
	assert.Equal(t, "TOrderItemVO", e.Name)
	assert.Equal(t, "order_item", e.Table)
	assert.Equal(t, models.KindTable, e.Kind)

	assert.Equal(t, []models.Column{
		{
			Name: "id", ColumnName: "id", SQLType: "INT", DriverType: "java.lang.Integer",
			JavaType: "java.lang.Integer", JavaTypeShort: "Integer", Import: "java.lang.Integer", Length: 11,
		},
		{
			Name: "createdAt", ColumnName: "created_at", SQLType: "TIMESTAMP", DriverType: "java.sql.Timestamp",
			JavaType: "java.util.Date", JavaTypeShort: "Date", Import: "java.util.Date", Length: 19,
		},
		{
			Name: "note", ColumnName: "note", SQLType: "BLOB", DriverType: "[B",
			JavaType: "java.lang.Character[]", JavaTypeShort: "Character[]", Import: "java.lang.Character", Length: 65535,
		},
	}, e.Columns)

	assert.ElementsMatch(t, []string{"java.lang.Integer", "java.util.Date", "java.lang.Character"}, e.Imports())
}

func TestReadSchemaKeepsTableOrder(t *testing.T) {
	src := &fakeSource{
		tables: []Table{
			{Name: "address"},
			{Name: "customer"},
			{Name: "customer_view", Kind: models.KindView},
		},
	}

	entities, err := ReadSchema(context.Background(), src, ReadOptions{})
	require.NoError(t, err)
	require.Len(t, entities, 3)
	assert.Equal(t, "Address", entities[0].Name)
	assert.Equal(t, "Customer", entities[1].Name)
	assert.Equal(t, "CustomerView", entities[2].Name)
	assert.Equal(t, models.KindTable, entities[0].Kind)
	assert.Equal(t, models.KindView, entities[2].Kind)
	assert.Equal(t, []string{"address", "customer", "customer_view"}, src.probed)
}

func TestReadSchemaZeroColumns(t *testing.T) {
	src := &fakeSource{tables: []Table{{Name: "empty"}}}

	entities, err := ReadSchema(context.Background(), src, ReadOptions{})
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Empty(t, entities[0].Columns)
	assert.Empty(t, entities[0].Imports())
}

func TestReadSchemaNoTables(t *testing.T) {
	entities, err := ReadSchema(context.Background(), &fakeSource{}, ReadOptions{Pattern: "nothing%"})
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestReadSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
	}{
		{
			name: "listing fails",
			src:  &fakeSource{tablesErr: errors.New("access denied")},
		},
		{
			name: "probe fails midway",
			src: &fakeSource{
				tables: []Table{{Name: "a"}, {Name: "b"}, {Name: "c"}},
				failOn: "b",
			},
		},
		{
			name: "class name collision",
			src:  &fakeSource{tables: []Table{{Name: "order_item"}, {Name: "OrderItem"}}},
		},
		{
			name: "case-insensitive collision",
			src:  &fakeSource{tables: []Table{{Name: "USER"}, {Name: "user"}}},
		},
		{
			name: "member name collision",
			src: &fakeSource{
				tables:  []Table{{Name: "account"}},
				columns: map[string][]Column{"account": {{Name: "user_id", DataType: "INT"}, {Name: "userId", DataType: "INT"}}},
			},
		},
		{
			name: "reserved member name",
			src: &fakeSource{
				tables:  []Table{{Name: "course"}},
				columns: map[string][]Column{"course": {{Name: "id", DataType: "INT"}, {Name: "class", DataType: "VARCHAR"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := ReadSchema(context.Background(), tt.src, ReadOptions{})
			require.Error(t, err)
			assert.Nil(t, entities)
			assert.ErrorIs(t, err, apperr.ErrSchemaRead)
		})
	}
}

func TestBuildColumnBinaryPassThrough(t *testing.T) {
	col := BuildColumn(Column{Name: "payload", DataType: "BYTEA"})
	assert.Equal(t, "byte[]", col.JavaTypeShort)
	assert.Empty(t, col.Import)
}

func TestBuildEntityMemberNames(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr string
	}{
		{"distinct", []Column{{Name: "user_id"}, {Name: "user_name"}}, ""},
		{"same after camel case", []Column{{Name: "user_id"}, {Name: "userId"}}, "member userId"},
		{"same accessor", []Column{{Name: "userid"}, {Name: "UserId"}}, "member UserId"},
		{"keyword", []Column{{Name: "default"}}, "reserved word default"},
		{"keyword after camel case", []Column{{Name: "_public_"}}, "reserved word public"},
		{"keyword inside a longer name", []Column{{Name: "class_name"}}, ""},
		{"only delimiters", []Column{{Name: "__"}}, "no usable member name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, err := BuildEntity(Table{Name: "account"}, tt.columns, ReadOptions{})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, entity.Columns, len(tt.columns))
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
