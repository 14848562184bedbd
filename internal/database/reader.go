package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vo-scaffolding/internal/apperr"
	"vo-scaffolding/internal/models"
	"vo-scaffolding/internal/typemap"
	"vo-scaffolding/internal/utils"
)

// ReadOptions controls which tables are read and how classes are named.
type ReadOptions struct {
	Pattern string // LIKE pattern, blank for all tables
	Prefix  string
	Suffix  string
}

// ReadSchema builds one entity per matched table or view. Any failure
// discards everything read so far.
func ReadSchema(ctx context.Context, src MetadataSource, opts ReadOptions) ([]models.Entity, error) {
	tables, err := src.GetTables(ctx, opts.Pattern)
	if err != nil {
		return nil, apperr.SchemaRead("listing tables", err)
	}

	entities := make([]models.Entity, 0, len(tables))
	owners := make(map[string]string, len(tables))
	for _, table := range tables {
		columns, err := src.GetColumns(ctx, table.Name)
		if err != nil {
			return nil, apperr.SchemaRead(fmt.Sprintf("reading columns of %s", table.Name), err)
		}

		entity, err := BuildEntity(table, columns, opts)
		if err != nil {
			return nil, apperr.SchemaRead(fmt.Sprintf("mapping table %s", table.Name), err)
		}

		key := strings.ToLower(entity.Name)
		if other, ok := owners[key]; ok {
			return nil, apperr.SchemaRead(
				fmt.Sprintf("tables %s and %s both map to class %s", other, table.Name, entity.Name), nil)
		}
		owners[key] = table.Name

		log.Printf("Read %s %s: %d column(s)", strings.ToLower(entity.Kind), table.Name, len(entity.Columns))
		entities = append(entities, entity)
	}

	return entities, nil
}

// BuildEntity converts raw table metadata into an entity. Member names must
// be valid Java identifiers and distinct ignoring case, since the accessors
// capitalize them.
func BuildEntity(table Table, columns []Column, opts ReadOptions) (models.Entity, error) {
	kind := table.Kind
	if kind == "" {
		kind = models.KindTable
	}

	entity := models.Entity{
		Name:    utils.TypeName(opts.Prefix, table.Name, opts.Suffix),
		Table:   table.Name,
		Kind:    kind,
		Columns: make([]models.Column, 0, len(columns)),
	}

	owners := make(map[string]string, len(columns))
	for _, col := range columns {
		column := BuildColumn(col)
		switch {
		case column.Name == "":
			return models.Entity{}, fmt.Errorf("column %q has no usable member name", col.Name)
		case utils.IsJavaKeyword(column.Name):
			return models.Entity{}, fmt.Errorf("column %s maps to reserved word %s", col.Name, column.Name)
		}

		key := strings.ToLower(column.Name)
		if other, ok := owners[key]; ok {
			return models.Entity{}, fmt.Errorf("columns %s and %s both map to member %s", other, col.Name, column.Name)
		}
		owners[key] = col.Name

		entity.Columns = append(entity.Columns, column)
	}
	return entity, nil
}

// BuildColumn names a column and resolves its Java type.
func BuildColumn(col Column) models.Column {
	length := DisplayLength(col)
	driverType := DriverType(col)
	javaType := typemap.Resolve(col.DataType, driverType, length)

	return models.Column{
		Name:          utils.ToCamel(col.Name),
		ColumnName:    col.Name,
		SQLType:       col.DataType,
		DriverType:    driverType,
		JavaType:      javaType.Qualified,
		JavaTypeShort: javaType.Short,
		Import:        javaType.Import,
		Length:        length,
	}
}
