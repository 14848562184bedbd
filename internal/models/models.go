package models

// Table kinds reported by schema introspection.
const (
	KindTable = "TABLE"
	KindView  = "VIEW"
)

// Entity is one value object to generate, built from a table or view.
type Entity struct {
	Name    string   `json:"name"`  // class name: prefix + TableName + suffix
	Table   string   `json:"table"` // source table or view
	Kind    string   `json:"kind"`
	Columns []Column `json:"columns"` // natural column order
}

// Column is one field of an Entity.
type Column struct {
	Name          string `json:"name"`       // member name, camel case
	ColumnName    string `json:"columnname"` // source column
	SQLType       string `json:"sqltype"`    // database type name, e.g. INT
	DriverType    string `json:"drivertype"` // JDBC style class before mapping
	JavaType      string `json:"javatype"`   // e.g. java.lang.Integer
	JavaTypeShort string `json:"javatypeshort"`
	Import        string `json:"import"` // empty for primitives
	Length        int64  `json:"length"` // display length, 0 when unknown
}

// Imports returns the distinct classes referenced by the entity's fields.
func (e *Entity) Imports() []string {
	seen := make(map[string]bool, len(e.Columns))
	var imports []string
	for _, c := range e.Columns {
		if c.Import == "" || seen[c.Import] {
			continue
		}
		seen[c.Import] = true
		imports = append(imports, c.Import)
	}
	return imports
}
