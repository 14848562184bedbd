package database

import (
	"database/sql"
	"reflect"
	"strconv"
	"strings"
	"time"

	"vo-scaffolding/internal/typemap"
)

const (
	classObject     = "java.lang.Object"
	classString     = "java.lang.String"
	classBoolean    = "java.lang.Boolean"
	classByte       = "java.lang.Byte"
	classShort      = "java.lang.Short"
	classInteger    = "java.lang.Integer"
	classLong       = "java.lang.Long"
	classFloat      = "java.lang.Float"
	classDouble     = "java.lang.Double"
	classBigInteger = "java.math.BigInteger"
	classBigDecimal = "java.math.BigDecimal"
	classTime       = "java.sql.Time"
	classArray      = "java.sql.Array"
)

// Classes reported for database type names, mirroring what the MySQL and
// PostgreSQL JDBC drivers return from getColumnClassName.
var typeClasses = map[string]string{
	"BOOL":    classBoolean,
	"BOOLEAN": classBoolean,

	"TINYINT":     classInteger,
	"SMALLINT":    classInteger,
	"MEDIUMINT":   classInteger,
	"INT":         classInteger,
	"INTEGER":     classInteger,
	"INT2":        classInteger,
	"INT4":        classInteger,
	"SMALLSERIAL": classInteger,
	"SERIAL":      classInteger,
	"BIGINT":      classLong,
	"INT8":        classLong,
	"BIGSERIAL":   classLong,

	"DECIMAL": classBigDecimal,
	"DEC":     classBigDecimal,
	"NUMERIC": classBigDecimal,
	"MONEY":   classBigDecimal,

	"FLOAT":            classFloat,
	"FLOAT4":           classFloat,
	"REAL":             classDouble,
	"DOUBLE":           classDouble,
	"DOUBLE PRECISION": classDouble,
	"FLOAT8":           classDouble,

	"CHAR":              classString,
	"CHARACTER":         classString,
	"VARCHAR":           classString,
	"CHARACTER VARYING": classString,
	"NCHAR":             classString,
	"NVARCHAR":          classString,
	"BPCHAR":            classString,
	"NAME":              classString,
	"TINYTEXT":          classString,
	"TEXT":              classString,
	"MEDIUMTEXT":        classString,
	"LONGTEXT":          classString,
	"CITEXT":            classString,
	"CLOB":              classString,
	"ENUM":              classString,
	"SET":               classString,
	"JSON":              classString,
	"JSONB":             classString,
	"XML":               classString,
	"UUID":              classString,

	"DATE":        typemap.SQLDate,
	"YEAR":        typemap.SQLDate,
	"TIME":        classTime,
	"TIMETZ":      classTime,
	"DATETIME":    typemap.Timestamp,
	"TIMESTAMP":   typemap.Timestamp,
	"TIMESTAMPTZ": typemap.Timestamp,

	"TIME WITH TIME ZONE":         classTime,
	"TIME WITHOUT TIME ZONE":      classTime,
	"TIMESTAMP WITH TIME ZONE":    typemap.Timestamp,
	"TIMESTAMP WITHOUT TIME ZONE": typemap.Timestamp,

	"BLOB":       typemap.ByteArray,
	"TINYBLOB":   typemap.ByteArray,
	"MEDIUMBLOB": typemap.ByteArray,
	"LONGBLOB":   typemap.ByteArray,
	"BINARY":     typemap.ByteArray,
	"VARBINARY":  typemap.ByteArray,
	"BYTEA":      typemap.ByteArray,
	"GEOMETRY":   typemap.ByteArray,
}

var (
	timeType = reflect.TypeOf(time.Time{})

	nullClasses = map[reflect.Type]string{
		reflect.TypeOf(sql.NullString{}):  classString,
		reflect.TypeOf(sql.NullBool{}):    classBoolean,
		reflect.TypeOf(sql.NullByte{}):    classByte,
		reflect.TypeOf(sql.NullInt16{}):   classShort,
		reflect.TypeOf(sql.NullInt32{}):   classInteger,
		reflect.TypeOf(sql.NullInt64{}):   classLong,
		reflect.TypeOf(sql.NullFloat64{}): classDouble,
		reflect.TypeOf(sql.NullTime{}):    typemap.Timestamp,
	}
)

// DriverType returns the JDBC style class of a column: by database type
// name when it is known, by Go scan type otherwise.
func DriverType(col Column) string {
	if class := classForTypeName(col.DataType, DisplayLength(col)); class != "" {
		return class
	}
	if class := classForScanType(col.ScanType); class != "" {
		return class
	}
	return classObject
}

// DisplayLength returns the reported length, falling back to the length
// declared in the type name, "VARCHAR(64)" -> 64.
func DisplayLength(col Column) int64 {
	if col.Length > 0 {
		return col.Length
	}
	open := strings.IndexByte(col.DataType, '(')
	if open < 0 {
		return 0
	}
	digits := col.DataType[open+1:]
	if end := strings.IndexAny(digits, ",)"); end >= 0 {
		digits = digits[:end]
	}
	n, err := strconv.ParseInt(strings.TrimSpace(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func classForTypeName(dataType string, length int64) string {
	name := typemap.BaseType(dataType)
	if strings.HasPrefix(name, "_") || strings.HasSuffix(name, "[]") {
		return classArray
	}

	unsigned := false
	for _, word := range []string{"UNSIGNED", "ZEROFILL"} {
		if strings.Contains(name, word) {
			unsigned = unsigned || word == "UNSIGNED"
			name = strings.Join(strings.Fields(strings.ReplaceAll(name, word, "")), " ")
		}
	}

	switch {
	case name == "BIT" && length <= 1:
		return classBoolean
	case name == "BIT":
		return typemap.ByteArray
	case name == "TINYINT" && length == 1:
		return classBoolean
	case unsigned && (name == "INT" || name == "INTEGER"):
		return classLong
	case unsigned && name == "BIGINT":
		return classBigInteger
	}
	return typeClasses[name]
}

func classForScanType(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t == timeType {
		return typemap.Timestamp
	}
	if class, ok := nullClasses[t]; ok {
		return class
	}

	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return typemap.ByteArray
		}
	case reflect.Bool:
		return classBoolean
	case reflect.Int8:
		return classByte
	case reflect.Int16:
		return classShort
	case reflect.Int32, reflect.Uint8, reflect.Uint16:
		return classInteger
	case reflect.Int, reflect.Int64, reflect.Uint32:
		return classLong
	case reflect.Uint, reflect.Uint64:
		return classBigInteger
	case reflect.Float32:
		return classFloat
	case reflect.Float64:
		return classDouble
	case reflect.String:
		return classString
	}
	return ""
}
