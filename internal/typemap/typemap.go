// Package typemap translates column types into Java types.
package typemap

import (
	"slices"
	"strings"
)

// Well known driver types.
const (
	Timestamp   = "java.sql.Timestamp"
	SQLDate     = "java.sql.Date"
	UtilDate    = "java.util.Date"
	ByteArray   = "[B"
	CharWrapped = "java.lang.Character[]"
)

// Large binary SQL types that are mapped to Character[] instead of byte[].
var excludeTypes = []string{"BIT", "BLOB", "LONGBLOB", "MEDIUMBLOB", "TINYBLOB", "BINARY", "VARBINARY"}

// JVM array descriptors of primitive element types.
var primitiveDescriptors = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// Type is a resolved Java type.
type Type struct {
	Qualified string // java.lang.Character[]
	Short     string // Character[]
	Import    string // java.lang.Character, empty for primitives
}

// Resolve maps a column to its Java type. sqlType is the database type name,
// driverType the JDBC style class reported for the column.
func Resolve(sqlType, driverType string, length int64) Type {
	qualified := driverType
	switch {
	case driverType == Timestamp || driverType == SQLDate:
		qualified = UtilDate
	case driverType == ByteArray && IsLargeBinary(sqlType):
		qualified = CharWrapped
	}
	return Type{
		Qualified: qualified,
		Short:     ShortName(qualified),
		Import:    ImportName(qualified),
	}
}

// IsLargeBinary reports whether sqlType is one of the large binary types.
func IsLargeBinary(sqlType string) bool {
	return slices.Contains(excludeTypes, BaseType(sqlType))
}

// BaseType upper-cases a type name and drops its length or precision,
// "varbinary(16)" -> "VARBINARY", "int(10) unsigned" -> "INT UNSIGNED".
func BaseType(sqlType string) string {
	if open := strings.IndexByte(sqlType, '('); open >= 0 {
		rest := ""
		if end := strings.IndexByte(sqlType[open:], ')'); end >= 0 {
			rest = sqlType[open+end+1:]
		}
		sqlType = sqlType[:open] + " " + rest
	}
	return strings.ToUpper(strings.Join(strings.Fields(sqlType), " "))
}

// SourceName renders JVM descriptors as Java source: "[B" -> "byte[]",
// "[Ljava.lang.String;" -> "java.lang.String[]". Other names are returned as is.
func SourceName(qualified string) string {
	dims := 0
	for dims < len(qualified) && qualified[dims] == '[' {
		dims++
	}
	if dims == 0 {
		return qualified
	}

	elem := qualified[dims:]
	switch {
	case len(elem) == 1 && primitiveDescriptors[elem[0]] != "":
		elem = primitiveDescriptors[elem[0]]
	case strings.HasPrefix(elem, "L") && strings.HasSuffix(elem, ";"):
		elem = elem[1 : len(elem)-1]
	}
	return elem + strings.Repeat("[]", dims)
}

// ShortName returns the simple name used in declarations.
func ShortName(qualified string) string {
	name := SourceName(qualified)
	return name[strings.LastIndexByte(name, '.')+1:]
}

// ImportName returns the class to import for qualified, or "" when the
// element type is a primitive.
func ImportName(qualified string) string {
	elem := strings.TrimRight(SourceName(qualified), "[]")
	if !strings.Contains(elem, ".") {
		return ""
	}
	return elem
}
