package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isDelimiter(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// ToCamel converts a delimiter separated identifier into lower camel case:
// "user_profile_id" -> "userProfileId". Identifiers without delimiters are
// returned as is.
func ToCamel(s string) string {
	if !strings.ContainsFunc(s, isDelimiter) {
		return s
	}

	words := strings.FieldsFunc(strings.ToLower(s), isDelimiter)
	for i := 1; i < len(words); i++ {
		words[i] = Capitalize(words[i])
	}
	return strings.Join(words, "")
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// TypeName builds a class name from a table name.
func TypeName(prefix, table, suffix string) string {
	return prefix + Capitalize(ToCamel(table)) + suffix
}

// Java reserved words and literals, which cannot be used as identifiers.
var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}

// IsJavaKeyword reports whether name is reserved in Java source.
func IsJavaKeyword(name string) bool {
	return javaKeywords[name]
}
