package namer

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Namer is the function strategy used to name the included resources.
type Namer func(string) string

// NamingSnake is a Namer function.
// It converts the name into the 'snake_case_resource'.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function.
// It converts the name into the 'kebab-case-resource'.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function.
// It converts the name into the 'CamelCaseResource'.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function.
// It converts the name into the 'camelCaseResource'.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// Collection creates the collection name for the provided resource 'name'.
// The collection name is the pluralized form of the name converted with the
// 'namerFunc' strategy.
func Collection(namerFunc Namer, name string) string {
	return namerFunc(inflection.Plural(name))
}
