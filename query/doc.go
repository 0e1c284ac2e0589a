// Package query defines the 'include' query parameter handling.
// The package is used to parse the comma separated list of dotted
// relation paths into the ordered inclusion tree that might drive
// the eager loading of related resources. It provides the checks
// for the included resources existence, the flat included resources
// view and the nested model includes tree.
package query
