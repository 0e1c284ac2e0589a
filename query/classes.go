package query

import (
	"github.com/neuronlabs/errors"
)

var (
	// MjrQuery is the major error classification for the query package.
	MjrQuery errors.Major

	// MnrParameter is the minor error classification related to the query parameters.
	MnrParameter errors.Minor

	// ClassInvalidParameter is the error classification for malformed query parameters.
	ClassInvalidParameter errors.Class
	// ClassIncludedWildcard is the error classification for the wildcard included relation paths.
	ClassIncludedWildcard errors.Class
	// ClassIncludedTooMany is the error classification used when the included relation
	// paths exceed the count or the nesting limits.
	ClassIncludedTooMany errors.Class
)

func init() {
	MjrQuery = errors.MustNewMajor()

	MnrParameter = errors.MustNewMinor(MjrQuery)
	ClassInvalidParameter = errors.MustNewClassWIndex(MjrQuery, MnrParameter)
	ClassIncludedWildcard = errors.MustNewClassWIndex(MjrQuery, MnrParameter)
	ClassIncludedTooMany = errors.MustNewClassWIndex(MjrQuery, MnrParameter)
}
