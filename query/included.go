package query

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/neuronlabs/errors"

	"github.com/neuronlabs/inclusion/annotation"
	"github.com/neuronlabs/inclusion/config"
	"github.com/neuronlabs/inclusion/log"
)

// QueryParamInclude is the name of the url query parameter that stores
// the included relation paths.
const QueryParamInclude = "include"

// Included stores the raw value of the 'include' query parameter - the comma
// separated list of dotted relation paths. The value is immutable once the
// Included is created and all the methods are pure derivations of it, thus
// an Included instance might be safely used by multiple readers.
type Included struct {
	id    uuid.UUID
	cfg   *config.Controller
	value *string
}

// NewIncluded creates new Included for the provided raw parameter 'value'.
// The nil 'value' marks the parameter as absent.
func NewIncluded(value *string) *Included {
	return NewIncludedWithConfig(config.Default(), value)
}

// NewIncludedWithConfig creates new Included for the provided raw parameter
// 'value' controlled by the 'cfg' config.
func NewIncludedWithConfig(cfg *config.Controller, value *string) *Included {
	if cfg == nil {
		cfg = config.Default()
	}
	i := &Included{id: uuid.New(), cfg: cfg, value: value}
	if value != nil {
		log.Debug3f("Included[%s] created for the value: '%s'", i.id, *value)
	} else {
		log.Debug3f("Included[%s] created with no value", i.id)
	}
	return i
}

// NewIncludedFromQuery creates new Included taking the raw value from the
// 'include' parameter of the provided url 'query'. The missing parameter
// marks the value as absent.
func NewIncludedFromQuery(query url.Values) *Included {
	values, ok := query[QueryParamInclude]
	if !ok || len(values) == 0 {
		return NewIncluded(nil)
	}
	return NewIncluded(&values[0])
}

// ID returns the unique identifier of given Included.
func (i *Included) ID() uuid.UUID {
	return i.id
}

// Value returns the raw parameter value. The second result is false when
// the parameter is absent.
func (i *Included) Value() (string, bool) {
	if i.value == nil {
		return "", false
	}
	return *i.value, true
}

// HasIncludedResources checks if at least one concrete - non wildcard and
// well formed - relation path was provided within the parameter value.
func (i *Included) HasIncludedResources() bool {
	for _, entry := range i.split() {
		if i.checkEntry(entry) == nil {
			return true
		}
	}
	return false
}

// IncludedResources returns the ordered dotted relation paths for every
// concrete entry of the parameter value, in their original textual form.
// An entry that contains a wildcard or an empty segment anywhere is skipped
// as a whole.
func (i *Included) IncludedResources() []string {
	var resources []string
	for _, entry := range i.split() {
		if err := i.checkEntry(entry); err != nil {
			log.Debug2f("Included[%s] skipping entry '%s': %s", i.id, entry, err)
			continue
		}
		resources = append(resources, entry)
	}
	return resources
}

// ModelIncludes builds the inclusion tree for the concrete relation paths of
// the parameter value. The paths that share leading segments are being merged
// under a single relation and the relations keep the first occurrence order
// of their names at every nesting level.
func (i *Included) ModelIncludes() []*IncludedRelation {
	var relations []*IncludedRelation
	for _, entry := range i.split() {
		if i.checkEntry(entry) != nil {
			continue
		}
		relations = buildIncludedRelations(relations, strings.Split(entry, annotation.NestedSeparator)...)
	}
	return relations
}

// Validate checks all the entries of the parameter value. It returns the
// errors.MultiError composed of a classified error per wildcard, malformed
// or over the limits entry. The parsing methods don't require a prior
// validation - they skip the invalid entries on their own.
func (i *Included) Validate() error {
	var errs errors.MultiError

	entries := i.split()
	if i.cfg.IncludedLimit > 0 && len(entries) > i.cfg.IncludedLimit {
		errs = append(errs, errors.NewDetf(ClassIncludedTooMany,
			"too many included relation paths provided: %d", len(entries)))
	}

	for _, entry := range entries {
		if err := i.checkEntry(entry); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FormatQuery formats the concrete relation paths into the 'include' url
// query parameter. When no concrete path exists the parameter is not set.
func (i *Included) FormatQuery(vals ...url.Values) url.Values {
	var query url.Values
	if len(vals) > 0 {
		query = vals[0]
	} else {
		query = url.Values{}
	}

	resources := i.IncludedResources()
	if len(resources) > 0 {
		query.Set(QueryParamInclude, strings.Join(resources, annotation.Separator))
	}
	return query
}

// split splits the raw parameter value into the ordered relation path
// entries. The empty value behaves like the absent parameter.
func (i *Included) split() []string {
	if i.value == nil || *i.value == "" {
		return nil
	}
	return strings.Split(*i.value, annotation.Separator)
}

// checkEntry classifies a single relation path entry. A non-nil result means
// the entry takes no part in the parsed results.
func (i *Included) checkEntry(entry string) errors.ClassError {
	if strings.ContainsAny(entry, annotation.WildcardSymbols) {
		return errors.NewDetf(ClassIncludedWildcard,
			"wildcard included relation path: '%s' is not supported", entry)
	}

	for _, segment := range strings.Split(entry, annotation.NestedSeparator) {
		if segment == "" {
			return errors.NewDetf(ClassInvalidParameter,
				"included relation path: '%s' contains an empty segment", entry)
		}
	}

	if limit := i.cfg.NestedIncludeLimit; limit > 0 {
		if nested := strings.Count(entry, annotation.NestedSeparator); nested > limit {
			return errors.NewDetf(ClassIncludedTooMany,
				"included relation path: '%s' reached the maximum nested include limit", entry)
		}
	}
	return nil
}
