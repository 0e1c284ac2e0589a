package annotation

// Separators and other symbols used in the 'include' query parameter.
const (
	// Separator is the symbol used to separate multiple included relation
	// paths within a single query parameter value.
	// Example: include=posts,comments
	//						  ^
	Separator = ","

	// NestedSeparator is the symbol used as a separator for the nested fields access.
	// Used in included or sort fields.
	// Example: include=posts.comments
	// 						 ^
	NestedSeparator = "."

	// WildcardSymbols are the symbols that mark an included relation path
	// segment as a wildcard. Wildcard inclusion is not supported - a path
	// that contains any of these symbols anywhere is skipped as a whole.
	WildcardSymbols = "*?"

	// OpenedBracket is the symbol used to open the nested relations part
	// in the textual form of the inclusion tree.
	// Example: posts[comments,author]
	//				 ^
	OpenedBracket = '['

	// ClosedBracket is the symbol used to close the nested relations part
	// in the textual form of the inclusion tree.
	// Example: posts[comments,author]
	//				  				^
	ClosedBracket = ']'
)
