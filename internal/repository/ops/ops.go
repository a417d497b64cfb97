package ops

type Op string

const (
	// Equal matches an exact field value
	Equal Op = "=="
	// Contains matches a case-insensitive substring of a string field
	Contains Op = "contains"
)
