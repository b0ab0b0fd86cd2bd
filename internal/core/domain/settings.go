package domain

// Settings are the user preferences read from the optional settings file.
// Zero values mean "use the built-in default".
type Settings struct {
	// Python is the interpreter used to create environments.
	Python string

	// Roots are the search roots used by list when none are given.
	Roots []string

	// Match is the exclusion match mode.
	Match MatchMode

	// ExtraExclusions are appended to DefaultExclusionFragments.
	ExtraExclusions []string
}
