package argset

import "fmt"

// ErrorKind identifies the failure cause of a ParseError.
type ErrorKind int

const (
	// KindUnknownArgument: a token (or short-cluster character) matched
	// no registered definition.
	KindUnknownArgument ErrorKind = iota
	// KindMissingValue: an option was the last token, or the last
	// cluster character, with no value token following it.
	KindMissingValue
	// KindOptionInGroup: a value-bearing option appeared at a non-final
	// position inside a short-flag cluster.
	KindOptionInGroup
	// KindHelpRequested: the user asked for help. Not a true failure;
	// modeled as an error to short-circuit normal flow. Callers render
	// help themselves via Parser.Help.
	KindHelpRequested
	// KindMissingRequired: a required definition was not satisfied
	// after otherwise-successful tokenization.
	KindMissingRequired
	// KindDuplicateDefinition: two definitions were registered under
	// the same long name, or two flag/option definitions under the same
	// short name. A programming error in the host, reported by the
	// first Parse call.
	KindDuplicateDefinition
)

// Exit codes follow the usual CLI split: 2 for bad user input, 1 for
// host misconfiguration, 0 for an explicit help request.
var exitCodes = map[ErrorKind]int{
	KindUnknownArgument:     2,
	KindMissingValue:        2,
	KindOptionInGroup:       2,
	KindHelpRequested:       0,
	KindMissingRequired:     2,
	KindDuplicateDefinition: 1,
}

// ParseError is the only error type returned by Parse. Name carries the
// offending long name, short character or raw token, depending on Kind.
type ParseError struct {
	Kind ErrorKind
	Name string

	suggestions []string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindUnknownArgument:
		return fmt.Sprintf("unknown argument: '%s'", e.Name)
	case KindMissingValue:
		return fmt.Sprintf("missing value for option: '%s'", e.Name)
	case KindOptionInGroup:
		return fmt.Sprintf("option '%s' cannot be in the middle of a group", e.Name)
	case KindHelpRequested:
		return "help requested"
	case KindMissingRequired:
		return fmt.Sprintf("missing required argument '%s'", e.Name)
	case KindDuplicateDefinition:
		return fmt.Sprintf("duplicate argument definition '%s'", e.Name)
	default:
		return fmt.Sprintf("argument error: '%s'", e.Name)
	}
}

// Is reports kind equality, so errors.Is(err, &ParseError{Kind: k})
// matches any error of that kind regardless of the offending name.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Name == "" || t.Name == e.Name)
}

// ExitCode returns the process exit code a host should use for this
// error.
func (e *ParseError) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Suggestions returns close-name candidates for an unknown long
// argument, nearest first. Empty for every other kind.
func (e *ParseError) Suggestions() []string {
	return e.suggestions
}

func unknownArgument(name string, suggestions []string) *ParseError {
	return &ParseError{Kind: KindUnknownArgument, Name: name, suggestions: suggestions}
}

func missingValue(name string) *ParseError {
	return &ParseError{Kind: KindMissingValue, Name: name}
}

func optionInGroup(name string) *ParseError {
	return &ParseError{Kind: KindOptionInGroup, Name: name}
}

func helpRequested() *ParseError {
	return &ParseError{Kind: KindHelpRequested}
}

func missingRequired(name string) *ParseError {
	return &ParseError{Kind: KindMissingRequired, Name: name}
}

func duplicateDefinition(name string) *ParseError {
	return &ParseError{Kind: KindDuplicateDefinition, Name: name}
}

var _ error = (*ParseError)(nil)
