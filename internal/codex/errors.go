package codex

import "fmt"

// ParseError reports a violation of the envelope or a domain grammar. It is
// fatal for the whole script.
type ParseError struct {
	Keyword string // enclosing block keyword, "" when unknown
	Line    int
	Column  int
	Msg     string
}

func (e *ParseError) Error() string {
	if e.Keyword == "" {
		return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("parse error in %s block at %d:%d: %s", e.Keyword, e.Line, e.Column, e.Msg)
}

// UnknownDomainError reports a block keyword with no registered domain.
type UnknownDomainError struct {
	Keyword string
	Line    int
	Column  int
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("unknown domain %q at %d:%d", e.Keyword, e.Line, e.Column)
}

// DuplicateEntityError reports a second definition of an entity name.
type DuplicateEntityError struct {
	Entity  string
	Keyword string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("duplicate entity %q (%s block)", e.Entity, e.Keyword)
}

// UnresolvedTargetError reports a query whose target is not defined at the
// point the query is processed. Forward references count as unresolved.
type UnresolvedTargetError struct {
	Entity  string // the querying entity
	Target  string
	Keyword string
}

func (e *UnresolvedTargetError) Error() string {
	return fmt.Sprintf("query %q (%s block) targets undefined entity %q", e.Entity, e.Keyword, e.Target)
}

// UnsupportedComputationError reports a computation name a domain executor
// does not implement. It is block-local.
type UnsupportedComputationError struct {
	Keyword     string
	Computation string
}

func (e *UnsupportedComputationError) Error() string {
	return fmt.Sprintf("domain %q does not support computation %q", e.Keyword, e.Computation)
}

// ExecutionError wraps an algorithm collaborator failure with the entity it
// occurred in. It is block-local.
type ExecutionError struct {
	Entity  string
	Keyword string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution of %q (%s block) failed: %v", e.Entity, e.Keyword, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
