package model

import "errors"

// ErrNoDeclarationFound means the source contains no function or classdef
// declaration, so no unit can be produced. Fatal for the file.
var ErrNoDeclarationFound = errors.New("no declaration found")

// ErrAmbiguousOverrideSource signals that more than one documentation
// source survived override resolution for the same member. The resolution
// rule is deterministic, so this is an internal consistency failure, not
// something malformed input can trigger.
var ErrAmbiguousOverrideSource = errors.New("ambiguous override source")

// MalformedMemberLineError reports a member declaration line that could not
// be parsed. Non-fatal: the member is skipped and parsing continues.
type MalformedMemberLineError struct {
	Line string
}

func (e *MalformedMemberLineError) Error() string {
	return "malformed member line: " + e.Line
}
