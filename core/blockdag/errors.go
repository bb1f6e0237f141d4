// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdag

import (
	"fmt"
)

// AssertError marks an internal consistency failure. It is raised through
// panic, a violated assumption leaves the structure in an unknown state and
// there is nothing a caller could repair.
type AssertError string

func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrorCode identifies the insertion rule a rejected block broke.
type ErrorCode int

const (
	// ErrDuplicateBlock indicates a block with the same id already
	// exists.
	ErrDuplicateBlock ErrorCode = iota

	// ErrMissingParent indicates that one of the referenced parents of
	// the block is not known to the DAG.
	ErrMissingParent

	// ErrNoParents indicates the block does not have a least one
	// parent.
	ErrNoParents
)

var errorCodeStrings = map[ErrorCode]string{
	ErrDuplicateBlock: "ErrDuplicateBlock",
	ErrMissingParent:  "ErrMissingParent",
	ErrNoParents:      "ErrNoParents",
}

// String returns the constant name of the code.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError wraps the rejection of a block that violates one of the
// insertion rules. A caller can type assert on it and read the ErrorCode
// field to learn the exact rule that failed, a rejected block leaves the
// DAG untouched.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates an RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
