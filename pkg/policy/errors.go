package policy

import "errors"

// Sentinel errors for policy loading and lookup.
// Callers should use errors.Is() to check for these.
var (
	// ErrPolicyNotFound indicates a policy file or built-in name that
	// does not exist.
	ErrPolicyNotFound = errors.New("policy: not found")

	// ErrInvalidPolicy indicates a policy file that is syntactically
	// or semantically malformed (bad YAML, unknown primitive or rule
	// name, missing mandatory list).
	ErrInvalidPolicy = errors.New("policy: invalid policy file")
)
