// Package model defines domain models served by the address index API.
package model

import "regexp"

var scriptIDPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ScriptID is the lowercase hex SHA-256 digest of an output script.
// It is the join key between addresses and index records.
type ScriptID string

// Valid reports whether the identifier has the exact shape the index expects.
func (s ScriptID) Valid() bool {
	return scriptIDPattern.MatchString(string(s))
}

func (s ScriptID) String() string {
	return string(s)
}
