package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// MaxUsersPerList caps how many users a single list fetch may return.
// There is no pagination; consumers get the first page only.
const MaxUsersPerList = 1000

// UUID4Pattern matches a canonical hyphenated version-4 UUID: the version
// nibble is fixed to 4 and the variant nibble is one of 8, 9, a, b.
var UUID4Pattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89ab][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// IsUUID4 reports whether s is a well-formed version-4 UUID string.
func IsUUID4(s string) bool {
	return UUID4Pattern.MatchString(s)
}

// ValidationError reports the input fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

// UserDB represents a user record in the database.
// The JSON tags produce the wire form directly: the internal identifier
// (stored as the document `_id`) is exposed as a plain "id" string.
type UserDB struct {
	UserID    uuid.UUID `json:"id"`         // Primary key, assigned once at creation
	FirstName string    `json:"first_name"` // Required
	LastName  string    `json:"last_name"`  // Required
	Username  string    `json:"username"`   // Required, unique by convention only
}

// UserInput is the subset of user fields accepted on create and update.
// The id is never part of the input; the server assigns it.
type UserInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Validate checks the required fields and returns a ValidationError naming
// every missing one.
func (in UserInput) Validate() error {
	var missing []string
	if in.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if in.LastName == "" {
		missing = append(missing, "last_name")
	}
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// UserCollection wraps a list response of users.
type UserCollection struct {
	Users []UserDB `json:"users"`
}
