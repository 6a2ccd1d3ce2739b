// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// MaxUsernameLength is the upper bound enforced on usernames at registration
// and by the database column definition.
const MaxUsernameLength = 20

// User is the core entity in the system, representing a single account.
// The username doubles as the login identifier and the token subject;
// it never changes after registration.
type User struct {
	ID           int64     // Auto-incremented primary key assigned by the store.
	Username     string    // Unique login identifier, at most MaxUsernameLength characters.
	PasswordHash string    // Bcrypt hash of the account password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
