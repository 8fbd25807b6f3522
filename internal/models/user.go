package models

// Role distinguishes the bootstrap administrator from ordinary users.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile holds the display details attached to a login account.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar"`
}

// User represents a local login account.
//
// Users live in the encrypted key-value registry, not in the ledger
// database, so this struct carries JSON tags for that serialization.
type User struct {
	// ID is the unique identifier (UUID format, except the bootstrap
	// admin which keeps the fixed ID "family-admin").
	ID string `json:"id"`

	// Username is matched exactly at login.
	Username string `json:"username"`

	// PasswordHash is the hex SHA-256 of password plus the registry
	// passphrase. See the auth package for the known weaknesses here.
	PasswordHash string `json:"passwordHash"`

	Role    Role    `json:"role"`
	Profile Profile `json:"profile"`

	// CreatedAt and LastLogin are RFC 3339 timestamps.
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin,omitempty"`
}
