package domain

// Scope is the single permission label attached to a user account and
// copied into each token at issuance time.
type Scope string

const (
	ScopeAdmin  Scope = "admin"
	ScopeEditor Scope = "editor"
	ScopeUser   Scope = "user"
)

// User is an operator account able to authenticate against the API.
type User struct {
	ID           int64
	UserName     string
	Email        string
	FullName     *string
	Disabled     bool
	PasswordHash string
	Scope        Scope
}
