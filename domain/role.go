package domain

import "strings"

// Role is the capability level derived from a credential tag.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleManager  Role = "manager"
)

// RoleTable maps reserved credential tags to their role. Any tag not listed,
// including the empty tag, derives RoleCustomer.
var RoleTable = map[string]Role{
	"12345678": RoleManager,
	"12345":    RoleStaff,
}

// DeriveRole resolves the role for a credential tag.
func DeriveRole(tag string) Role {
	if r, ok := RoleTable[tag]; ok {
		return r
	}
	return RoleCustomer
}

// Credential is a login record, built-in or registered at signup.
type Credential struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FullName      string `json:"fullName"`
	CredentialTag string `json:"credentialTag,omitempty"`
}

// Matches reports whether email (case-insensitive) and password match c.
func (c Credential) Matches(email, password string) bool {
	return c.HasEmail(email) && c.Password == password
}

// HasEmail compares emails case-insensitively.
func (c Credential) HasEmail(email string) bool {
	return strings.EqualFold(c.Email, email)
}

// Session is the authenticated identity.
type Session struct {
	Identity      string `json:"identity"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	CredentialTag string `json:"credentialTag,omitempty"`
}

// Role is derived on every call and never stored.
func (s Session) Role() Role {
	return DeriveRole(s.CredentialTag)
}
