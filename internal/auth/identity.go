package auth

// Identity is a verified caller. The zero value is never produced by Verify,
// so holding one proves the bearer token was checked.
type Identity struct {
	claims IdentityClaims
}

// Email returns the claimed email.
func (i Identity) Email() string {
	return i.claims.Email
}

// Claims returns the full claim set the token was issued with.
func (i Identity) Claims() IdentityClaims {
	return i.claims
}
