package ports

// TokenClaims is the verified content of an identity assertion. Role is the
// role at issuance time and is advisory only: authorization decisions must
// re-resolve the current role through the RoleAuthority.
type TokenClaims struct {
	SubjectID string
	Role      string
}

// TokenService issues and verifies signed, time-bound identity assertions.
type TokenService interface {
	Issue(subjectID, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
