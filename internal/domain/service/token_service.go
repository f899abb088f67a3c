package service

// TokenService defines the interface for issuing and decoding session
// tokens. This abstracts the token format (JWT) from the use cases.
type TokenService interface {
	// Issue creates a signed session token asserting the given account id.
	Issue(accountID int64) (string, error)

	// Decode verifies a token's signature and expiry and extracts the
	// account id it asserts.
	Decode(token string) (int64, error)
}
