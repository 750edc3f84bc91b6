package domain

// TokenClaims is the claim set carried inside a bearer token: the subject
// (username) plus the email the account was registered under. Expiry is
// handled by the token layer and never surfaces here — a token that decodes
// into TokenClaims has already passed signature and expiry checks.
type TokenClaims struct {
	Subject string
	Email   string
}
