package mail

// Registration is the payload published on the user-registration topic.
// Password and Username are part of the wire format but are never used here.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// VerificationURL builds the link consumed by the verifyUserEmail endpoint.
// Email and token are concatenated as-is; the endpoint reads them back raw,
// so no percent-encoding is applied.
func VerificationURL(base, email, token string) string {
	return base + "?email=" + email + "&token=" + token
}
