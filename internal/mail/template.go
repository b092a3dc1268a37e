package mail

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed verification.html
var verificationHTML string

// text/template rather than html/template: the verify endpoint expects the
// raw email and token in the query string, and entity-escaping would corrupt
// the link.
var verificationTmpl = template.Must(template.New("verification").Parse(verificationHTML))

// VerificationData fills the verification email template.
type VerificationData struct {
	FirstName string
	LastName  string
	VerifyURL string
}

// RenderVerification renders the HTML body of the verification email.
func RenderVerification(data VerificationData) (string, error) {
	var buf bytes.Buffer
	if err := verificationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing verification template: %w", err)
	}
	return buf.String(), nil
}
