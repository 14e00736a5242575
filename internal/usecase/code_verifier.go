package usecase

import (
	"context"
)

// StaticCodeVerifier accepts a single configured code for every email. It is
// the demo-mode policy; a production deployment plugs in a verifier backed by
// a real OTP provider.
type StaticCodeVerifier struct {
	code string
}

func NewStaticCodeVerifier(code string) *StaticCodeVerifier {
	return &StaticCodeVerifier{code: code}
}

func (v *StaticCodeVerifier) Verify(ctx context.Context, email, code string) (bool, error) {
	return code == v.code, nil
}
