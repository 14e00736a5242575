package entity

import (
	"time"
)

// OTPRecord is one row appended to the OTP log for every code issued. The
// log is an audit trail; code acceptance is decided by the verifier, not by
// reading the log back.
type OTPRecord struct {
	Email     string
	Code      string
	CreatedAt time.Time
}
