package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// MIMETypeJSON asks the model for a bare JSON document.
	MIMETypeJSON = "application/json"
)

// Finish reasons reported on a candidate (and block reasons on promptFeedback).
const (
	FinishReasonStop              = "STOP"
	FinishReasonMaxTokens         = "MAX_TOKENS"
	FinishReasonSafety            = "SAFETY"
	FinishReasonRecitation        = "RECITATION"
	FinishReasonBlocklist         = "BLOCKLIST"
	FinishReasonProhibitedContent = "PROHIBITED_CONTENT"
	FinishReasonSPII              = "SPII"
	FinishReasonOther             = "OTHER"
)
