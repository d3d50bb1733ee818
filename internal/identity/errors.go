package identity

import "fmt"

// ErrorCode is the closed set of provider rejections the storefront
// recognizes. Anything the provider reports outside this set collapses to
// CodeUnknown rather than leaking raw codes to the UI.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeUserNotFound
	CodeWrongPassword
	CodeInvalidEmail
	CodeUserDisabled
	CodeTooManyRequests
	CodeEmailInUse
	CodeWeakPassword
)

// ProviderError carries the mapped code plus the provider's raw code string
// for logging.
type ProviderError struct {
	Code ErrorCode
	Raw  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider error: %s", e.Raw)
}

// NewProviderError maps a raw provider code onto the closed enum.
func NewProviderError(raw string) *ProviderError {
	return &ProviderError{Code: mapRawCode(raw), Raw: raw}
}

func mapRawCode(raw string) ErrorCode {
	switch raw {
	case "EMAIL_NOT_FOUND", "auth/user-not-found":
		return CodeUserNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "auth/wrong-password", "auth/invalid-credential":
		return CodeWrongPassword
	case "INVALID_EMAIL", "auth/invalid-email":
		return CodeInvalidEmail
	case "USER_DISABLED", "auth/user-disabled":
		return CodeUserDisabled
	case "TOO_MANY_ATTEMPTS_TRY_LATER", "auth/too-many-requests":
		return CodeTooManyRequests
	case "EMAIL_EXISTS", "auth/email-already-in-use":
		return CodeEmailInUse
	case "WEAK_PASSWORD", "auth/weak-password":
		return CodeWeakPassword
	default:
		return CodeUnknown
	}
}

// LoginMessage returns the user-facing text for a sign-in failure.
func LoginMessage(code ErrorCode) string {
	switch code {
	case CodeUserNotFound:
		return "No account found with this email address."
	case CodeWrongPassword:
		return "Incorrect password. Please try again."
	case CodeInvalidEmail:
		return "Invalid email address format."
	case CodeUserDisabled:
		return "This account has been disabled."
	case CodeTooManyRequests:
		return "Too many failed attempts. Please try again later."
	default:
		return "Login failed. Please try again."
	}
}

// RegisterMessage returns the user-facing text for an account-creation failure.
func RegisterMessage(code ErrorCode) string {
	switch code {
	case CodeEmailInUse:
		return "This email is already registered."
	case CodeInvalidEmail:
		return "Invalid email address format."
	case CodeWeakPassword:
		return "Password is too weak. Please choose a stronger password."
	default:
		return "Registration failed. Please try again."
	}
}

// ResetMessage returns the user-facing text for a password-reset failure.
func ResetMessage(code ErrorCode) string {
	switch code {
	case CodeUserNotFound:
		return "No account found with this email address."
	case CodeInvalidEmail:
		return "Invalid email address."
	case CodeTooManyRequests:
		return "Too many requests. Please try again later."
	default:
		return "Failed to send password reset email. Please try again."
	}
}

// MessageFor extracts the code from err (defaulting to CodeUnknown) and
// applies the given message table.
func MessageFor(err error, table func(ErrorCode) string) string {
	if perr, ok := err.(*ProviderError); ok {
		return table(perr.Code)
	}
	return table(CodeUnknown)
}
