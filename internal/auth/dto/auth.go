package dto

import (
	"regexp"
	"strings"

	"storefront-backend/internal/session"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps form field names to validation messages. It satisfies
// error so usecases can return it in place of a provider failure; a request
// carrying field errors never reaches the identity provider.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

func (r *LoginRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if !validEmail(r.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if r.Password == "" {
		errs["password"] = "Password is required"
	} else if !validPassword(r.Password) {
		errs["password"] = "Password must be at least 6 characters long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

func (r *RegisterRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.FirstName == "" {
		errs["firstName"] = "First name is required"
	} else if !validName(r.FirstName) {
		errs["firstName"] = "Name must be at least 2 characters long"
	}

	if r.LastName == "" {
		errs["lastName"] = "Last name is required"
	} else if !validName(r.LastName) {
		errs["lastName"] = "Name must be at least 2 characters long"
	}

	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if !validEmail(r.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if r.Password == "" {
		errs["password"] = "Password is required"
	} else if !validPassword(r.Password) {
		errs["password"] = "Password must be at least 6 characters long"
	}

	if r.ConfirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if r.ConfirmPassword != r.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if !r.AgreeTerms {
		errs["agreeTerms"] = "You must agree to the terms"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// DisplayName joins the trimmed name parts the way the profile update expects.
func (r *RegisterRequest) DisplayName() string {
	return strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName)
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ResetPasswordRequest) Validate() FieldErrors {
	if r.Email == "" {
		return FieldErrors{"email": "Please enter your email address first to reset your password."}
	}
	if !validEmail(r.Email) {
		return FieldErrors{"email": "Please enter a valid email address."}
	}
	return nil
}

type AuthResponse struct {
	AccessToken string              `json:"access_token,omitempty"`
	User        *session.UserRecord `json:"user,omitempty"`
	Message     string              `json:"message,omitempty"`
}

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validPassword(password string) bool {
	return len(password) >= 6
}

func validName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}
