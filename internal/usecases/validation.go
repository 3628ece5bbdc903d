package usecases

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"fastqr.backend/internal/domain/entities"
	domainerrors "fastqr.backend/internal/domain/errors"
	"github.com/go-playground/validator/v10"
)

const (
	minNameLength     = 2
	minPasswordLength = 8
)

var validate = validator.New()

var (
	pinPattern = regexp.MustCompile(`^\d{4}$`)

	// RE2 has no lookahead, so each password class is checked on its own
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d!@#$%^&*()_+]{8,}$`)
	passwordClasses = []*regexp.Regexp{
		regexp.MustCompile(`[a-z]`),
		regexp.MustCompile(`[A-Z]`),
		regexp.MustCompile(`\d`),
		regexp.MustCompile(`[!@#$%^&*()_+]`),
	}
)

func missingField(name string) *domainerrors.AppError {
	return domainerrors.BadRequest("Missing required field: " + name)
}

// normalizeRegisterInput trims every field and lowercases the email
func normalizeRegisterInput(in *entities.RegisterInput) {
	in.Country = strings.TrimSpace(in.Country)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.CountryCode = strings.TrimSpace(in.CountryCode)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegisterInput applies the registration checks in order; the first failure wins
func validateRegisterInput(in *entities.RegisterInput) *domainerrors.AppError {
	switch {
	case in.Country == "":
		return missingField("Country")
	case in.FirstName == "":
		return missingField("First Name")
	case utf8.RuneCountInString(in.FirstName) < minNameLength:
		return domainerrors.BadRequest("First Name must be at least 2 characters long")
	case in.LastName == "":
		return missingField("Last Name")
	case utf8.RuneCountInString(in.LastName) < minNameLength:
		return domainerrors.BadRequest("Last Name must be at least 2 characters long")
	case in.Email == "":
		return missingField("Email")
	case in.Password == "":
		return missingField("Password")
	case in.PhoneNumber == "":
		return missingField("Phone Number")
	case in.CountryCode == "":
		return missingField("Country Code")
	}

	if err := validatePassword(in.Password); err != nil {
		return err
	}

	if validate.Var(in.FirstName, "alpha") != nil || validate.Var(in.LastName, "alpha") != nil {
		return domainerrors.BadRequest("First Name and Last Name must contain only letters")
	}
	if validate.Var(in.Email, "email") != nil {
		return domainerrors.BadRequest("Invalid email address")
	}
	if validate.Var(in.PhoneNumber, "number") != nil {
		return domainerrors.BadRequest("Phone Number must contain only digits")
	}
	return nil
}

// validatePassword checks length, then strength
func validatePassword(password string) *domainerrors.AppError {
	if len(password) < minPasswordLength {
		return domainerrors.BadRequest("Password must be at least 8 characters long")
	}
	if !isStrongPassword(password) {
		return domainerrors.BadRequest("Weak password. Include uppercase, lowercase, digits, and special characters")
	}
	return nil
}

func isStrongPassword(password string) bool {
	if !passwordCharset.MatchString(password) {
		return false
	}
	for _, class := range passwordClasses {
		if !class.MatchString(password) {
			return false
		}
	}
	return true
}

// validatePin reports a missing or malformed 4-digit PIN
func validatePin(pin string) *domainerrors.AppError {
	if pin == "" {
		return missingField("Pin")
	}
	if !pinPattern.MatchString(pin) {
		return domainerrors.BadRequest("Invalid pin")
	}
	return nil
}
