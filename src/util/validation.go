package util

import (
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ValidateAmount rejects negative monetary amounts.
func ValidateAmount(amount float64) bool {
	return amount >= 0
}
