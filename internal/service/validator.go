package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

const (
	EmailMaxLen         = 255
	NameMinLen          = 2
	NameMaxLen          = 100
	SubjectMaxLen       = 200
	AccountNumberMaxLen = 64
	MaxOrderItems       = 100
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9\s().-]{5,20}$`)
)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return fmt.Errorf("%w: email is too long", entity.ErrValidation)
	}

	if !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}

	return nil
}

func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	if err := ValidateEmail(normalized); err != nil {
		return "", err
	}

	return normalized, nil
}

func ValidateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < NameMinLen || n > NameMaxLen {
		return fmt.Errorf("%w: name must be %d to %d characters", entity.ErrValidation, NameMinLen, NameMaxLen)
	}

	return nil
}

func ValidatePhone(phone string) error {
	if !phoneRegexp.MatchString(phone) {
		return fmt.Errorf("%w: invalid phone number", entity.ErrValidation)
	}

	return nil
}

func validateCustomer(c entity.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", entity.ErrValidation)
	}

	if strings.TrimSpace(c.AccountNumber) == "" {
		return fmt.Errorf("%w: accountNumber is required", entity.ErrValidation)
	}

	if utf8.RuneCountInString(c.AccountNumber) > AccountNumberMaxLen {
		return fmt.Errorf("%w: accountNumber is too long", entity.ErrValidation)
	}

	if c.Email != "" {
		if err := ValidateEmail(c.Email); err != nil {
			return err
		}
	}

	if c.Phone != "" {
		if err := ValidatePhone(c.Phone); err != nil {
			return err
		}
	}

	if !c.Tier.IsValid() {
		return fmt.Errorf("%w: unknown tier %q", entity.ErrValidation, c.Tier)
	}

	if !c.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", entity.ErrValidation, c.Status)
	}

	return nil
}

func validateTicket(t entity.Ticket) error {
	if t.CustomerID == "" {
		return fmt.Errorf("%w: customerId is required", entity.ErrValidation)
	}

	subject := strings.TrimSpace(t.Subject)
	if subject == "" {
		return fmt.Errorf("%w: subject is required", entity.ErrValidation)
	}

	if utf8.RuneCountInString(subject) > SubjectMaxLen {
		return fmt.Errorf("%w: subject is too long", entity.ErrValidation)
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", entity.ErrValidation, t.Status)
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", entity.ErrValidation, t.Priority)
	}

	return nil
}

func validateOrderItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: order has no items", entity.ErrValidation)
	}

	if len(items) > MaxOrderItems {
		return fmt.Errorf("%w: too many items", entity.ErrValidation)
	}

	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" && strings.TrimSpace(item.SKU) == "" {
			return fmt.Errorf("%w: item %d has neither sku nor name", entity.ErrValidation, i)
		}

		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", entity.ErrValidation, i)
		}

		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d has a negative price", entity.ErrValidation, i)
		}
	}

	return nil
}

func validateCall(c entity.Call) error {
	if strings.TrimSpace(c.PhoneNumber) == "" {
		return fmt.Errorf("%w: phoneNumber is required", entity.ErrValidation)
	}

	if err := ValidatePhone(c.PhoneNumber); err != nil {
		return err
	}

	if !c.Direction.IsValid() {
		return fmt.Errorf("%w: unknown direction %q", entity.ErrValidation, c.Direction)
	}

	if !c.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", entity.ErrValidation, c.Status)
	}

	if c.DurationSeconds < 0 {
		return fmt.Errorf("%w: negative duration", entity.ErrValidation)
	}

	return nil
}
