// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/halisaha/field-booking-backend/internal/pkg/phone"
)

const (
	// DateLayout is the wire format of calendar days.
	DateLayout = "2006-01-02"
	// HourMinuteLayout is the wire format of slot start and end times.
	HourMinuteLayout = "15:04"
)

// Register installs the custom tags on gin's validator engine.
// It is safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"trphone": validatePhone,
		"date":    validateDate,
		"hourmin": validateHourMinute,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validator: %w", tag, err)
		}
	}
	return nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return phone.Valid(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// validateHourMinute accepts "HH:MM" with hours up to 25 so the last slot
// of the day (24:00 to 25:00) can be expressed.
func validateHourMinute(fl validator.FieldLevel) bool {
	_, ok := ParseHourMinute(fl.Field().String())
	return ok
}

// ParseHourMinute returns the minutes after midnight for an "HH:MM" value.
func ParseHourMinute(s string) (int, bool) {
	if len(s) != len(HourMinuteLayout) || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 25 {
		return 0, false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
