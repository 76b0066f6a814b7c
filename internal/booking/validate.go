package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	bkashRe = regexp.MustCompile(`^\d{11}$`)
)

// Form is the booking submission payload as bound from the request
// body.  Dates travel as YYYY-MM-DD strings and are parsed during
// validation.
type Form struct {
	ServiceID       uint64 `json:"service_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	GuestCount      int    `json:"guest_count"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method"`
	BkashNumber     string `json:"bkash_number,omitempty"`
	BkashTrxID      string `json:"bkash_trx_id,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	BankRef         string `json:"bank_ref,omitempty"`
}

// ValidationError reports per-field problems found before any storage
// call.  Handlers translate it into a 400 response with the field map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	return "invalid booking form: " + strings.Join(parts, "; ")
}

// Validate checks every field of the form and parses the dates.  The
// returned times are only meaningful when the error map is empty.
// Rules mirror the booking form: name, email, phone and both dates are
// required; the email must look like an address; check-out must be
// strictly after check-in; at least one guest; bkash payments need an
// 11-digit number and a transaction id of 6+ characters; bank payments
// need a bank name of 2+ and a reference of 4+ characters.
func (f *Form) Validate() (checkIn, checkOut time.Time, verr *ValidationError) {
	errs := map[string]string{}

	if f.ServiceID == 0 {
		errs["service_id"] = "service is required"
	}
	if strings.TrimSpace(f.CustomerName) == "" {
		errs["customer_name"] = "name is required"
	}
	email := strings.TrimSpace(f.CustomerEmail)
	if email == "" {
		errs["customer_email"] = "email is required"
	} else if !emailRe.MatchString(email) {
		errs["customer_email"] = "email is invalid"
	}
	if strings.TrimSpace(f.CustomerPhone) == "" {
		errs["customer_phone"] = "phone is required"
	}

	var inErr, outErr error
	if f.CheckInDate == "" {
		errs["check_in_date"] = "check-in date is required"
	} else if checkIn, inErr = time.Parse(DateLayout, f.CheckInDate); inErr != nil {
		errs["check_in_date"] = "check-in date is invalid"
	}
	if f.CheckOutDate == "" {
		errs["check_out_date"] = "check-out date is required"
	} else if checkOut, outErr = time.Parse(DateLayout, f.CheckOutDate); outErr != nil {
		errs["check_out_date"] = "check-out date is invalid"
	}
	if inErr == nil && outErr == nil && !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		errs["check_out_date"] = "check-out date must be after check-in date"
	}

	if f.GuestCount < 1 {
		errs["guest_count"] = "at least one guest is required"
	}

	switch f.PaymentMethod {
	case model.MethodCashOnDelivery:
		// nothing further to verify
	case model.MethodBkash:
		if !bkashRe.MatchString(f.BkashNumber) {
			errs["bkash_number"] = "valid bKash number (11 digits) required"
		}
		if len(strings.TrimSpace(f.BkashTrxID)) < 6 {
			errs["bkash_trx_id"] = "bKash transaction id is required"
		}
	case model.MethodBank:
		if len(strings.TrimSpace(f.BankName)) < 2 {
			errs["bank_name"] = "bank name is required"
		}
		if len(strings.TrimSpace(f.BankRef)) < 4 {
			errs["bank_ref"] = "reference number is required"
		}
	case "":
		errs["payment_method"] = "payment method is required"
	default:
		errs["payment_method"] = "unknown payment method"
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, &ValidationError{Fields: errs}
	}
	return checkIn, checkOut, nil
}
