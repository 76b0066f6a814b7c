package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidhasan/resort-booking/internal/model"
)

func validForm() *Form {
	return &Form{
		ServiceID:     7,
		CustomerName:  "Anika Rahman",
		CustomerEmail: "anika@example.com",
		CustomerPhone: "01711111111",
		CheckInDate:   "2026-09-01",
		CheckOutDate:  "2026-09-04",
		GuestCount:    2,
		PaymentMethod: model.MethodCashOnDelivery,
	}
}

func TestValidateOK(t *testing.T) {
	in, out, verr := validForm().Validate()
	require.Nil(t, verr)
	assert.Equal(t, "2026-09-01", in.Format(DateLayout))
	assert.Equal(t, "2026-09-04", out.Format(DateLayout))
}

func TestValidateRequiredFields(t *testing.T) {
	f := &Form{}
	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	for _, field := range []string{
		"service_id", "customer_name", "customer_email", "customer_phone",
		"check_in_date", "check_out_date", "guest_count", "payment_method",
	} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestValidateEmail(t *testing.T) {
	f := validForm()
	f.CustomerEmail = "not-an-email"
	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "customer_email")

	f.CustomerEmail = "a@b.co"
	_, _, verr = f.Validate()
	assert.Nil(t, verr)
}

func TestValidateDateOrder(t *testing.T) {
	f := validForm()
	f.CheckOutDate = f.CheckInDate
	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "check_out_date")

	f.CheckOutDate = "2026-08-30"
	_, _, verr = f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "check_out_date")
}

func TestValidateBadDateFormat(t *testing.T) {
	f := validForm()
	f.CheckInDate = "01/09/2026"
	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "check_in_date")
}

func TestValidateGuestCount(t *testing.T) {
	f := validForm()
	f.GuestCount = 0
	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "guest_count")
}

func TestValidateBkash(t *testing.T) {
	f := validForm()
	f.PaymentMethod = model.MethodBkash

	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "bkash_number")
	assert.Contains(t, verr.Fields, "bkash_trx_id")

	f.BkashNumber = "0171234567" // 10 digits
	f.BkashTrxID = "TRX123"
	_, _, verr = f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "bkash_number")

	f.BkashNumber = "01712345678"
	_, _, verr = f.Validate()
	assert.Nil(t, verr)
}

func TestValidateBank(t *testing.T) {
	f := validForm()
	f.PaymentMethod = model.MethodBank

	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "bank_name")
	assert.Contains(t, verr.Fields, "bank_ref")

	f.BankName = "City Bank"
	f.BankRef = "REF8891"
	_, _, verr = f.Validate()
	assert.Nil(t, verr)
}

func TestValidateUnknownMethod(t *testing.T) {
	f := validForm()
	f.PaymentMethod = "crypto"
	_, _, verr := f.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "payment_method")
}
