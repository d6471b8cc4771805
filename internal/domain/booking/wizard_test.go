package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamsuite/salon-scheduler/internal/domain/appointment"
	"github.com/glamsuite/salon-scheduler/internal/httperr"
)

func validContact() Contact {
	return Contact{
		FirstName: "Awa",
		LastName:  "Diallo",
		Email:     "awa@test.com",
		Phone:     "+243990000001",
	}
}

func TestNewWizardStartsAtContactStep(t *testing.T) {
	w := New(7)

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, uint(7), w.SalonID)
	assert.Equal(t, StepContact, w.Step)
}

func TestSubmitContactRequiresAllFields(t *testing.T) {
	cases := []Contact{
		{LastName: "Diallo", Email: "awa@test.com", Phone: "1"},
		{FirstName: "Awa", Email: "awa@test.com", Phone: "1"},
		{FirstName: "Awa", LastName: "Diallo", Phone: "1"},
		{FirstName: "Awa", LastName: "Diallo", Email: "awa@test.com"},
	}

	for _, c := range cases {
		w := New(1)
		err := w.SubmitContact(c)
		assert.True(t, httperr.IsBusiness(err, "missing_contact_fields"))
		assert.Equal(t, StepContact, w.Step)
	}
}

func TestSubmitContactRejectsMalformedEmail(t *testing.T) {
	w := New(1)
	c := validContact()
	c.Email = "not-an-email"

	err := w.SubmitContact(c)
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
}

func TestSubmitContactNormalizesAndAdvances(t *testing.T) {
	w := New(1)
	err := w.SubmitContact(Contact{
		FirstName: " Awa ",
		LastName:  "Diallo",
		Email:     " Awa@Test.com ",
		Phone:     "+243990000001",
	})
	require.NoError(t, err)

	assert.Equal(t, StepSelection, w.Step)
	assert.Equal(t, "Awa", w.Contact.FirstName)
	assert.Equal(t, "awa@test.com", w.Contact.Email)
}

func TestSubmitSelectionGuards(t *testing.T) {
	w := New(1)
	require.NoError(t, w.SubmitContact(validContact()))

	err := w.SubmitSelection(0, 7)
	assert.True(t, httperr.IsBusiness(err, "missing_selection"))

	err = w.SubmitSelection(3, 0)
	assert.True(t, httperr.IsBusiness(err, "missing_selection"))

	require.NoError(t, w.SubmitSelection(3, 7))
	assert.Equal(t, StepSchedule, w.Step)
}

func TestSetScheduleValidatesSlot(t *testing.T) {
	w := New(1)
	require.NoError(t, w.SubmitContact(validContact()))
	require.NoError(t, w.SubmitSelection(3, 7))

	grid := appointment.DefaultSlots()

	err := w.SetSchedule("", "10:00", "", grid)
	assert.True(t, httperr.IsBusiness(err, "missing_schedule"))

	err = w.SetSchedule("2025-06-10", "", "", grid)
	assert.True(t, httperr.IsBusiness(err, "missing_schedule"))

	err = w.SetSchedule("2025-06-10", "13:00", "", grid)
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))

	require.NoError(t, w.SetSchedule("2025-06-10", "10:00", "fringe", grid))
	assert.Equal(t, StepSchedule, w.Step, "schedule capture alone does not advance")

	w.MarkScheduled(42)
	assert.Equal(t, StepPayment, w.Step)
	assert.Equal(t, uint(42), w.AppointmentID)
}

func TestSetPaymentMethodRules(t *testing.T) {
	w := New(1)
	w.Step = StepPayment

	err := w.SetPayment("", "")
	assert.True(t, httperr.IsBusiness(err, "missing_payment_method"))

	err = w.SetPayment("card", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))

	err = w.SetPayment("airtel_money", " ")
	assert.True(t, httperr.IsBusiness(err, "missing_airtel_phone"))

	require.NoError(t, w.SetPayment("cash_on_arrival", ""))

	require.NoError(t, w.SetPayment("airtel_money", "+243991112233"))
	assert.Equal(t, "+243991112233", w.AirtelPhone)

	w.MarkPaid(9)
	assert.True(t, w.Done())
}

func TestBackKeepsAccumulatedFields(t *testing.T) {
	w := New(1)
	require.NoError(t, w.SubmitContact(validContact()))
	require.NoError(t, w.SubmitSelection(3, 7))

	require.NoError(t, w.Back())
	assert.Equal(t, StepSelection, w.Step)
	assert.Equal(t, uint(3), w.ServiceID)
	assert.Equal(t, "awa@test.com", w.Contact.Email)

	require.NoError(t, w.Back())
	assert.Equal(t, StepContact, w.Step)

	err := w.Back()
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestBackBlockedOnceAppointmentExists(t *testing.T) {
	w := New(1)
	w.Step = StepPayment
	w.AppointmentID = 42

	err := w.Back()
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}
