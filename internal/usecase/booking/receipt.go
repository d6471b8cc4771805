package booking

import (
	"context"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
)

// Receipt is the client-renderable booking summary produced at the terminal
// step. Consumers render it however they like; this service only assembles it.
type Receipt struct {
	AppointmentID uint    `json:"appointment_id"`
	Salon         string  `json:"salon"`
	Client        string  `json:"client"`
	Service       string  `json:"service"`
	Employee      string  `json:"employee"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Reference     string  `json:"reference"`
}

func (f *Flow) Receipt(ctx context.Context, wizardID string) (*Receipt, error) {
	w, err := f.Get(ctx, wizardID)
	if err != nil {
		return nil, err
	}
	if !w.Done() {
		return nil, httperr.ErrBusiness("booking_not_completed")
	}

	salon, err := f.repo.GetSalonByID(ctx, w.SalonID)
	if err != nil {
		return nil, err
	}
	ap, err := f.repo.GetAppointment(ctx, w.SalonID, w.AppointmentID)
	if err != nil {
		return nil, err
	}
	service, err := f.repo.GetService(ctx, w.SalonID, w.ServiceID)
	if err != nil {
		return nil, err
	}
	employee, err := f.repo.GetEmployee(ctx, w.SalonID, w.EmployeeID)
	if err != nil {
		return nil, err
	}
	payment, err := f.repo.GetPayment(ctx, w.SalonID, w.PaymentID)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		AppointmentID: ap.ID,
		Salon:         salon.Name,
		Client:        w.Contact.FirstName + " " + w.Contact.LastName,
		Service:       service.Name,
		Employee:      employee.FirstName + " " + employee.LastName,
		Date:          ap.Date,
		Time:          ap.StartTime,
		PaymentMethod: payment.Method,
		Amount:        payment.Amount,
		Currency:      salon.Currency,
		Reference:     payment.Reference,
	}, nil
}
