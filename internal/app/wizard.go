package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/studio/internal/catalog"
	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/ports/secondary"
)

// Property classifications selectable in the sector step.
const (
	PropertyResidential = "Residential"
	PropertyCommercial  = "Commercial"
)

// ErrValidation is returned by Submit when one or more gating fields fail;
// the per-field messages are available via Errors.
var ErrValidation = errors.New("validation failed")

// Step is a wizard state. Navigation is linear: forward transitions are
// gated, backward transitions are unconditional and never clear data.
type Step int

const (
	StepLocale Step = iota + 1
	StepSector
	StepRequirements
	StepParticulars
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepLocale:
		return "Locale"
	case StepSector:
		return "Sector"
	case StepRequirements:
		return "Requirements"
	case StepParticulars:
		return "Particulars"
	case StepComplete:
		return "Complete"
	}
	return "Unknown"
}

// Field identifies a validated wizard input.
type Field string

const (
	FieldPostalCode  Field = "postalCode"
	FieldContactName Field = "contactName"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldAddress     Field = "address"
)

// BookingData is the transient form state, owned by the wizard until
// submission transfers it to the record store as a lead.
type BookingData struct {
	PostalCode       string
	PropertyType     string
	SelectedServices []string
	ContactName      string
	Email            string
	Address          string
	Phone            string
}

// Wizard is the four-step booking/quotation state machine. It owns the form
// state, the per-field error map, and the touched set that gates when errors
// surface.
type Wizard struct {
	SessionID string
	Kind      string // booking or quotation

	Data BookingData

	// Settle is the pause between dispatch and completion. Tests zero it.
	Settle time.Duration

	step      Step
	errors    map[Field]string
	touched   map[Field]bool
	reference string

	leads      primary.LeadService
	dispatcher primary.DispatchService
}

// NewWizard creates a wizard in the Locale step. Kind must be booking or
// quotation; anything else falls back to booking.
func NewWizard(kind string, leads primary.LeadService, dispatcher primary.DispatchService) *Wizard {
	if kind != secondary.LeadTypeQuotation {
		kind = secondary.LeadTypeBooking
	}
	return &Wizard{
		SessionID:  uuid.NewString(),
		Kind:       kind,
		Settle:     500 * time.Millisecond,
		step:       StepLocale,
		errors:     map[Field]string{},
		touched:    map[Field]bool{},
		leads:      leads,
		dispatcher: dispatcher,
	}
}

// Step returns the current wizard state.
func (w *Wizard) Step() Step {
	return w.step
}

// ReferenceCode returns the confirmation code, set once Complete is reached.
func (w *Wizard) ReferenceCode() string {
	return w.reference
}

// Preselect seeds the requirements step with a known service id, used when
// the wizard is opened from a service page. Unknown ids are ignored.
func (w *Wizard) Preselect(serviceID string) {
	if catalog.IsKnown(serviceID) && !w.hasService(serviceID) {
		w.Data.SelectedServices = append(w.Data.SelectedServices, serviceID)
	}
}

// SetField updates a field value. If the field has been touched, it is
// revalidated on every change so the error message tracks the input.
func (w *Wizard) SetField(f Field, value string) {
	switch f {
	case FieldPostalCode:
		w.Data.PostalCode = value
	case FieldContactName:
		w.Data.ContactName = value
	case FieldEmail:
		w.Data.Email = value
	case FieldPhone:
		w.Data.Phone = value
	case FieldAddress:
		w.Data.Address = value
	}
	if w.touched[f] {
		w.validateField(f)
	}
}

// Blur marks a field touched and validates it; from then on errors for the
// field are surfaced.
func (w *Wizard) Blur(f Field) {
	w.touched[f] = true
	w.validateField(f)
}

// VisibleError returns the field's error message, but only once the field
// has been touched. A freshly opened form shows no errors.
func (w *Wizard) VisibleError(f Field) string {
	if !w.touched[f] {
		return ""
	}
	return w.errors[f]
}

// Errors returns a copy of the current per-field error map.
func (w *Wizard) Errors() map[Field]string {
	out := make(map[Field]string, len(w.errors))
	for f, msg := range w.errors {
		if msg != "" {
			out[f] = msg
		}
	}
	return out
}

// ToggleService adds or removes a service id from the selection.
func (w *Wizard) ToggleService(serviceID string) {
	if w.hasService(serviceID) {
		kept := w.Data.SelectedServices[:0]
		for _, id := range w.Data.SelectedServices {
			if id != serviceID {
				kept = append(kept, id)
			}
		}
		w.Data.SelectedServices = kept
		return
	}
	w.Data.SelectedServices = append(w.Data.SelectedServices, serviceID)
}

// ChooseSector sets the property classification and advances to the
// requirements step: selecting either option is itself the gate.
func (w *Wizard) ChooseSector(propertyType string) bool {
	if w.step != StepSector {
		return false
	}
	if propertyType != PropertyResidential && propertyType != PropertyCommercial {
		return false
	}
	w.Data.PropertyType = propertyType
	w.step = StepRequirements
	return true
}

// Next attempts the forward transition from the current step. It returns
// false, leaving the wizard in place, when the step's gate fails; postal
// code failure also surfaces the field error.
func (w *Wizard) Next() bool {
	switch w.step {
	case StepLocale:
		if msg := ValidatePostalCode(w.Data.PostalCode); msg != "" {
			w.errors[FieldPostalCode] = msg
			w.touched[FieldPostalCode] = true
			return false
		}
		w.step = StepSector
		return true
	case StepSector:
		if w.Data.PropertyType == "" {
			return false
		}
		w.step = StepRequirements
		return true
	case StepRequirements:
		if len(w.Data.SelectedServices) == 0 {
			return false
		}
		w.step = StepParticulars
		return true
	}
	// Particulars advances only via Submit; Complete is terminal.
	return false
}

// Prev steps backward unconditionally without clearing entered data.
func (w *Wizard) Prev() bool {
	if w.step <= StepLocale || w.step == StepComplete {
		return false
	}
	w.step--
	return true
}

// Submit re-validates every gating field regardless of touched state, then
// persists the lead, dispatches the studio alert, settles briefly, and
// transitions to Complete. On any failure the wizard remains in Particulars;
// retrying creates a new lead row (submission is not idempotent).
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepParticulars {
		return errors.New("submission is only available from the particulars step")
	}

	for _, f := range []Field{FieldPostalCode, FieldEmail, FieldPhone, FieldContactName, FieldAddress} {
		w.touched[f] = true
		w.validateField(f)
	}
	for _, msg := range w.errors {
		if msg != "" {
			return ErrValidation
		}
	}

	if _, err := w.leads.CaptureLead(ctx, primary.CaptureLeadRequest{
		Type:         w.Kind,
		ContactName:  w.Data.ContactName,
		Email:        w.Data.Email,
		Phone:        w.Data.Phone,
		Address:      w.Data.Address,
		PostalCode:   w.Data.PostalCode,
		PropertyType: w.Data.PropertyType,
		Services:     w.Data.SelectedServices,
	}); err != nil {
		return err
	}

	if _, err := w.dispatcher.Dispatch(ctx, primary.DispatchRequest{
		Kind:         w.Kind,
		ContactName:  w.Data.ContactName,
		Email:        w.Data.Email,
		Phone:        w.Data.Phone,
		Address:      w.Data.Address,
		PostalCode:   w.Data.PostalCode,
		PropertyType: w.Data.PropertyType,
		Services:     w.Data.SelectedServices,
	}); err != nil {
		return err
	}

	w.reference = "GA-" + randUpper(4)

	time.Sleep(w.Settle)
	w.step = StepComplete
	return nil
}

func (w *Wizard) validateField(f Field) {
	switch f {
	case FieldPostalCode:
		w.errors[f] = ValidatePostalCode(w.Data.PostalCode)
	case FieldEmail:
		w.errors[f] = ValidateEmail(w.Data.Email)
	case FieldPhone:
		w.errors[f] = ValidatePhone(w.Data.Phone)
	case FieldContactName:
		w.errors[f] = ValidateName(w.Data.ContactName)
	case FieldAddress:
		w.errors[f] = ValidateAddress(w.Data.Address)
	}
}

func (w *Wizard) hasService(serviceID string) bool {
	for _, id := range w.Data.SelectedServices {
		if id == serviceID {
			return true
		}
	}
	return false
}
