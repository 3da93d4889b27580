package primary

import "context"

// DispatchService defines the primary port for studio alert dispatch.
type DispatchService interface {
	// Dispatch renders the report for an inbound inquiry, persists it to the
	// audit trail, and raises a best-effort local alert. The simulated
	// delivery channel never fails; an error means the audit write failed.
	Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error)
}

// DispatchRequest carries everything the report needs. Services holds the
// selected service ids for booking/quotation kinds; Subject holds the
// inquiry subject for contact kind.
type DispatchRequest struct {
	Kind         string // booking, quotation, contact
	ContactName  string
	Email        string
	Phone        string
	Address      string
	PostalCode   string
	PropertyType string
	Services     []string
	Subject      string
}

// DispatchResult is the outcome of a dispatch: the audit row's coordinates
// and the full rendered report body.
type DispatchResult struct {
	Recipient string
	Subject   string
	Body      string
}
