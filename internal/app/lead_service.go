package app

import (
	"context"
	"fmt"

	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/ports/secondary"
)

// DefaultContactSubject is used when a contact submission carries no subject.
const DefaultContactSubject = "Studio Commission"

// LeadServiceImpl implements the LeadService interface.
type LeadServiceImpl struct {
	leadRepo   secondary.LeadRepository
	dispatcher primary.DispatchService
}

// NewLeadService creates a new LeadService with injected dependencies.
func NewLeadService(leadRepo secondary.LeadRepository, dispatcher primary.DispatchService) *LeadServiceImpl {
	return &LeadServiceImpl{
		leadRepo:   leadRepo,
		dispatcher: dispatcher,
	}
}

// CaptureLead persists a booking or quotation lead.
func (s *LeadServiceImpl) CaptureLead(ctx context.Context, req primary.CaptureLeadRequest) (*primary.CaptureLeadResponse, error) {
	if req.Type != secondary.LeadTypeBooking && req.Type != secondary.LeadTypeQuotation {
		return nil, fmt.Errorf("invalid lead type: %s", req.Type)
	}
	if len(req.Services) == 0 {
		return nil, fmt.Errorf("a %s lead requires at least one selected service", req.Type)
	}

	id, err := s.leadRepo.Create(ctx, &secondary.LeadRecord{
		Type:         req.Type,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PostalCode:   req.PostalCode,
		PropertyType: req.PropertyType,
		Services:     req.Services,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	return &primary.CaptureLeadResponse{LeadID: id}, nil
}

// SubmitContact persists a contact lead and dispatches its studio alert.
// The inquiry subject rides in the services column, mirroring how the lead
// table stores it for the other classifications.
func (s *LeadServiceImpl) SubmitContact(ctx context.Context, req primary.ContactRequest) (*primary.ContactResponse, error) {
	subject := req.Subject
	if subject == "" {
		subject = DefaultContactSubject
	}

	id, err := s.leadRepo.Create(ctx, &secondary.LeadRecord{
		Type:        secondary.LeadTypeContact,
		ContactName: req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Services:    []string{subject},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save contact lead: %w", err)
	}

	res, err := s.dispatcher.Dispatch(ctx, primary.DispatchRequest{
		Kind:        secondary.LeadTypeContact,
		ContactName: req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     subject,
	})
	if err != nil {
		return nil, err
	}

	return &primary.ContactResponse{LeadID: id, Report: res.Body}, nil
}

// ListLeads returns every captured lead, most recent first.
func (s *LeadServiceImpl) ListLeads(ctx context.Context) ([]*primary.Lead, error) {
	records, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]*primary.Lead, len(records))
	for i, r := range records {
		leads[i] = &primary.Lead{
			ID:           r.ID,
			Type:         r.Type,
			ContactName:  r.ContactName,
			Email:        r.Email,
			Phone:        r.Phone,
			Address:      r.Address,
			PostalCode:   r.PostalCode,
			PropertyType: r.PropertyType,
			Services:     r.Services,
			CreatedAt:    r.CreatedAt,
		}
	}
	return leads, nil
}

// Ensure LeadServiceImpl implements the interface
var _ primary.LeadService = (*LeadServiceImpl)(nil)
