// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrEmailTaken is returned by registration when the email already has an account.
var ErrEmailTaken = errors.New("email already exists")

// ErrInvalidCredentials is returned by login for a bad email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id int) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

type ErrPitchNotFound struct {
	PitchID int
}

func (e *ErrPitchNotFound) Error() string {
	return fmt.Sprintf("pitch with ID %d not found", e.PitchID)
}

func NewPitchNotFound(id int) error {
	return &ErrPitchNotFound{PitchID: id}
}

type ErrLeadNotFound struct {
	LeadID int
}

func (e *ErrLeadNotFound) Error() string {
	return fmt.Sprintf("lead with ID %d not found", e.LeadID)
}

func NewLeadNotFound(id int) error {
	return &ErrLeadNotFound{LeadID: id}
}

// UpstreamError wraps a failure of the hosted completion API. Retryable marks
// transport errors and 5xx responses; format errors (bad JSON from the model)
// are not retryable.
type UpstreamError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(op string, err error, retryable bool) error {
	return &UpstreamError{Op: op, Err: err, Retryable: retryable}
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
