package editor

import "github.com/edudham/edudham-api/internal/models"

// ContactPatch carries the fields of one contact edit. Nil fields keep
// their current value.
type ContactPatch struct {
	Email   *string
	Phone   *string
	Website *string
	Address *string
}

// ContactEditor manages a university's contact block.
type ContactEditor struct {
	details  models.ContactDetails
	onChange func(models.ContactDetails)
}

// NewContactEditor builds an editor seeded with the current contact
// details. onChange may be nil.
func NewContactEditor(details models.ContactDetails, onChange func(models.ContactDetails)) *ContactEditor {
	return &ContactEditor{details: details, onChange: onChange}
}

// Details returns the current contact block.
func (e *ContactEditor) Details() models.ContactDetails {
	return e.details
}

// Update merges the patch into the contact block.
func (e *ContactEditor) Update(patch ContactPatch) {
	next := e.details
	if patch.Email != nil {
		next.Email = *patch.Email
	}
	if patch.Phone != nil {
		next.Phone = *patch.Phone
	}
	if patch.Website != nil {
		next.Website = *patch.Website
	}
	if patch.Address != nil {
		next.Address = *patch.Address
	}
	e.details = next
	if e.onChange != nil {
		e.onChange(next)
	}
}
