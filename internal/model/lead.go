package model

import "time"

// LeadStatus specifies sales lead pipeline stage
type LeadStatus string

const (
	// LeadStatusNew means lead was just registered
	LeadStatusNew LeadStatus = "New"
	// LeadStatusContacted means first contact took place
	LeadStatusContacted LeadStatus = "Contacted"
	// LeadStatusConverted means lead turned into a deal
	LeadStatusConverted LeadStatus = "Converted"
	// LeadStatusLost means lead was lost
	LeadStatusLost LeadStatus = "Lost"
)

// Lead is sales opportunity entity. It has no owner of its own - effective
// owner is always resolved through the parent customer's OwnerID.
type Lead struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	CustomerID  string     `json:"customerId" bson:"customerId"`
	Title       string     `json:"title" bson:"title"`
	Description *string    `json:"description" bson:"description"`
	Status      LeadStatus `json:"status" bson:"status"`
	Value       *float64   `json:"value" bson:"value"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
}

// Amount is lead monetary value, absent value counts as 0
func (l *Lead) Amount() float64 {
	if l.Value == nil {
		return 0
	}
	return *l.Value
}

// PatchLead carries partial lead update, nil fields stay untouched
type PatchLead struct {
	ID          string      `param:"id"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *LeadStatus `json:"status"`
	Value       *float64    `json:"value"`
}

// MergePatch applies patch on top of lead copy. CustomerID and CreatedAt
// are immutable, patch has no field for them.
func (l Lead) MergePatch(patch *PatchLead) *Lead {
	if patch.Title != nil {
		l.Title = *patch.Title
	}

	if patch.Description != nil {
		s := *patch.Description
		l.Description = &s
	}

	if patch.Status != nil {
		l.Status = *patch.Status
	}

	if patch.Value != nil {
		v := *patch.Value
		l.Value = &v
	}
	return &l
}
