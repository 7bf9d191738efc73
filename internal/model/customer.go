package model

// Customer is business contact entity, the unit of ownership.
// OwnerID is assigned once at creation and never changes afterwards.
type Customer struct {
	ID      string  `json:"id" bson:"_id,omitempty"`
	Name    string  `json:"name" bson:"name"`
	Email   string  `json:"email" bson:"email"`
	Phone   *string `json:"phone" bson:"phone"`
	Company *string `json:"company" bson:"company"`
	OwnerID string  `json:"ownerId" bson:"ownerId"`
}

// PatchCustomer carries partial customer update, nil fields stay untouched
type PatchCustomer struct {
	ID      string  `param:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// MergePatch applies patch on top of customer copy. OwnerID is immutable,
// so patch has no field to alter it.
func (c Customer) MergePatch(patch *PatchCustomer) *Customer {
	if patch.Name != nil {
		c.Name = *patch.Name
	}

	if patch.Email != nil {
		c.Email = *patch.Email
	}

	if patch.Phone != nil {
		s := *patch.Phone
		c.Phone = &s
	}

	if patch.Company != nil {
		s := *patch.Company
		c.Company = &s
	}
	return &c
}
