package domain

import "time"

// Food is an item shared by the user whose email it carries.
type Food Document

// Email returns the owner's identity.
func (f Food) Email() string {
	return Document(f).String(FieldEmail)
}

// ID returns the store-assigned identifier.
func (f Food) ID() string {
	return Document(f).ID()
}

// Date returns the normalized date, if the food has one.
func (f Food) Date() (time.Time, bool) {
	t, ok := f[FieldDate].(time.Time)
	return t, ok
}

// Quantity returns foodQuantity as a number, if present and numeric.
func (f Food) Quantity() (float64, bool) {
	return Number(f[FieldFoodQuantity])
}

// Normalize returns a copy ready to be written: any client supplied _id is
// dropped and a present date is converted to a time.Time.
func (f Food) Normalize() (Food, error) {
	out := Food(Document(f).Without(FieldID))

	raw, ok := out[FieldDate]
	if !ok {
		return out, nil
	}

	date, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	out[FieldDate] = date
	return out, nil
}

// RequestedFood is a claim a user makes on a food item.
type RequestedFood Document

// RequesterEmail returns the identity of the user making the claim.
func (r RequestedFood) RequesterEmail() string {
	return Document(r).String(FieldRequestedUserEmail)
}

// ID returns the store-assigned identifier.
func (r RequestedFood) ID() string {
	return Document(r).ID()
}

// Normalize returns a copy with any client supplied _id dropped.
func (r RequestedFood) Normalize() RequestedFood {
	return RequestedFood(Document(r).Without(FieldID))
}
