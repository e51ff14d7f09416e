package models

import "time"

// BookingLink is a publishable, policy-configured instance of a weekly
// template. It references the template by id only; the reference may dangle
// if the template is deleted, and callers must tolerate that.
type BookingLink struct {
	ID                    string    `bson:"id" json:"id"`
	TemplateID            string    `bson:"templateId" json:"templateId"`
	Title                 string    `bson:"title" json:"title"`
	Slug                  string    `bson:"slug" json:"slug"`
	SlotDurationMinutes   int       `bson:"slotDurationMinutes" json:"slotDurationMinutes"` // fixed at 30 in this system
	IsActive              bool      `bson:"isActive" json:"isActive"`
	RequireAdvanceBooking bool      `bson:"requireAdvanceBooking" json:"requireAdvanceBooking"`
	AdvanceHours          float64   `bson:"advanceHours" json:"advanceHours"` // >= 0, fractional allowed
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}
