package models

import "time"

// MailMessage is a rendered mail handed to the delivery topic.
type MailMessage struct {
	ID        string    `json:"id"`         // Unique message id
	To        string    `json:"to"`         // Recipient address
	Subject   string    `json:"subject"`    // Subject line
	HTML      string    `json:"html"`       // Rendered HTML body
	CreatedAt time.Time `json:"created_at"` // Time the mail was queued
}
