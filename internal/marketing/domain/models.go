package domain

import "time"

type Testimonial struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Position int    `json:"-"`
}

// Offer is a static marketing promotion; no persistence needed.
type Offer struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
