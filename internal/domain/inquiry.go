package domain

import "time"

const (
	InquiryStatusNew     = "new"
	InquiryStatusRead    = "read"
	InquiryStatusReplied = "replied"
	InquiryStatusClosed  = "closed"
)

type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Country     string    `json:"country"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	ProductSlug string    `json:"productSlug,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
