package dto

import (
	"time"

	"jobpromax.app/agent-api/internal/model"
)

type CreateCustomerRequest struct {
	FullName string  `json:"full_name" binding:"required,min=1,max=255"`
	Email    string  `json:"email" binding:"required,email,max=255"`
	Title    *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Location *string `json:"location,omitempty" binding:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID        int64     `json:"id,string"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Title     *string   `json:"title,omitempty"`
	Location  *string   `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCustomerResponse(c *model.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Title:     c.Title,
		Location:  c.Location,
		CreatedAt: c.CreatedAt,
	}
}

func ToCustomerResponses(customers []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = *ToCustomerResponse(&customers[i])
	}
	return out
}
