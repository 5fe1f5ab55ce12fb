package tracking

import "fixflow/internal/application/tracking/usecases"

type TrackRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required,max=32"`
	Email          string `json:"email" binding:"required,email"`
}

func (r *TrackRequest) ToQuery() usecases.PublicLookupQuery {
	return usecases.PublicLookupQuery{
		TrackingNumber: r.TrackingNumber,
		Email:          r.Email,
	}
}
