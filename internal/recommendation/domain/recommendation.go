package domain

import "errors"

type Recommendation struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Recommendation string `json:"recommendation"`
}

// ErrUpstream is returned when the LLM provider call fails or yields an
// empty completion. The request is not retried.
var ErrUpstream = errors.New("upstream provider error")
