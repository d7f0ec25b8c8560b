package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RecommendRequest is the request body for a single recommendation call.
type RecommendRequest struct {
	Profile Profile `json:"profile"`
	TopN    int     `json:"top_n,omitempty" validate:"omitempty,min=1,max=50"`
}

// RecommendResponse is the response body for a single recommendation call.
type RecommendResponse struct {
	Recommendations     []Recommendation `json:"recommendations"`
	InsufficientProfile bool             `json:"insufficient_profile"`
}

// BatchRecommendRequest carries several independent profiles.
type BatchRecommendRequest struct {
	Profiles []Profile `json:"profiles" validate:"required,min=1,max=100,dive"`
	TopN     int       `json:"top_n,omitempty" validate:"omitempty,min=1,max=50"`
}

// BatchRecommendResponse holds one result list per input profile, in input order.
type BatchRecommendResponse struct {
	Results [][]Recommendation `json:"results"`
}

// MergeProfilesRequest merges newly extracted facets into an existing profile.
type MergeProfilesRequest struct {
	Current  Profile `json:"current"`
	Incoming Profile `json:"incoming"`
}

// SummaryRequest asks for an exportable summary of a profile and its recommendations.
type SummaryRequest struct {
	Profile   Profile  `json:"profile"`
	CareerIDs []string `json:"career_ids" validate:"required,min=1,max=20,dive,required"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BatchRecommendRequest using the validator.
func (r *BatchRecommendRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MergeProfilesRequest using the validator.
func (r *MergeProfilesRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SummaryRequest using the validator.
func (r *SummaryRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the Career using the validator.
func (c *Career) Validate() error {
	return validate.Struct(c)
}
