package types

// Profile is a user's self-description as collected by the dialogue layer.
// Each facet holds lowercase free-form tokens.
type Profile struct {
	Interests   []string `json:"interests" mapstructure:"interests" validate:"max=50,dive,required,max=100"`
	Skills      []string `json:"skills" mapstructure:"skills" validate:"max=50,dive,required,max=100"`
	Strengths   []string `json:"strengths" mapstructure:"strengths" validate:"max=50,dive,required,max=100"`
	Preferences []string `json:"preferences" mapstructure:"preferences" validate:"max=50,dive,required,max=100"`
}

// IsEmpty reports whether all four facets are empty.
func (p *Profile) IsEmpty() bool {
	return len(p.Interests) == 0 && len(p.Skills) == 0 && len(p.Strengths) == 0 && len(p.Preferences) == 0
}

// IsInsufficient reports whether the profile lacks interests, skills and strengths.
// Preferences alone cannot carry a recommendation past the threshold, so callers
// should ask the user for more information before recommending.
func (p *Profile) IsInsufficient() bool {
	return len(p.Interests) == 0 && len(p.Skills) == 0 && len(p.Strengths) == 0
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	return validate.Struct(p)
}
