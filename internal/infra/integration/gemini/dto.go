package gemini

// OutreachInput is the lead profile handed to the model. Every field is
// optional except BusinessName; absent fields are simply omitted from the
// serialized profile.
type OutreachInput struct {
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type,omitempty"`
	Location     string `json:"location,omitempty"`
	Website      string `json:"website,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

type OutreachOutput struct {
	Subject    string `json:"subject"`
	EmailBody  string `json:"email_body"`
	LinkedInDM string `json:"linkedin_dm"`
}
