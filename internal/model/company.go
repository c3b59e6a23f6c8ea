package model

// CompanyRecord is the unit of pipeline output: one validated, scraped,
// summarized company. Records are immutable once emitted.
type CompanyRecord struct {
	Name         string   `json:"name"`
	Website      string   `json:"website,omitempty"`
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	PrimaryEmail string   `json:"primary_email,omitempty"`
	PrimaryPhone string   `json:"primary_phone,omitempty"`
	Location     string   `json:"location,omitempty"`
	AllEmails    []string `json:"all_emails,omitempty"`
	AllPhones    []string `json:"all_phones,omitempty"`
	Summary      string   `json:"summary"`
}

// SearchHit is a single raw result from the search provider. Hits are
// consumed by validation immediately and never retained.
type SearchHit struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet,omitempty"`
	Description string `json:"description,omitempty"`
}
