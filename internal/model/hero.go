package model

// Hero is the domain model for one super hero record.
// Name is the lookup key and must be unique within a roster.
type Hero struct {
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	IsAvenger   bool   `json:"is_avenger"`
	Description string `json:"description"`
}
