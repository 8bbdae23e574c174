// internal/models/generation.go
package models

// GenerationRequest is the inbound payload from the upstream caller.
// CharacterDescription is only present on the caller's first contact; it is
// written to the registry before the stored description is read back.
type GenerationRequest struct {
	AccessID             string `json:"access_id"`
	OriginalContent      string `json:"original_content"`
	IsSlang              bool   `json:"is_slang"`
	CharacterDescription string `json:"character_description,omitempty"`
}

// GenerationResponse is always returned with HTTP 200; failure travels
// in-band. ImageURL is set if and only if generation succeeded, and an empty
// ImageURL together with a non-empty ErrorMessage is the only failure signal
// the caller needs to check.
type GenerationResponse struct {
	AccessID        string `json:"access_id"`
	IsSlang         bool   `json:"is_slang"`
	OriginalContent string `json:"original_content"`
	FilteredContent string `json:"filtered_content"`
	LocalizedScene  string `json:"localized_scene"`
	RefinedContent  string `json:"refined_content"`
	ImageURL        string `json:"image_url,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}
