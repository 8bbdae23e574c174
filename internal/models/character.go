// internal/models/character.go
package models

// CharacterProfile maps a caller-assigned access ID to the free-text
// description of that caller's recurring webtoon character.
type CharacterProfile struct {
	AccessID    string `json:"access_id"`
	Description string `json:"character_description"`
}

// CharacterInfo is the admin-surface view of a single profile.
type CharacterInfo struct {
	AccessID    string `json:"access_id"`
	Description string `json:"character_description,omitempty"`
	Exists      bool   `json:"exists"`
}

// CharacterStats summarizes the registry contents.
type CharacterStats struct {
	TotalCharacters int      `json:"total_characters"`
	AccessIDs       []string `json:"access_ids"`
}
