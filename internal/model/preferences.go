package model

import "time"

// Preferences are the persisted generation settings of the local operator.
type Preferences struct {
	WordCount  int       `json:"word_count"`
	Separator  string    `json:"separator"`
	Capitalize bool      `json:"capitalize"`
	AddNumber  bool      `json:"add_number"`
	AddSymbol  bool      `json:"add_symbol"`
	DarkTheme  bool      `json:"dark_theme"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PreferencesRequest is a partial update; nil fields keep their stored value.
type PreferencesRequest struct {
	WordCount  *int    `json:"word_count"`
	Separator  *string `json:"separator"`
	Capitalize *bool   `json:"capitalize"`
	AddNumber  *bool   `json:"add_number"`
	AddSymbol  *bool   `json:"add_symbol"`
	DarkTheme  *bool   `json:"dark_theme"`
}

// TokenRequest exchanges the operator key for a bearer token.
type TokenRequest struct {
	Key string `json:"key"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
