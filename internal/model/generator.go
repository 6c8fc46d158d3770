package model

// GenerateRequest represents a passphrase generation request.
// Pointer fields distinguish a missing value (use the stored or default
// preference) from an explicit zero value such as an empty separator.
type GenerateRequest struct {
	WordCount  *int    `json:"word_count"`
	Separator  *string `json:"separator"`
	Capitalize *bool   `json:"capitalize"`
	AddNumber  *bool   `json:"add_number"`
	AddSymbol  *bool   `json:"add_symbol"`
	Count      int     `json:"count"`
}

// Estimate describes the strength of a generation configuration.
type Estimate struct {
	EntropyBits     float64 `json:"entropy_bits"`
	Strength        string  `json:"strength"`
	CrackTime       string  `json:"crack_time"`
	StrengthPercent float64 `json:"strength_percent"`
	Indicator       string  `json:"indicator"`
	WordListSize    int     `json:"word_list_size"`
}

// GenerateResponse represents a passphrase generation response. All
// passphrases share one configuration and therefore one estimate.
type GenerateResponse struct {
	Passphrases []string `json:"passphrases"`
	Estimate
}

// WordListResponse describes the loaded word list.
type WordListResponse struct {
	Source      string  `json:"source"`
	Size        int     `json:"size"`
	BitsPerWord float64 `json:"bits_per_word"`
}
