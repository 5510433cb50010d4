package model

// AnalyzeRequest carries the password to score.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// AnalyzeResponse is the strength report for a password.
// Suggestions is always encoded as an array, empty when every rule passes.
type AnalyzeResponse struct {
	Score       int      `json:"score"`
	Label       string   `json:"label"`
	Suggestions []string `json:"suggestions"`
}
