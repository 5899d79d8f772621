package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ScreenRequest struct {
	JobProfileID  string   `json:"job_profile_id" validate:"required,uuid"`
	DocumentIDs   []string `json:"document_ids" validate:"required"`
	Cutoff        *float64 `json:"cutoff,omitempty"`
	MinExperience *float64 `json:"min_experience,omitempty"`
}

type ScreenResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ScreeningResultResponse struct {
	ID           string        `json:"id"`
	JobProfileID string        `json:"job_profile_id"`
	Status       string        `json:"status"`
	Mode         string        `json:"mode,omitempty"`
	Records      []ScoreRecord `json:"records,omitempty"`
	Skipped      []SkippedItem `json:"skipped,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`
}

// SkippedItem reports a document excluded from the batch and why.
type SkippedItem struct {
	DocumentID string `json:"document_id"`
	FileName   string `json:"file_name"`
	Reason     string `json:"reason"`
}

type SimilarCandidate struct {
	DocumentID    string  `json:"document_id"`
	CandidateName string  `json:"candidate_name"`
	FileName      string  `json:"file_name"`
	Similarity    float32 `json:"similarity"`
}
