package models

import "time"

type Vote struct {
	ID           int       `json:"id" pg:",pk"`
	SubmissionID int       `json:"submission_id" pg:",notnull"`
	UserID       int       `json:"user_id" pg:",notnull"`
	Count        int       `json:"count" pg:",notnull"`
	Comment      string    `json:"comment"`
	IsFinalized  bool      `json:"is_finalized" pg:",notnull,use_zero,default:false"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}
