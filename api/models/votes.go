package models

import "time"

type GetVoteEntry struct {
	PositionID    string    `json:"positionId"`
	PositionTitle string    `json:"position"`
	CandidateID   string    `json:"candidateId"`
	CandidateName string    `json:"candidate"`
	Valid         bool      `json:"valid"`
	Timestamp     time.Time `json:"timestamp"`
}

type GetVoteResponse struct {
	Code  string         `json:"code"`
	Votes []GetVoteEntry `json:"votes"`
}

type CandidateTally struct {
	CandidateID   string `json:"candidateId"`
	CandidateName string `json:"candidateName"`
	Votes         int    `json:"votes"`
}

type PositionResult struct {
	PositionID    string           `json:"positionId"`
	PositionTitle string           `json:"positionTitle"`
	Candidates    []CandidateTally `json:"candidates"`
}

type VoteResultsResponse struct {
	Results []PositionResult `json:"results"`
}

type CleanupResponse struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}
