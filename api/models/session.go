package models

import "github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"

type StartSessionRequest struct {
	Device storage.DeviceContext `json:"device"`
}

type SelectCandidateRequest struct {
	CandidateID string `json:"candidateId"`
}

type SessionStateResponse struct {
	Code          string            `json:"code"`
	State         string            `json:"state"`
	PositionIndex int               `json:"positionIndex"`
	PositionID    string            `json:"positionId,omitempty"`
	Selections    map[string]string `json:"selections"`
	Locks         map[string]bool   `json:"locks"`
	Submitted     bool              `json:"submitted"`
	LastError     string            `json:"lastError,omitempty"`
}
