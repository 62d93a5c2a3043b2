package models

import (
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateCodeRequest struct {
	Count int    `json:"count"`
	Class string `json:"class"`
}

type CodeResponse struct {
	Code      string    `json:"code"`
	Class     string    `json:"class"`
	CreatedAt time.Time `json:"created_at"`
	Used      bool      `json:"used"`
}

type CodeValidationResponse struct {
	Valid     bool      `json:"valid"`
	Class     string    `json:"class"`
	Used      bool      `json:"used,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Code      string    `json:"code,omitempty"`
}

func TransformVotingCodeToValidationResponse(vc *storage.VotingCode) CodeValidationResponse {
	return CodeValidationResponse{
		Valid:     true,
		Class:     vc.Class,
		Used:      vc.Used,
		CreatedAt: vc.CreatedAt,
		Code:      vc.Code,
	}
}

func TransformVotingCodeFromStorage(vc *storage.VotingCode) CodeResponse {
	return CodeResponse{
		Code:      vc.Code,
		Class:     vc.Class,
		CreatedAt: vc.CreatedAt,
		Used:      vc.Used,
	}
}
