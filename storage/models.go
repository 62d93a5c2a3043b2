package storage

import "time"

type Position struct {
	ID          string `dynamodbav:"PK" json:"id"`
	Title       string `dynamodbav:"Title" json:"title"`
	Description string `dynamodbav:"Description" json:"description"`
	Order       int    `dynamodbav:"DisplayOrder" json:"order"`
}

type Candidate struct {
	ID         string `dynamodbav:"PK" json:"id"`
	PositionID string `dynamodbav:"PositionID" json:"positionId"`
	Name       string `dynamodbav:"Name" json:"name"`
	Email      string `dynamodbav:"Email" json:"email"`
	Photo      string `dynamodbav:"Photo" json:"photo,omitempty"`
	Class      string `dynamodbav:"Class" json:"class"`
	Stream     string `dynamodbav:"Stream" json:"stream"`
}

// DeviceContext is the best-effort sensor data captured by the voting page.
// Every field may be absent; the backend stores it untouched for fraud
// review and only reads Location when flagging votes.
type DeviceContext struct {
	Location    string `dynamodbav:"Location" json:"location,omitempty"`
	Fingerprint string `dynamodbav:"Fingerprint" json:"fingerprint,omitempty"`
	UserAgent   string `dynamodbav:"UserAgent" json:"userAgent,omitempty"`
	Battery     *int   `dynamodbav:"Battery" json:"battery,omitempty"`
	PageLoadMS  *int64 `dynamodbav:"PageLoadMS" json:"pageLoadMs,omitempty"`
}

type Vote struct {
	Code        string        `dynamodbav:"PK" json:"code"` // Voting code
	SortKey     string        `dynamodbav:"SK" json:"-"`    // pos#<positionID>
	PositionID  string        `dynamodbav:"PositionID" json:"positionId"`
	CandidateID string        `dynamodbav:"CandidateID" json:"candidateId"`
	Valid       bool          `dynamodbav:"Valid" json:"valid"`
	Device      DeviceContext `dynamodbav:"Device" json:"device"`
	Timestamp   time.Time     `dynamodbav:"Timestamp" json:"timestamp"`
}

type VotingCode struct {
	Code      string    `dynamodbav:"PK"`
	Class     string    `dynamodbav:"Class"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
	Used      bool      `dynamodbav:"Used"`
}

// SessionRecord is one voter's persisted ballot snapshot plus the completion
// flag read by the page-leave guard.
type SessionRecord struct {
	Code      string    `dynamodbav:"PK"`
	Snapshot  []byte    `dynamodbav:"Snapshot"`
	Submitted bool      `dynamodbav:"Submitted"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}
