package models

import "time"

// PairCode is a single-use device pairing code. Redeemed codes keep their
// row with Used=true so the pairing history stays auditable.
type PairCode struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string    `json:"codigo" gorm:"index"`
	ParentID  string    `json:"parent_id"`
	ExpiresAt time.Time `json:"expira_em"`
	Used      bool      `json:"usado"`
}
