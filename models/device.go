package models

import "time"

// Device is a child device paired under a parent account. Active is set on
// pairing and never transitioned by any current endpoint; it is reserved
// for remote deactivation.
type Device struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Name          string     `json:"nome"`
	Platform      string     `json:"sistema"`
	ParentID      string     `json:"parent_id" gorm:"index"`
	PairedAt      time.Time  `json:"pareado_em"`
	LastHeartbeat *time.Time `json:"ultimo_heartbeat"`
	Active        bool       `json:"ativo"`
}
