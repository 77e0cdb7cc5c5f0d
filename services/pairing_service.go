package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"
)

const codeValidity = 10 * time.Minute

// PairingService drives the device-pairing lifecycle: short-lived codes,
// redemption into device records, heartbeats and per-parent listings. The
// clock is injected so expiry behavior is deterministic under test.
type PairingService struct {
	Repo repositories.PairingRepository
	Now  func() time.Time
}

func NewPairingService(repo repositories.PairingRepository, now func() time.Time) *PairingService {
	if now == nil {
		now = time.Now
	}
	return &PairingService{Repo: repo, Now: now}
}

// IssueCode creates a fresh pairing code for the parent, valid for ten
// minutes. Codes are 6 uppercase hex characters from a crypto-strength
// source; collisions with other live codes are not checked.
func (s *PairingService) IssueCode(parentID string) (models.PairCode, error) {
	code, err := randomHex(3)
	if err != nil {
		return models.PairCode{}, err
	}
	pc := models.PairCode{
		Code:      strings.ToUpper(code),
		ParentID:  parentID,
		ExpiresAt: s.Now().UTC().Add(codeValidity),
	}
	if err := s.Repo.CreateCode(&pc); err != nil {
		return models.PairCode{}, err
	}
	return pc, nil
}

// RedeemCode consumes an unused code and creates the paired device. The
// existence/used check runs before the expiry check, so a code that is both
// used and expired reports ErrInvalidCode, not ErrExpiredCode. Marking the
// code used and creating the device happen atomically in the store; a
// concurrent redemption of the same code leaves exactly one winner.
func (s *PairingService) RedeemCode(code, deviceName, platform string) (models.Device, error) {
	pc, err := s.Repo.FindUnusedCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Device{}, ErrInvalidCode
		}
		return models.Device{}, err
	}
	if s.Now().After(pc.ExpiresAt) {
		return models.Device{}, ErrExpiredCode
	}

	id, err := randomHex(8)
	if err != nil {
		return models.Device{}, err
	}
	device := models.Device{
		ID:       id,
		Name:     deviceName,
		Platform: platform,
		ParentID: pc.ParentID,
		PairedAt: s.Now().UTC(),
		Active:   true,
	}
	if err := s.Repo.ConsumeCode(pc.ID, &device); err != nil {
		if errors.Is(err, repositories.ErrAlreadyUsed) || errors.Is(err, repositories.ErrNotFound) {
			return models.Device{}, ErrInvalidCode
		}
		return models.Device{}, err
	}
	return device, nil
}

// RecordHeartbeat stamps the device's liveness timestamp and returns it.
// No other device field is touched.
func (s *PairingService) RecordHeartbeat(deviceID string) (time.Time, error) {
	device, err := s.Repo.FindDevice(deviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return time.Time{}, ErrDeviceNotFound
		}
		return time.Time{}, err
	}
	ts := s.Now().UTC()
	device.LastHeartbeat = &ts
	if err := s.Repo.SaveDevice(&device); err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

// ListDevices returns the parent's devices in pairing order.
func (s *PairingService) ListDevices(parentID string) ([]models.Device, error) {
	return s.Repo.DevicesByParent(parentID)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
