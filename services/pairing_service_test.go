package services

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"PaiDeFerro/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newPairingService() (*PairingService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	return NewPairingService(memory.NewPairingStore(), clock.Now), clock
}

func TestIssueCodeShape(t *testing.T) {
	svc, clock := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{6}$`), code.Code)
	assert.Equal(t, "parent-1", code.ParentID)
	assert.Equal(t, clock.Now().Add(10*time.Minute), code.ExpiresAt)
	assert.False(t, code.Used)
}

func TestRedeemCodeOnce(t *testing.T) {
	svc, clock := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)

	device, err := svc.RedeemCode(code.Code, "Tablet da Ana", "android")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), device.ID)
	assert.Equal(t, "Tablet da Ana", device.Name)
	assert.Equal(t, "android", device.Platform)
	assert.Equal(t, "parent-1", device.ParentID)
	assert.Equal(t, clock.Now(), device.PairedAt)
	assert.True(t, device.Active)
	assert.Nil(t, device.LastHeartbeat)

	// The code is single-use: a second redemption is invalid, not expired.
	_, err = svc.RedeemCode(code.Code, "Outro", "ios")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestRedeemCodeUnknown(t *testing.T) {
	svc, _ := newPairingService()

	_, err := svc.RedeemCode("ABCDEF", "Tablet", "android")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestRedeemCodeExpiryBoundary(t *testing.T) {
	svc, clock := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)

	// Exactly at expiry the code still works: the bound is inclusive.
	clock.Advance(10 * time.Minute)
	_, err = svc.RedeemCode(code.Code, "Tablet", "android")
	assert.NoError(t, err)
}

func TestRedeemCodeExpired(t *testing.T) {
	svc, clock := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)

	clock.Advance(10*time.Minute + time.Second)
	_, err = svc.RedeemCode(code.Code, "Tablet", "android")
	assert.ErrorIs(t, err, ErrExpiredCode)
}

func TestRedeemCodeUsedAndExpiredReportsInvalid(t *testing.T) {
	svc, clock := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)
	_, err = svc.RedeemCode(code.Code, "Tablet", "android")
	require.NoError(t, err)

	// Used wins over expired: the used check runs first.
	clock.Advance(time.Hour)
	_, err = svc.RedeemCode(code.Code, "Outro", "ios")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestRecordHeartbeat(t *testing.T) {
	svc, clock := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)
	device, err := svc.RedeemCode(code.Code, "Tablet", "android")
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	ts, err := svc.RecordHeartbeat(device.ID)
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), ts)

	devices, err := svc.ListDevices("parent-1")
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.NotNil(t, devices[0].LastHeartbeat)
	assert.Equal(t, ts, *devices[0].LastHeartbeat)
	// Heartbeat only touches the timestamp.
	assert.Equal(t, device.Name, devices[0].Name)
	assert.Equal(t, device.PairedAt, devices[0].PairedAt)
	assert.True(t, devices[0].Active)
}

func TestRecordHeartbeatUnknownDevice(t *testing.T) {
	svc, _ := newPairingService()

	_, err := svc.RecordHeartbeat("nope")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestListDevicesScopedAndOrdered(t *testing.T) {
	svc, _ := newPairingService()

	var ids []string
	for _, name := range []string{"Tablet", "Celular"} {
		code, err := svc.IssueCode("parent-1")
		require.NoError(t, err)
		device, err := svc.RedeemCode(code.Code, name, "android")
		require.NoError(t, err)
		ids = append(ids, device.ID)
	}
	code, err := svc.IssueCode("parent-2")
	require.NoError(t, err)
	_, err = svc.RedeemCode(code.Code, "Notebook", "windows")
	require.NoError(t, err)

	devices, err := svc.ListDevices("parent-1")
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, ids[0], devices[0].ID)
	assert.Equal(t, ids[1], devices[1].ID)

	others, err := svc.ListDevices("parent-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)

	none, err := svc.ListDevices("parent-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestConcurrentRedemptionSingleWinner(t *testing.T) {
	svc, _ := newPairingService()

	code, err := svc.IssueCode("parent-1")
	require.NoError(t, err)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.RedeemCode(code.Code, "Tablet", "android")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrInvalidCode)
		}
	}
	assert.Equal(t, 1, wins)

	devices, err := svc.ListDevices("parent-1")
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}
