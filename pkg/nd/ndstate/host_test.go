package ndstate

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ndkit/pkg/util/xmac"
)

func TestNewAndTouch(t *testing.T) {
	mac := xmac.MustParse("02:42:ac:11:00:02")
	ip := netip.MustParseAddr("fe80::42")
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rec := New(mac, ip, t0)
	assert.Equal(t, t0, rec.FirstSeen)
	assert.Equal(t, t0, rec.LastSeen)
	assert.False(t, rec.IsRouter())

	t1 := t0.Add(30 * time.Second)
	rec.Touch(t1)
	assert.Equal(t, t0, rec.FirstSeen, "Touch must not move FirstSeen")
	assert.Equal(t, t1, rec.LastSeen)
}

func TestIsRouter(t *testing.T) {
	rec := HostRecord{RouterLifetime: 1800 * time.Second}
	assert.True(t, rec.IsRouter())
}

func TestNewSet(t *testing.T) {
	set, err := NewSet(0)
	require.NoError(t, err)
	defer set.Close()

	mac := xmac.MustParse("02:42:ac:11:00:02")
	rec := New(mac, netip.MustParseAddr("fe80::42"), time.Now())

	// AddHost 经 Key 从记录内嵌 MAC 派生键
	require.NoError(t, set.AddHost(&rec))
	got, ok := set.Get(mac)
	require.True(t, ok)
	assert.Equal(t, mac, got.MAC)
	assert.Equal(t, "fe80::42", got.IP.String())
}
