package sdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestApplicable walks every (role, location, direction) combination against
// the table in spec §4.7.5.
func TestApplicable(t *testing.T) {
	directions := []Direction{DirectionNone, DirectionSend, DirectionRecv, DirectionSendRecv}

	for _, dir := range directions {
		assert.Equal(t, dir.CanSend(), applicable(roleSender, LocationLocal, dir), "sender/local/%v", dir)
		assert.Equal(t, dir.CanReceive(), applicable(roleSender, LocationRemote, dir), "sender/remote/%v", dir)
		assert.Equal(t, dir.CanReceive(), applicable(roleReceiver, LocationLocal, dir), "receiver/local/%v", dir)
		assert.Equal(t, dir.CanSend(), applicable(roleReceiver, LocationRemote, dir), "receiver/remote/%v", dir)
		assert.Equal(t, dir.CanSend() && dir.CanReceive(), applicable(roleTransceiver, LocationLocal, dir), "transceiver/local/%v", dir)
		assert.Equal(t, dir.CanSend() && dir.CanReceive(), applicable(roleTransceiver, LocationRemote, dir), "transceiver/remote/%v", dir)
	}
}

func TestApplicable_OnlySendRecvIsBidirectional(t *testing.T) {
	assert.True(t, applicable(roleTransceiver, LocationLocal, DirectionSendRecv))
	assert.False(t, applicable(roleTransceiver, LocationLocal, DirectionSend))
	assert.False(t, applicable(roleTransceiver, LocationLocal, DirectionRecv))
	assert.False(t, applicable(roleTransceiver, LocationLocal, DirectionNone))
}
