package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndDismiss(t *testing.T) {
	c := NewCenter(time.Minute)

	n := c.Push(Success, "Cash movement recorded.")
	assert.NotEmpty(t, n.ID)

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, Success, list[0].Kind)

	c.Dismiss(n.ID)
	assert.Empty(t, c.List())

	// dismissing twice is a no-op
	c.Dismiss(n.ID)
	assert.Empty(t, c.List())
}

func TestExpiry(t *testing.T) {
	c := NewCenter(20 * time.Millisecond)
	c.Errorf("sync failed")
	require.Len(t, c.List(), 1)

	assert.Eventually(t, func() bool {
		return len(c.List()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestListIsACopy(t *testing.T) {
	c := NewCenter(time.Minute)
	c.Infof("first")

	list := c.List()
	list[0].Message = "mutated"
	assert.Equal(t, "first", c.List()[0].Message)
}
