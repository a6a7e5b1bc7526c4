package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAlertOffset_Duration(t *testing.T) {
	t.Parallel()

	d, ok := Alert30Min.Duration()
	assert.True(t, ok)
	assert.Equal(t, 30*time.Minute, d)

	d, ok = AlertAtTime.Duration()
	assert.True(t, ok)
	assert.Zero(t, d)

	_, ok = AlertNone.Duration()
	assert.False(t, ok)

	_, ok = AlertOffset("fortnight").Duration()
	assert.False(t, ok)
}

func TestAlertOffset_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, AlertNone.Valid())
	assert.True(t, Alert1Week.Valid())
	assert.False(t, AlertOffset("fortnight").Valid())
	assert.False(t, AlertOffset("").Valid())
}
