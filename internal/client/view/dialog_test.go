package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialogs(t *testing.T) {
	d := NewDialogs("addDoctor", "booking")

	_, ok := d.Active()
	assert.False(t, ok)

	d.Open("addDoctor")
	assert.True(t, d.IsOpen("addDoctor"))
	id, ok := d.Active()
	assert.True(t, ok)
	assert.Equal(t, "addDoctor", id)

	d.Dismiss("addDoctor")
	assert.False(t, d.IsOpen("addDoctor"), "backdrop closes it")

	d.Open("booking")
	d.CloseControl("booking")
	assert.False(t, d.IsOpen("booking"))

	d.Open("unknown")
	assert.False(t, d.IsOpen("unknown"))
	_, ok = d.Active()
	assert.False(t, ok)
}

func TestDialogs_ActiveIsMostRecent(t *testing.T) {
	d := NewDialogs("addDoctor", "booking")

	d.Open("booking")
	d.Open("addDoctor")
	id, _ := d.Active()
	assert.Equal(t, "addDoctor", id)

	d.Open("booking")
	id, _ = d.Active()
	assert.Equal(t, "booking", id, "reopening moves it to the top")

	d.Dismiss("booking")
	id, ok := d.Active()
	assert.True(t, ok)
	assert.Equal(t, "addDoctor", id)
}
