package phone_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statekit/internal/phone"
	"github.com/dmitrymomot/statekit/pkg/logger"
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

// builders returns both ways of constructing a phone so every scenario
// checks that they behave identically.
func builders() map[string]func(t *testing.T) *phone.Phone {
	return map[string]func(t *testing.T) *phone.Phone{
		"code": func(*testing.T) *phone.Phone { return phone.New(nil) },
		"definition": func(t *testing.T) *phone.Phone {
			t.Helper()
			p, err := phone.NewFromDefinition(nil)
			require.NoError(t, err)
			return p
		},
	}
}

func TestPhone_CallFlow(t *testing.T) {
	t.Parallel()

	for name, build := range builders() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := build(t)
			assert.Equal(t, phone.OnHook, p.State())

			err := p.Connect()
			require.Error(t, err, "cannot connect while on hook")
			assert.True(t, statemachine.IsNotPermittedError(err))
			assert.Equal(t, phone.OnHook, p.State())

			require.NoError(t, p.TakeOffHook())
			require.NoError(t, p.Dial())
			require.NoError(t, p.Connect())
			assert.Equal(t, phone.Connected, p.State())

			require.NoError(t, p.Mute())
			assert.True(t, p.Muted())
			assert.Equal(t, phone.Connected, p.State())

			require.NoError(t, p.Hangup())
			assert.Equal(t, phone.OnHook, p.State())
			assert.False(t, p.Muted())

			assert.Equal(t, []phone.Callback{
				{Name: "phone ringing", Trigger: phone.CallDialed},
				{Name: "phone connected", Trigger: phone.CallConnected},
				{Name: "phone disconnected", Trigger: phone.Hangup},
				{Name: "on hook", Trigger: phone.Hangup},
			}, p.History())
		})
	}
}

func TestPhone_Hold(t *testing.T) {
	t.Parallel()

	for name, build := range builders() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := build(t)
			require.NoError(t, p.TakeOffHook())
			require.NoError(t, p.Dial())
			require.NoError(t, p.Connect())
			require.NoError(t, p.Hold())
			assert.Equal(t, phone.OnHold, p.State())

			assert.True(t, statemachine.IsNotPermittedError(p.Mute()), "mute is only legal while connected")

			require.NoError(t, p.Resume())
			assert.Equal(t, phone.Connected, p.State())

			require.NoError(t, p.LeaveMessage())
			assert.Equal(t, phone.OnHook, p.State())

			names := make([]string, 0)
			for _, c := range p.History() {
				names = append(names, c.Name)
			}
			assert.Equal(t, []string{
				"phone ringing",
				"phone connected",
				"phone disconnected",
				"on hold",
				"phone connected",
				"phone disconnected",
				"on hook",
			}, names)
		})
	}
}

func TestPhone_SelfTransitionsRunNoCallbacks(t *testing.T) {
	t.Parallel()

	for name, build := range builders() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := build(t)
			require.NoError(t, p.TakeOffHook())
			require.NoError(t, p.Dial())
			require.NoError(t, p.Connect())
			before := len(p.History())

			require.NoError(t, p.Mute())
			require.NoError(t, p.Unmute())
			require.NoError(t, p.SetVolume(7))

			assert.Len(t, p.History(), before)
			assert.False(t, p.Muted())
			assert.Equal(t, 7, p.Volume())
		})
	}
}

func TestPhone_VolumeGuard(t *testing.T) {
	t.Parallel()

	for name, build := range builders() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := build(t)
			require.NoError(t, p.TakeOffHook())
			require.NoError(t, p.Dial())
			require.NoError(t, p.Connect())

			err := p.SetVolume(phone.MaxVolume + 1)
			assert.True(t, statemachine.IsNotPermittedError(err))
			assert.Equal(t, phone.MaxVolume/2, p.Volume())

			require.NoError(t, p.SetVolume(phone.MinVolume))
			assert.Equal(t, phone.MinVolume, p.Volume())
		})
	}
}

func TestPhone_Destroyed(t *testing.T) {
	t.Parallel()

	for name, build := range builders() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := build(t)
			require.NoError(t, p.Smash())
			assert.Equal(t, phone.PhoneDestroyed, p.State())
			assert.Empty(t, p.PermittedTriggers())

			err := p.TakeOffHook()
			assert.Equal(t, statemachine.KindNotPermitted, statemachine.KindOf(err))
			assert.Contains(t, err.Error(), "phone take_off_hook")
		})
	}
}

func TestPhone_PermittedTriggers(t *testing.T) {
	t.Parallel()

	p := phone.New(nil)
	assert.Equal(t, []phone.Trigger{phone.TakeOffHook, phone.PhoneHurledAgainstWall}, p.PermittedTriggers())
	assert.True(t, p.CanFire(phone.TakeOffHook))
	assert.False(t, p.CanFire(phone.Hangup))
}

func TestPhone_LogsCallbacks(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := phone.New(logger.New(logger.WithOutput(buf), logger.WithTextFormatter()))
	require.NoError(t, p.TakeOffHook())
	require.NoError(t, p.Dial())

	out := buf.String()
	assert.Contains(t, out, "callback: phone ringing")
	assert.Contains(t, out, "trigger=call_dialed")
	assert.Contains(t, out, "component=phone")
}
