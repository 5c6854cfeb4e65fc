package phone

// State is a mode of the phone.
type State string

const (
	OnHook         State = "on_hook"
	OffHook        State = "off_hook"
	Ringing        State = "ringing"
	Connected      State = "connected"
	OnHold         State = "on_hold"
	PhoneDestroyed State = "phone_destroyed"
)

func (s State) String() string { return string(s) }

// Trigger is something that happens to the phone.
type Trigger string

const (
	CallDialed             Trigger = "call_dialed"
	TakeOffHook            Trigger = "take_off_hook"
	CallConnected          Trigger = "call_connected"
	LeftMessage            Trigger = "left_message"
	PlacedOnHold           Trigger = "placed_on_hold"
	TakenOffHold           Trigger = "taken_off_hold"
	Hangup                 Trigger = "hangup"
	PhoneHurledAgainstWall Trigger = "phone_hurled_against_wall"
	MuteMicrophone         Trigger = "mute_microphone"
	UnmuteMicrophone       Trigger = "unmute_microphone"
	SetVolume              Trigger = "set_volume"
)

func (t Trigger) String() string { return string(t) }

const (
	MinVolume = 0
	MaxVolume = 10
)
