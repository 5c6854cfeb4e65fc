package phone

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/statekit/pkg/definition"
	"github.com/dmitrymomot/statekit/pkg/logger"
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

//go:embed phone.yaml
var definitionYAML []byte

// Callback records one entry or exit action invocation.
type Callback struct {
	Name    string
	Trigger Trigger
}

// Phone is a desk phone modelled as a state machine.
type Phone struct {
	fsm *statemachine.Machine[State, Trigger]
	log *slog.Logger

	history       []Callback
	muted         bool
	volume        int
	pendingVolume int
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return logger.Discard()
	}
	return log
}

func newPhone(log *slog.Logger) *Phone {
	return &Phone{
		log:    log.With(logger.Component("phone")),
		volume: MaxVolume / 2,
	}
}

// New builds the phone state machine in code.
func New(log *slog.Logger) *Phone {
	log = orDiscard(log)
	p := newPhone(log)
	p.fsm = statemachine.New[State, Trigger](OnHook, statemachine.WithLogger(log))

	p.fsm.Configure(OnHook).
		OnEntry(p.onHook).
		Permit(TakeOffHook, OffHook).
		Permit(PhoneHurledAgainstWall, PhoneDestroyed)

	p.fsm.Configure(OffHook).
		Permit(CallDialed, Ringing).
		Permit(Hangup, OnHook).
		Permit(PhoneHurledAgainstWall, PhoneDestroyed)

	p.fsm.Configure(Ringing).
		OnEntry(p.ringing).
		Permit(CallConnected, Connected).
		Permit(Hangup, OnHook).
		Permit(PhoneHurledAgainstWall, PhoneDestroyed)

	p.fsm.Configure(Connected).
		OnEntry(p.connected).
		OnExit(p.disconnected).
		Permit(LeftMessage, OnHook).
		Permit(PlacedOnHold, OnHold).
		Permit(Hangup, OnHook).
		Permit(MuteMicrophone, Connected).
		Permit(UnmuteMicrophone, Connected).
		PermitIf(SetVolume, Connected, p.volumeInRange).
		Permit(PhoneHurledAgainstWall, PhoneDestroyed)

	p.fsm.Configure(OnHold).
		OnEntry(p.onHold).
		Permit(TakenOffHold, Connected).
		Permit(Hangup, OnHook).
		Permit(PhoneHurledAgainstWall, PhoneDestroyed)

	p.fsm.Configure(PhoneDestroyed).
		OnEntry(p.destroyed)

	return p
}

// NewFromDefinition builds the same phone from the embedded YAML definition.
func NewFromDefinition(log *slog.Logger) (*Phone, error) {
	def, err := definition.Parse(definitionYAML)
	if err != nil {
		return nil, fmt.Errorf("phone definition: %w", err)
	}

	log = orDiscard(log)
	p := newPhone(log)
	reg := definition.NewRegistry[Trigger]().
		RegisterAction("on_hook", p.onHook).
		RegisterAction("ringing", p.ringing).
		RegisterAction("connected", p.connected).
		RegisterAction("disconnected", p.disconnected).
		RegisterAction("on_hold", p.onHold).
		RegisterAction("destroyed", p.destroyed).
		RegisterGuard("volume_in_range", p.volumeInRange)

	p.fsm, err = definition.Build[State, Trigger](def, reg, statemachine.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("phone definition: %w", err)
	}
	return p, nil
}

// State returns the current phone state.
func (p *Phone) State() State {
	return p.fsm.Current()
}

// CanFire reports whether trigger is currently allowed.
func (p *Phone) CanFire(trigger Trigger) bool {
	return p.fsm.CanFire(trigger)
}

// PermittedTriggers lists the triggers allowed in the current state.
func (p *Phone) PermittedTriggers() []Trigger {
	return p.fsm.PermittedTriggers()
}

// History returns the entry and exit callbacks run so far, oldest first.
func (p *Phone) History() []Callback {
	out := make([]Callback, len(p.history))
	copy(out, p.history)
	return out
}

func (p *Phone) Muted() bool { return p.muted }

func (p *Phone) Volume() int { return p.volume }

func (p *Phone) TakeOffHook() error { return p.fire(TakeOffHook) }

func (p *Phone) Dial() error { return p.fire(CallDialed) }

func (p *Phone) Connect() error { return p.fire(CallConnected) }

func (p *Phone) LeaveMessage() error { return p.fire(LeftMessage) }

func (p *Phone) Hold() error { return p.fire(PlacedOnHold) }

func (p *Phone) Resume() error { return p.fire(TakenOffHold) }

func (p *Phone) Hangup() error { return p.fire(Hangup) }

func (p *Phone) Smash() error { return p.fire(PhoneHurledAgainstWall) }

func (p *Phone) Mute() error {
	if err := p.fire(MuteMicrophone); err != nil {
		return err
	}
	p.muted = true
	return nil
}

func (p *Phone) Unmute() error {
	if err := p.fire(UnmuteMicrophone); err != nil {
		return err
	}
	p.muted = false
	return nil
}

// SetVolume changes the volume during a call. Levels outside
// [MinVolume, MaxVolume] are rejected by the volume guard.
func (p *Phone) SetVolume(level int) error {
	p.pendingVolume = level
	if err := p.fire(SetVolume); err != nil {
		return err
	}
	p.volume = level
	return nil
}

func (p *Phone) fire(trigger Trigger) error {
	if err := p.fsm.Fire(trigger); err != nil {
		return fmt.Errorf("phone %s: %w", trigger, err)
	}
	return nil
}

func (p *Phone) volumeInRange(Trigger) bool {
	return p.pendingVolume >= MinVolume && p.pendingVolume <= MaxVolume
}

func (p *Phone) record(name string, trigger Trigger) {
	p.history = append(p.history, Callback{Name: name, Trigger: trigger})
	p.log.Info("callback: "+name, logger.Trigger(trigger))
}

func (p *Phone) onHook(t Trigger) {
	p.muted = false
	p.record("on hook", t)
}

func (p *Phone) ringing(t Trigger) { p.record("phone ringing", t) }

func (p *Phone) connected(t Trigger) { p.record("phone connected", t) }

func (p *Phone) disconnected(t Trigger) { p.record("phone disconnected", t) }

func (p *Phone) onHold(t Trigger) { p.record("on hold", t) }

func (p *Phone) destroyed(t Trigger) { p.record("phone destroyed", t) }
