package engine

// Sound identifies an audio cue the presentation layer may play.
type Sound int

const (
	SoundPickup Sound = iota
	SoundDrop
	SoundDeal
	SoundComplete
	SoundWin
	SoundInvalid
	SoundUndo
)

// Hooks is the set of presentation callbacks the engine fires as
// side effects. Calls are fire-and-forget: the engine never waits on
// them and never reads anything back.
type Hooks interface {
	// StateChanged fires after any successful mutation (redraw trigger).
	StateChanged()
	// Message delivers user feedback text; isErr marks rule rejections.
	Message(text string, isErr bool)
	// Win fires once when the eighth run completes.
	Win()
	// PlaySound requests an audio cue.
	PlaySound(s Sound)
}

// NopHooks is the default Hooks implementation; it ignores everything.
type NopHooks struct{}

func (NopHooks) StateChanged()        {}
func (NopHooks) Message(string, bool) {}
func (NopHooks) Win()                 {}
func (NopHooks) PlaySound(Sound)      {}

var _ Hooks = NopHooks{}
