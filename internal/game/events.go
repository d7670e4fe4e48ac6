package game

type EventType int

const (
	EventShot EventType = iota
	EventEnemyKilled
	EventPerkDropped
	EventPerkCollected
	EventPlayerHit
	EventGrenadeThrown
	EventGameOver
)

var eventNames = [...]string{
	EventShot:          "shot",
	EventEnemyKilled:   "enemy_killed",
	EventPerkDropped:   "perk_dropped",
	EventPerkCollected: "perk_collected",
	EventPlayerHit:     "player_hit",
	EventGrenadeThrown: "grenade_thrown",
	EventGameOver:      "game_over",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// AllEvents lists every event type, for subscribers that want everything.
var AllEvents = []EventType{
	EventShot, EventEnemyKilled, EventPerkDropped, EventPerkCollected,
	EventPlayerHit, EventGrenadeThrown, EventGameOver,
}

// KillCause tells bullet kills from grenade kills.
type KillCause uint8

const (
	CauseBullet KillCause = iota
	CauseGrenade
)

func (c KillCause) String() string {
	if c == CauseGrenade {
		return "grenade"
	}
	return "bullet"
}

type Event struct {
	Type  EventType
	X, Y  float64
	Count int // damage for hits, kills for grenades, score for game over
	Perk  PerkKind
	Cause KillCause
}

type EventHandler func(Event)

// EventBus delivers events synchronously, inside the tick that raised them.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
