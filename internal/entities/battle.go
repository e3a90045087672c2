package entities

import "time"

// Action tags a battle log entry
type Action string

// Log entry variants
const (
	ActionAttack Action = "attack"
	ActionFaint  Action = "faint"
	ActionEnd    Action = "end"
)

// Outcome is the terminal state of a battle
type Outcome string

// Battle outcomes
const (
	OutcomeWinnerA Outcome = "winner_a"
	OutcomeWinnerB Outcome = "winner_b"
	OutcomeDraw    Outcome = "draw"
)

// DrawLabel is written in place of a winner name when nobody wins
const DrawLabel = "Draw"

// Participant identifies a combatant inside a log entry
type Participant struct {
	Name   string `json:"name"`
	HPLeft *int   `json:"hp_left,omitempty"`
}

// LogEntry is one line of the battle log. Which fields are set depends on Action:
// attack carries Attacker, Defender, Move and Damage; faint carries Pokemon; end carries only Text.
type LogEntry struct {
	Action   Action       `json:"action"`
	Attacker *Participant `json:"attacker,omitempty"`
	Defender *Participant `json:"defender,omitempty"`
	Pokemon  *Participant `json:"pokemon,omitempty"`
	Move     string       `json:"move,omitempty"`
	Damage   int          `json:"damage,omitempty"`
	Text     string       `json:"text"`
}

// BattleRecord is a finished battle kept for later retrieval and replay
type BattleRecord struct {
	ID        string     `json:"id"`
	Pokemon1  string     `json:"pokemon1"`
	Pokemon2  string     `json:"pokemon2"`
	Winner    string     `json:"winner"`
	Outcome   Outcome    `json:"outcome"`
	Turns     int        `json:"turns"`
	Seed      uint64     `json:"seed,omitempty"`
	Log       []LogEntry `json:"battle_log"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// WinnerLabel returns the winner's name, or DrawLabel when the battle was drawn
func (r *BattleRecord) WinnerLabel() string {
	if r.Outcome == OutcomeDraw || r.Winner == "" {
		return DrawLabel
	}
	return r.Winner
}

// SimulationResult is what a caller receives after a simulation
type SimulationResult struct {
	BattleID string     `json:"battle_id"`
	Winner   string     `json:"winner"`
	Stored   bool       `json:"stored"`
	Log      []LogEntry `json:"battle_log"`
}

// Result summarises the record; Winner carries DrawLabel on a draw
func (r *BattleRecord) Result(stored bool) *SimulationResult {
	return &SimulationResult{
		BattleID: r.ID,
		Winner:   r.WinnerLabel(),
		Stored:   stored,
		Log:      r.Log,
	}
}
