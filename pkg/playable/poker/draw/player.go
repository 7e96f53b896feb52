package draw

// Player is a seat at the table
// The stack persists across hands and is only changed by the hand's ledger.
type Player struct {
	PlayerID int64  `json:"playerId"`
	Name     string `json:"name"`
	Human    bool   `json:"human"`

	seat     int
	stack    int
	strategy Strategy
}

// NewPlayer returns a new player
// The stack is set by the table when the player is seated
func NewPlayer(id int64, name string, human bool, strategy Strategy) *Player {
	return &Player{
		PlayerID: id,
		Name:     name,
		Human:    human,
		strategy: strategy,
	}
}

// ID returns the player's ID
func (p *Player) ID() int64 {
	return p.PlayerID
}

// Balance returns the player's stack
func (p *Player) Balance() int {
	return p.stack
}

// AdjustBalance adds to (or subtracts from) the stack
// Only the ledger calls this while a hand is in progress
func (p *Player) AdjustBalance(amount int) {
	p.stack += amount
}

// Seat returns the player's position at the table
func (p *Player) Seat() int {
	return p.seat
}

// IsEligible returns true if the player has money to play the next hand
func (p *Player) IsEligible() bool {
	return p.stack > 0
}

func (p *Player) String() string {
	return p.Name
}
