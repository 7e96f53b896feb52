package ledger

// Participant provides an interface for retrieving and adjusting a participant's balance
// AdjustBalance should only ever be called by the Ledger while a hand is in progress
type Participant interface {
	ID() int64
	Balance() int
	AdjustBalance(amount int)
}

// participantInLedger is a participant seated in the ledger
type participantInLedger struct {
	Participant
	// tableIndex is where the player is seated at the table
	tableIndex int
	// contribution is how much the participant has put in during the current betting round
	contribution int
	// committed is how much the participant has put in during the entire hand
	committed int
}

// reset is called when a new betting round opens
func (p *participantInLedger) reset() {
	p.contribution = 0
}

func (p *participantInLedger) pay(amount int) {
	p.contribution += amount
	p.committed += amount
	p.Participant.AdjustBalance(-1 * amount)
}
