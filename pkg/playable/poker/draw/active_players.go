package draw

// ActivePlayers are the players still contesting the pot, in table order
// The set only ever shrinks within a hand.
type ActivePlayers struct {
	players []*Player
}

func newActivePlayers(players []*Player) *ActivePlayers {
	p := make([]*Player, len(players))
	copy(p, players)

	return &ActivePlayers{players: p}
}

// Len returns the number of active players
func (a *ActivePlayers) Len() int {
	return len(a.players)
}

// Contains returns true if the player has not folded
func (a *ActivePlayers) Contains(p *Player) bool {
	for _, active := range a.players {
		if active == p {
			return true
		}
	}

	return false
}

// Remove takes a player out of the hand
// Returns false if the player was not active
func (a *ActivePlayers) Remove(p *Player) bool {
	for i, active := range a.players {
		if active == p {
			a.players = append(a.players[:i:i], a.players[i+1:]...)
			return true
		}
	}

	return false
}

// Players returns a copy of the active players in table order
func (a *ActivePlayers) Players() []*Player {
	p := make([]*Player, len(a.players))
	copy(p, a.players)

	return p
}

// After returns the other active players in table order, starting with the seat after p
func (a *ActivePlayers) After(p *Player) []*Player {
	after := make([]*Player, 0, len(a.players))
	before := make([]*Player, 0, len(a.players))
	for _, active := range a.players {
		switch {
		case active == p:
			continue
		case active.seat > p.seat:
			after = append(after, active)
		default:
			before = append(before, active)
		}
	}

	return append(after, before...)
}

// Sole returns the last player standing, or nil if more than one player is active
func (a *ActivePlayers) Sole() *Player {
	if len(a.players) != 1 {
		return nil
	}

	return a.players[0]
}
