package draw

import (
	"drawpoker/pkg/playable"
	"drawpoker/pkg/playable/poker/action"
)

func (h *hand) emit(e *playable.Event) {
	e.HandID = h.id
	e.Pot = h.ledger.Pot()
	h.table.sink.Emit(e)
}

func (h *hand) emitHandStarted() {
	e := playable.NewEvent(playable.EventHandStarted, h.id, 0, "New hand of five-card draw (bet: $%d)", h.table.options.BetAmount)
	e.Stacks = h.table.Standings()
	h.emit(e)
}

// emitCardsDealt tells the owner which cards they hold
func (h *hand) emitCardsDealt(p *Player) {
	e := playable.NewEvent(playable.EventCardsDealt, h.id, p.PlayerID, "{} was dealt %d cards", len(h.cards[p.PlayerID]))
	e.Cards = h.cards[p.PlayerID].Clone()
	e.Private = true
	h.emit(e)
}

func (h *hand) emitRoundStarted(br *BettingRound) {
	h.emit(playable.NewEvent(playable.EventRoundStarted, h.id, 0, "%s", br.Name()))
}

func (h *hand) emitRoundSettled(br *BettingRound) {
	e := playable.NewEvent(playable.EventRoundSettled, h.id, 0, "%s is over", br.Name())
	e.Stacks = h.table.Standings()
	h.emit(e)
}

func (h *hand) emitTurn(turn Turn) {
	e := playable.NewEvent(playable.EventAction, h.id, turn.Player.PlayerID, "{} %s", turn.Action.LogMessage(turn.Amount, turn.Increment))
	e.Action = turn.Action
	e.Amount = turn.Amount
	h.emit(e)
}

func (h *hand) emitInsufficientFunds(p *Player, wanted, fallback action.Action, cost int) {
	e := playable.NewEvent(playable.EventInsufficientFunds, h.id, p.PlayerID, "{} cannot afford to %s ($%d) and will %s instead", string(wanted), cost, string(fallback))
	e.Action = fallback
	e.Amount = cost
	h.emit(e)
}

func (h *hand) emitExchange(p *Player, count int) {
	e := playable.NewEvent(playable.EventExchange, h.id, p.PlayerID, "{} exchanged %d cards", count)
	e.Amount = count
	e.Cards = h.cards[p.PlayerID].Clone()
	e.Private = true
	h.emit(e)
}

func (h *hand) emitShowdown(entries []ShowdownEntry) {
	for _, entry := range entries {
		e := playable.NewEvent(playable.EventShowdown, h.id, entry.Player.PlayerID, "{} shows %s", entry.Score.Description)
		e.Cards = entry.Hand.Clone()
		h.emit(e)
	}
}

func (h *hand) emitWinner(winner *Player, amount int, format string, a ...interface{}) {
	e := playable.NewEvent(playable.EventWinner, h.id, winner.PlayerID, format, a...)
	e.Amount = amount
	h.emit(e)
}

func (h *hand) emitStacks() {
	e := playable.NewEvent(playable.EventStacks, h.id, 0, "Money after this hand")
	e.Stacks = h.table.Standings()
	h.emit(e)
}
