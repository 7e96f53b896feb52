package console

import (
	"drawpoker/pkg/playable"
	"drawpoker/pkg/playable/poker/draw"
	"fmt"
	"github.com/pterm/pterm"
	"io"
	"strconv"
)

// Renderer draws table events on a terminal
// Private cards are only drawn for the viewer; everybody else's stay hidden until the showdown.
type Renderer struct {
	out     io.Writer
	viewer  int64
	players []*draw.Player
}

var _ playable.EventSink = &Renderer{}

// NewRenderer returns a renderer for the player with the viewer ID
// A viewer of zero never sees private cards.
func NewRenderer(out io.Writer, viewer int64, players []*draw.Player) *Renderer {
	return &Renderer{
		out:     out,
		viewer:  viewer,
		players: players,
	}
}

func (r *Renderer) name(playerID int64) string {
	if playerID == r.viewer {
		for _, p := range r.players {
			if p.PlayerID == playerID {
				return pterm.LightCyan(p.Name)
			}
		}
	}

	for _, p := range r.players {
		if p.PlayerID == playerID {
			return p.Name
		}
	}

	return fmt.Sprintf("Player %d", playerID)
}

func (r *Renderer) render(e *playable.Event) string {
	if len(e.PlayerIDs) == 0 {
		return e.Message
	}

	return e.Render(r.name(e.PlayerIDs[0]))
}

func (r *Renderer) print(s string) {
	_, _ = fmt.Fprint(r.out, s)
}

// Emit draws the event
func (r *Renderer) Emit(e *playable.Event) {
	switch e.Type {
	case playable.EventHandStarted:
		r.print(pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprintln(e.Message))
	case playable.EventRoundStarted:
		r.print(pterm.DefaultSection.Sprintln(e.Message))
	case playable.EventCardsDealt:
		if len(e.PlayerIDs) > 0 && e.PlayerIDs[0] == r.viewer && e.IsVisibleTo(r.viewer) {
			box := pterm.DefaultBox.WithHorizontalPadding(4).WithTitle(pterm.LightYellow("|YOUR HAND|")).WithTitleTopCenter()
			r.print(box.Sprintln(FormatPositions(e.Cards)))
		}
	case playable.EventAction:
		r.print(pterm.Sprintfln("%s (pot: $%d)", r.render(e), e.Pot))
	case playable.EventInsufficientFunds:
		r.print(pterm.Warning.Sprintln(r.render(e)))
	case playable.EventExchange:
		r.print(pterm.Sprintln(r.render(e)))
		if len(e.Cards) > 0 && len(e.PlayerIDs) > 0 && e.PlayerIDs[0] == r.viewer && e.IsVisibleTo(r.viewer) {
			r.print(pterm.Sprintfln("Your new hand: %s", FormatPositions(e.Cards)))
		}
	case playable.EventRoundSettled:
		r.print(pterm.Sprintfln("%s (pot: $%d)", e.Message, e.Pot))
	case playable.EventShowdown:
		r.print(pterm.Sprintfln("%s: %s", r.render(e), pterm.BgGreen.Sprint(" "+e.Cards.String()+" ")))
	case playable.EventWinner:
		box := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
		r.print(box.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Sprintln(r.render(e)))
	case playable.EventStacks:
		r.print(r.standings(e.Stacks))
	case playable.EventGameOver:
		r.print(pterm.Info.Sprintln(e.Message))
		r.print(r.standings(e.Stacks))
	default:
		r.print(pterm.Sprintln(r.render(e)))
	}
}

// standings renders every player's money in table order
func (r *Renderer) standings(stacks map[int64]int) string {
	data := pterm.TableData{{"Player", "Money"}}
	for _, p := range r.players {
		money, ok := stacks[p.PlayerID]
		if !ok {
			continue
		}

		status := "$" + strconv.Itoa(money)
		if money == 0 {
			status = pterm.LightRed(status)
		}

		data = append(data, []string{r.name(p.PlayerID), status})
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Sprintln(stacks)
	}

	return s + "\n"
}
