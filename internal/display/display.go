// Package display renders table snapshots for the offline console game.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdemroom/internal/deck"
	"github.com/lox/holdemroom/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	foldedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)
)

// Card renders one card with suit-colored styling
func Card(c deck.Card) string {
	text := c.Rank.String() + c.Suit.String()
	if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
		return redCardStyle.Render(text)
	}
	return blackCardStyle.Render(text)
}

// Cards renders a hand as space-separated cards, or a placeholder when
// the cards are hidden.
func Cards(cards []deck.Card) string {
	if len(cards) == 0 {
		return foldedStyle.Render("🂠 🂠")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Table renders a full snapshot: header, board, seats and the current
// table message.
func Table(st *game.State) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  pot %d  bet %d", strings.ToUpper(st.Phase.String()), st.Pot, st.CurrentBet)))
	b.WriteString("\n")

	if len(st.Community) > 0 {
		b.WriteString("board: " + Cards(st.Community) + "\n")
	}

	for i, s := range st.Seats {
		b.WriteString(seatLine(st, i, s))
		b.WriteString("\n")
	}

	if st.Message != "" {
		b.WriteString(messageStyle.Render(st.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func seatLine(st *game.State, idx int, s *game.Seat) string {
	var tags []string
	if s.Dealer {
		tags = append(tags, "D")
	}
	if s.SmallBlind {
		tags = append(tags, "SB")
	}
	if s.BigBlind {
		tags = append(tags, "BB")
	}
	tag := ""
	if len(tags) > 0 {
		tag = " [" + strings.Join(tags, ",") + "]"
	}

	status := ""
	switch {
	case s.Folded:
		status = " folded"
	case s.AllIn:
		status = " all-in"
	case s.LastAction != game.ActionNone:
		status = " " + s.LastAction.String()
	}

	line := fmt.Sprintf("%-8s%s %4d chips  bet %3d  %s%s", s.Name, tag, s.Chips, s.CurrentBet, Cards(s.HoleCards), status)
	if s.HandRank != nil {
		line += "  (" + s.HandRank.Category.Name() + ")"
	}

	switch {
	case idx == st.Acting:
		return activeStyle.Render("> " + line)
	case s.Folded || !s.Active:
		return foldedStyle.Render("  " + line)
	default:
		return "  " + line
	}
}
