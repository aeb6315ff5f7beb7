package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lox/holdemroom/internal/display"
	"github.com/lox/holdemroom/internal/game"
	"github.com/lox/holdemroom/internal/session"
)

// PlayCmd runs an offline table on the console
type PlayCmd struct {
	Name       string `kong:"default='You',help='Your name at the table'"`
	Opponents  int    `kong:"default='5',help='Number of scripted opponents (1-5)'"`
	Chips      int    `kong:"default='1000',help='Starting chip count'"`
	SmallBlind int    `kong:"default='10',help='Small blind amount'"`
	BigBlind   int    `kong:"default='20',help='Big blind amount'"`
	Seed       int64  `kong:"help='Deterministic RNG seed (0 seeds from the clock)'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

var opponentNames = []string{"Alice", "Bob", "Charlie", "Diana", "Eve"}

func (c *PlayCmd) Run() error {
	if c.Opponents < 1 || c.Opponents > len(opponentNames) {
		return fmt.Errorf("opponents must be between 1 and %d", len(opponentNames))
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := session.New(session.Config{
		HumanName:  c.Name,
		AINames:    opponentNames[:c.Opponents],
		Chips:      c.Chips,
		SmallBlind: c.SmallBlind,
		BigBlind:   c.BigBlind,
		Seed:       seed,
		Logger:     setupLogger(c.Debug),
	})

	sess.OnUpdate(func(st *game.State) {
		fmt.Println()
		fmt.Print(display.Table(st))
		if st.Acting == session.HumanSeat {
			printPrompt(st)
		} else if st.RoundComplete {
			fmt.Println("(next to deal again, quit to leave)")
		}
	})

	if err := sess.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := strings.Fields(strings.ToLower(strings.TrimSpace(scanner.Text())))
		if len(input) == 0 {
			continue
		}

		switch input[0] {
		case "quit", "q", "exit":
			return nil

		case "next", "n":
			if err := sess.NextHand(); err != nil {
				if st := sess.State(); st.Phase == game.Ended {
					fmt.Println(st.Message)
					return nil
				}
				fmt.Println("cannot deal yet:", err)
			}

		case "fold", "f":
			c.apply(sess, game.Fold, 0)
		case "check", "k":
			c.apply(sess, game.Check, 0)
		case "call", "c":
			c.apply(sess, game.Call, 0)
		case "allin", "a":
			c.apply(sess, game.AllIn, 0)
		case "raise", "r":
			if len(input) < 2 {
				fmt.Println("usage: raise <new total bet>")
				continue
			}
			amount, err := strconv.Atoi(input[1])
			if err != nil {
				fmt.Println("usage: raise <new total bet>")
				continue
			}
			c.apply(sess, game.Raise, amount)

		default:
			fmt.Println("commands: fold, check, call, raise <amount>, allin, next, quit")
		}
	}
	return scanner.Err()
}

func (c *PlayCmd) apply(sess *session.Session, action game.Action, raiseTo int) {
	if err := sess.HumanAction(action, raiseTo); err != nil {
		fmt.Println("rejected:", err)
	}
}

// printPrompt lists the legal actions so the player never has to guess
// the raise bounds.
func printPrompt(st *game.State) {
	la := st.LegalActions(session.HumanSeat)
	var opts []string
	if la.CanCheck {
		opts = append(opts, "check")
	}
	if la.CanCall {
		opts = append(opts, fmt.Sprintf("call %d", la.CallAmount))
	}
	if la.CanRaise {
		opts = append(opts, fmt.Sprintf("raise %d-%d", la.MinRaiseTo, la.MaxRaiseTo))
	}
	if la.CanAllIn {
		opts = append(opts, "allin")
	}
	opts = append(opts, "fold")
	fmt.Printf("your move (%s): ", strings.Join(opts, ", "))
}
