package game

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshotHidesOtherHoleCards(t *testing.T) {
	st := newTestTable(t, 3)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	snap := st.Snapshot(0)
	if len(snap.Seats[0].HoleCards) != 2 {
		t.Error("observer should see its own cards")
	}
	if len(snap.Seats[1].HoleCards) != 0 || len(snap.Seats[2].HoleCards) != 0 {
		t.Error("other seats' cards should be hidden before showdown")
	}
}

func TestSnapshotSpectatorSeesNoCards(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	snap := st.Snapshot(-1)
	for i, s := range snap.Seats {
		if len(s.HoleCards) != 0 {
			t.Errorf("seat %d cards visible to spectator", i)
		}
	}
}

func TestSnapshotRevealsContendersAtShowdown(t *testing.T) {
	st := newTestTable(t, 3)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}
	st.Seats[1].Folded = true
	st.settleShowdown()

	snap := st.Snapshot(0)
	if len(snap.Seats[2].HoleCards) != 2 {
		t.Error("non-folded seats show their cards at showdown")
	}
	if snap.Seats[2].HandRank == nil {
		t.Error("revealed seats carry their hand rank")
	}
	if len(snap.Seats[1].HoleCards) != 0 {
		t.Error("folded seats stay hidden at showdown")
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	snap := st.Snapshot(0)
	snap.Seats[0].Chips = 0
	snap.Pot = 9999
	if st.Seats[0].Chips == 0 || st.Pot == 9999 {
		t.Error("mutating a snapshot must not touch the live state")
	}
	if snap.Deck != nil {
		t.Error("snapshots must not carry the deck")
	}
}

func TestSnapshotJSONNeverLeaksDeck(t *testing.T) {
	st := newTestTable(t, 2)
	if err := st.StartHand(); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(st.Snapshot(0))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"deck"`) || strings.Contains(string(data), `"Deck"`) {
		t.Error("serialized snapshot mentions the deck")
	}

	// Wire field names stay stable for the clients.
	for _, field := range []string{`"players"`, `"communityCards"`, `"pot"`, `"currentBet"`, `"phase"`, `"currentPlayerIndex"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized snapshot missing %s", field)
		}
	}
}
