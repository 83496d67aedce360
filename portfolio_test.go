package kuku

import "testing"

func TestPortfolio_SetHolding(t *testing.T) {
	var p Portfolio

	p.setHolding("AAPL", Q(2))
	if !p.Holding("AAPL").Equal(Q(2)) {
		t.Errorf("Holding(AAPL) = %s, want 2", p.Holding("AAPL"))
	}
	if !p.Holding("MSFT").IsZero() {
		t.Errorf("Holding of an absent ticker = %s, want 0", p.Holding("MSFT"))
	}

	// Setting a holding to zero removes the entry.
	p.setHolding("AAPL", Q(0))
	if _, held := p.Holdings["AAPL"]; held {
		t.Error("a zero holding should not be stored")
	}
}

func TestPortfolio_Tickers(t *testing.T) {
	p := Portfolio{Holdings: map[string]Quantity{
		"TSLA": Q(1),
		"AAPL": Q(2),
		"MSFT": Q(3),
	}}
	got := p.Tickers()
	want := []string{"AAPL", "MSFT", "TSLA"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPortfolio_Clone(t *testing.T) {
	p := Portfolio{ID: "abc", Holdings: map[string]Quantity{"AAPL": Q(2)}}
	c := p.Clone()
	c.Holdings["AAPL"] = Q(999)
	if !p.Holding("AAPL").Equal(Q(2)) {
		t.Error("mutating a clone leaked into the original")
	}
}
