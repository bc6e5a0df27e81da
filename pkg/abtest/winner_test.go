package abtest

import "testing"

func TestPickWinnerNeedsSample(t *testing.T) {
	result := PickWinner(VariantStats{Sends: 50, Opens: 40}, VariantStats{Sends: 50, Opens: 10})

	if result.Conclusive {
		t.Error("winner declared with insufficient sample")
	}
	if result.Winner != "" {
		t.Errorf("winner = %q, want empty", result.Winner)
	}
}

func TestPickWinnerByClickRate(t *testing.T) {
	a := VariantStats{Sends: 1000, Opens: 300, Clicks: 30}
	b := VariantStats{Sends: 1000, Opens: 250, Clicks: 80}

	result := PickWinner(a, b)

	if !result.Conclusive {
		t.Fatal("expected a conclusive result")
	}
	if result.Winner != "b" {
		t.Errorf("winner = %q, want b", result.Winner)
	}
	if result.ClickRateB != 0.08 {
		t.Errorf("click rate B = %v, want 0.08", result.ClickRateB)
	}
}

func TestPickWinnerFallsBackToOpenRate(t *testing.T) {
	a := VariantStats{Sends: 500, Opens: 100, Clicks: 10}
	b := VariantStats{Sends: 500, Opens: 200, Clicks: 10}

	result := PickWinner(a, b)

	if result.Winner != "b" {
		t.Errorf("winner = %q, want b (higher open rate on tied clicks)", result.Winner)
	}
}

func TestPickWinnerTieGoesToControl(t *testing.T) {
	stats := VariantStats{Sends: 500, Opens: 100, Clicks: 10}

	result := PickWinner(stats, stats)

	if result.Winner != "a" {
		t.Errorf("winner = %q, want a on a full tie", result.Winner)
	}
}

func TestPickWinnerZeroSendsDoesNotDivide(t *testing.T) {
	result := PickWinner(VariantStats{}, VariantStats{})

	if result.OpenRateA != 0 || result.ClickRateB != 0 {
		t.Errorf("rates should be zero for zero sends: %+v", result)
	}
	if result.Conclusive {
		t.Error("zero sends must not be conclusive")
	}
}
