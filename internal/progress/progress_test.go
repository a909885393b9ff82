package progress

import "testing"

func TestIndicatorDisabledDoesNotPanic(t *testing.T) {
	p := NewIndicator(false)
	p.Phase("search")
	p.Step("goal 1")
	p.SubStep("expanding nodes")
	p.GoalSelected("deliver", 11)
	p.GoalUnreachable("refuel")
	p.PlanStep(1, "GoToAxe")
	p.Success("plan found")
	p.Error("plan failed", nil)
	p.Info("done")
	p.Summary(true, "1 plan, cost 11")
}

func TestIndicatorElapsedIsNonNegative(t *testing.T) {
	p := NewIndicator(true)
	if p.Elapsed() < 0 {
		t.Error("expected non-negative elapsed duration")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		11:      "11",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
