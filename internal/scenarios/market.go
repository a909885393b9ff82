package scenarios

import (
	"time"

	goap "github.com/lixitrixi/planning"
)

type marketState struct {
	appleSold, bananaSold bool
}

type sellApple struct{}

func (sellApple) IsApplicable(s marketState) bool { return !s.appleSold }
func (sellApple) ApplyMut(s *marketState)          { s.appleSold = true }
func (sellApple) Cost(marketState) int             { return 4 }
func (sellApple) String() string                   { return "SellApple" }

type sellBanana struct{}

func (sellBanana) IsApplicable(s marketState) bool { return !s.bananaSold }
func (sellBanana) ApplyMut(s *marketState)          { s.bananaSold = true }
func (sellBanana) Cost(marketState) int             { return 1 }
func (sellBanana) String() string                   { return "SellBanana" }

type anyMarketAction interface {
	goap.Action[marketState]
}

type appleSoldGoal struct{}

func (appleSoldGoal) IsSatisfied(s marketState) bool { return s.appleSold }
func (appleSoldGoal) Priority(marketState) int        { return 5 }
func (appleSoldGoal) String() string                  { return "AppleSold" }

type bananaSoldGoal struct{}

func (bananaSoldGoal) IsSatisfied(s marketState) bool { return s.bananaSold }
func (bananaSoldGoal) Priority(marketState) int        { return 4 }
func (bananaSoldGoal) String() string                  { return "BananaSold" }

type anyMarketGoal interface {
	goap.Goal[marketState]
}

// market models a fruit stand with two independent sales goals priced so
// that the higher-priority goal (AppleSold) costs more to reach than the
// lower-priority one — PlanDynamic and PlanProfit disagree on purpose.
func market() Scenario {
	actions := []anyMarketAction{sellApple{}, sellBanana{}}
	goals := []anyMarketGoal{appleSoldGoal{}, bananaSoldGoal{}}

	return Scenario{
		Name:        "market",
		Description: "Two sellable goods priced against their priority — exercises PlanProfit vs PlanDynamic disagreement.",
		run: func(policy string) ([]Result, error) {
			counter := &planCounter{}
			start := time.Now()
			agent := goap.NewAgent[marketState](marketState{}, actions, goals, goap.WithAgentReporter[marketState, anyMarketAction, anyMarketGoal](counter))
			results, err := runPolicy[marketState](agent, policy)
			return stamp(results, err, counter, start)
		},
	}
}
