package progress

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Indicator provides progress tracking for a planning run.
type Indicator struct {
	enabled bool
	mu      sync.Mutex
	phase   string
	step    string
	start   time.Time
}

// NewIndicator creates a new progress indicator
func NewIndicator(enabled bool) *Indicator {
	return &Indicator{
		enabled: enabled,
		start:   time.Now(),
	}
}

// Phase sets the current phase
func (p *Indicator) Phase(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phase = name
	fmt.Printf("\n📋 %s\n", name)
}

// Step sets the current step within a phase
func (p *Indicator) Step(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.step = name
	fmt.Printf("  ├─ %s\n", name)
}

// SubStep shows a sub-step
func (p *Indicator) SubStep(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  │  ├─ %s\n", name)
}

// Success marks a step as successful
func (p *Indicator) Success(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  └─ ✓ %s\n", name)
}

// Error shows an error
func (p *Indicator) Error(name string, err error) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  └─ ✗ %s: %v\n", name, err)
}

// Info shows an informational message
func (p *Indicator) Info(msg string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  │  %s\n", msg)
}

// GoalSelected reports which goal a selection policy chose, and at what cost.
func (p *Indicator) GoalSelected(goal string, cost int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  ├─ goal selected: %s (cost %s)\n", goal, formatNumber(cost))
}

// GoalUnreachable reports a goal the planner could not satisfy.
func (p *Indicator) GoalUnreachable(goal string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  │  ├─ goal unreachable: %s\n", goal)
}

// PlanStep prints one action of the chosen plan, in order.
func (p *Indicator) PlanStep(index int, action string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  │  %d. %s\n", index, action)
}

// Elapsed returns time since start
func (p *Indicator) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Summary prints final summary
func (p *Indicator) Summary(success bool, details string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	symbol := "✓"
	if !success {
		symbol = "✗"
	}

	elapsed := time.Since(p.start)
	fmt.Printf("\n%s Complete in %s\n", symbol, formatDuration(elapsed))
	if details != "" {
		fmt.Printf("  %s\n", details)
	}
}

func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{s[start:i]}, parts...)
	}
	return strings.Join(parts, ",")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
