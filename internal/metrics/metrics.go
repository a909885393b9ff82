// Package metrics exposes Prometheus instrumentation for planning runs. A
// Collector is constructed explicitly and registered by its caller — no
// global registry, no background pusher.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the metrics the goap-demo CLI records for a run.
type Collector struct {
	plansFound     *prometheus.CounterVec
	plansFailed    *prometheus.CounterVec
	planCost       *prometheus.HistogramVec
	nodesExpanded  *prometheus.HistogramVec
	searchDuration *prometheus.HistogramVec
	goalsSelected  *prometheus.CounterVec
}

// NewCollector builds a Collector. Callers register it with a
// prometheus.Registerer of their choosing (prometheus.DefaultRegisterer in
// the CLI, a dedicated registry in tests).
func NewCollector() *Collector {
	return &Collector{
		plansFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goap",
			Name:      "plans_found_total",
			Help:      "Plans successfully found, by scenario.",
		}, []string{"scenario"}),
		plansFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goap",
			Name:      "plans_failed_total",
			Help:      "Planning attempts that found no plan, by scenario.",
		}, []string{"scenario"}),
		planCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "goap",
			Name:      "plan_cost",
			Help:      "Cost of found plans, by scenario.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}, []string{"scenario"}),
		nodesExpanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "goap",
			Name:      "search_nodes_expanded",
			Help:      "A* nodes popped from the open set, by scenario.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"scenario"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "goap",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time spent inside FindPlan, by scenario.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"scenario"}),
		goalsSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goap",
			Name:      "goals_selected_total",
			Help:      "Goals chosen by an agent's selection policy.",
		}, []string{"scenario", "goal", "policy"}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.plansFound.Describe(ch)
	c.plansFailed.Describe(ch)
	c.planCost.Describe(ch)
	c.nodesExpanded.Describe(ch)
	c.searchDuration.Describe(ch)
	c.goalsSelected.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.plansFound.Collect(ch)
	c.plansFailed.Collect(ch)
	c.planCost.Collect(ch)
	c.nodesExpanded.Collect(ch)
	c.searchDuration.Collect(ch)
	c.goalsSelected.Collect(ch)
}

// RecordPlan records the outcome of a single planning attempt: whether a
// plan was found, its cost, how many A* nodes the search expanded, and how
// long the search took.
func (c *Collector) RecordPlan(scenario string, found bool, cost int, nodesExpanded int, duration time.Duration) {
	c.searchDuration.WithLabelValues(scenario).Observe(duration.Seconds())
	if !found {
		c.plansFailed.WithLabelValues(scenario).Inc()
		return
	}
	c.plansFound.WithLabelValues(scenario).Inc()
	c.planCost.WithLabelValues(scenario).Observe(float64(cost))
	c.nodesExpanded.WithLabelValues(scenario).Observe(float64(nodesExpanded))
}

// RecordSelection records which goal an agent's selection policy chose.
func (c *Collector) RecordSelection(scenario, goal, policy string) {
	c.goalsSelected.WithLabelValues(scenario, goal, policy).Inc()
}
