// Package metrics exposes the site's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors the server updates.
type Metrics struct {
	registry *prometheus.Registry

	PageMounts     prometheus.Counter
	ThemeToggles   prometheus.Counter
	ModalOpens     prometheus.Counter
	ScrollRequests *prometheus.CounterVec
	LinkDispatches *prometheus.CounterVec
	PagesEvicted   prometheus.Counter
	HTTPRequests   *prometheus.CounterVec
}

// New registers every collector on a fresh registry. activePages is
// sampled on each scrape.
func New(activePages func() int) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		PageMounts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_mounts_total",
			Help: "Pages mounted by a full load of the site.",
		}),
		ThemeToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_theme_toggles_total",
			Help: "Theme toggle clicks.",
		}),
		ModalOpens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_project_modal_opens_total",
			Help: "Project detail modals opened.",
		}),
		ScrollRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_scroll_requests_total",
			Help: "Navigation clicks by section and whether a scroll was issued.",
		}, []string{"section", "issued"}),
		LinkDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_link_dispatches_total",
			Help: "Outbound link clicks by key and whether a link was opened.",
		}, []string{"key", "opened"}),
		PagesEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_pages_evicted_total",
			Help: "Idle pages torn down by the janitor.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}

	reg.MustRegister(
		m.PageMounts, m.ThemeToggles, m.ModalOpens, m.ScrollRequests,
		m.LinkDispatches, m.PagesEvicted, m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if activePages != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "portfolio_active_pages",
			Help: "Pages currently mounted.",
		}, func() float64 { return float64(activePages()) }))
	}
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
