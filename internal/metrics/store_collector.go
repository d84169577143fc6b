package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreStatFunc returns the in-memory collection sizes without importing the
// store package.
type StoreStatFunc func() (users, sessions, messages int)

// storeCollector implements prometheus.Collector for store collection sizes.
type storeCollector struct {
	statFunc StoreStatFunc

	usersDesc    *prometheus.Desc
	sessionsDesc *prometheus.Desc
	messagesDesc *prometheus.Desc
}

// NewStoreCollector creates a collector that exposes the store's collection
// sizes as gauges.
func NewStoreCollector(statFunc StoreStatFunc) prometheus.Collector {
	return &storeCollector{
		statFunc: statFunc,
		usersDesc: prometheus.NewDesc(
			"mentorloop_store_users",
			"Number of users held in the in-memory store.",
			nil, nil,
		),
		sessionsDesc: prometheus.NewDesc(
			"mentorloop_store_sessions",
			"Number of sessions held in the in-memory store.",
			nil, nil,
		),
		messagesDesc: prometheus.NewDesc(
			"mentorloop_store_messages",
			"Number of messages held in the in-memory store.",
			nil, nil,
		),
	}
}

// Describe sends the descriptors of each metric to the channel.
func (c *storeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.usersDesc
	ch <- c.sessionsDesc
	ch <- c.messagesDesc
}

// Collect fetches the collection sizes and sends them as metrics.
func (c *storeCollector) Collect(ch chan<- prometheus.Metric) {
	users, sessions, messages := c.statFunc()
	ch <- prometheus.MustNewConstMetric(c.usersDesc, prometheus.GaugeValue, float64(users))
	ch <- prometheus.MustNewConstMetric(c.sessionsDesc, prometheus.GaugeValue, float64(sessions))
	ch <- prometheus.MustNewConstMetric(c.messagesDesc, prometheus.GaugeValue, float64(messages))
}
