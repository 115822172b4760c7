package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	ApiTotal        *prometheus.CounterVec
	ApiInFlight     *prometheus.GaugeVec
	ApiDuration     *prometheus.HistogramVec
	StoreTotal      *prometheus.CounterVec
	HistoryRecorded *prometheus.CounterVec
	HistoryEntries  prometheus.Gauge
	DatasetSamples  prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		ApiTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statcalc_api_total_requests",
			Help: "total number of api requests",
		}, []string{"route", "method", "status"}),
		ApiInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statcalc_api_in_flight_requests",
			Help: "number of in flight api requests",
		}, []string{"route"}),
		ApiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "statcalc_api_request_duration_seconds",
			Help:    "api request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		StoreTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statcalc_store_writes_total",
			Help: "total number of persistence writes",
		}, []string{"store", "kind", "status"}),
		HistoryRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statcalc_history_recorded_total",
			Help: "total number of results recorded into the history log",
		}, []string{"op"}),
		HistoryEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statcalc_history_entries",
			Help: "number of entries currently in the history log",
		}),
		DatasetSamples: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statcalc_dataset_samples",
			Help: "number of samples currently in the dataset",
		}),
	}

	metrics.Enable(reg)
	return metrics
}

func (m *Metrics) Enable(reg prometheus.Registerer) {
	reg.MustRegister(m.ApiTotal)
	reg.MustRegister(m.ApiInFlight)
	reg.MustRegister(m.ApiDuration)
	reg.MustRegister(m.StoreTotal)
	reg.MustRegister(m.HistoryRecorded)
	reg.MustRegister(m.HistoryEntries)
	reg.MustRegister(m.DatasetSamples)
}

func (m *Metrics) Disable(reg prometheus.Registerer) {
	reg.Unregister(m.ApiTotal)
	reg.Unregister(m.ApiInFlight)
	reg.Unregister(m.ApiDuration)
	reg.Unregister(m.StoreTotal)
	reg.Unregister(m.HistoryRecorded)
	reg.Unregister(m.HistoryEntries)
	reg.Unregister(m.DatasetSamples)
}
