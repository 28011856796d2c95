package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bidsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_bids_total",
			Help: "Total bids evaluated by outcome",
		},
		[]string{"outcome"},
	)

	auctionsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_auctions_settled_total",
			Help: "Auctions moved to their terminal state",
		},
		[]string{"trigger", "sold"},
	)

	streamTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_stream_transitions_total",
			Help: "Stream lifecycle transitions that took effect",
		},
		[]string{"to"},
	)

	activeRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "live_active_rooms",
			Help: "Rooms with at least one subscriber",
		},
	)

	roomSubscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "live_room_subscribers",
			Help: "Current subscribers per room kind",
		},
		[]string{"kind"},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_events_published_total",
			Help: "Events fanned out to room subscribers",
		},
		[]string{"kind"},
	)

	subscribersDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_subscribers_dropped_total",
			Help: "Subscribers removed because their outbound queue failed",
		},
		[]string{"kind"},
	)

	bidLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "live_bid_evaluation_seconds",
			Help:    "Time spent evaluating a bid, including lock wait",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
		},
	)
)

// RecordBid counts one evaluated bid; outcome is "accepted" or a reject code
func RecordBid(outcome string, seconds float64) {
	bidsTotal.WithLabelValues(outcome).Inc()
	bidLatency.Observe(seconds)
}

// RecordSettlement counts an auction that reached its terminal state
func RecordSettlement(trigger string, sold bool) {
	soldLabel := "false"
	if sold {
		soldLabel = "true"
	}
	auctionsSettled.WithLabelValues(trigger, soldLabel).Inc()
}

func RecordStreamTransition(to string) {
	streamTransitions.WithLabelValues(to).Inc()
}

func SetActiveRooms(n int) {
	activeRooms.Set(float64(n))
}

func SubscriberJoined(kind string) {
	roomSubscribers.WithLabelValues(kind).Inc()
}

func SubscriberLeft(kind string) {
	roomSubscribers.WithLabelValues(kind).Dec()
}

func EventPublished(kind string) {
	eventsPublished.WithLabelValues(kind).Inc()
}

func SubscriberDropped(kind string) {
	subscribersDropped.WithLabelValues(kind).Inc()
}
