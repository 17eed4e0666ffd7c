package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Number of bookings accepted",
		},
	)

	TrainerPromotions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trainer_promotions_total",
			Help: "Number of completed trainer promotions",
		},
	)

	WorkflowStepFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workflow_step_failures_total",
			Help: "Failures of individual non-atomic workflow steps",
		},
		[]string{"workflow", "step"},
	)
)

func Register() {
	prometheus.MustRegister(BookingsCreated, TrainerPromotions, WorkflowStepFailures)
}
