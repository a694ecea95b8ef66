package authorize

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rafaelq/go-authz/pkg/authz"
)

var (
	authorizationResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authz_authorization_results_total",
		Help: "Authorization pipeline outcomes by kind and error code.",
	}, []string{"kind", "error"})

	interactionSuspensions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authz_interaction_suspensions_total",
		Help: "Authorization requests suspended waiting for an interaction.",
	}, []string{"stage"})
)

func observeResult(result authz.Result) {
	authorizationResults.WithLabelValues(string(result.Kind), string(result.ErrorCode)).Inc()

	switch result.Kind {
	case authz.ResultRequireLogin:
		interactionSuspensions.WithLabelValues(string(authz.StageLogin)).Inc()
	case authz.ResultRequireConsent:
		interactionSuspensions.WithLabelValues(string(authz.StageConsent)).Inc()
	}
}
