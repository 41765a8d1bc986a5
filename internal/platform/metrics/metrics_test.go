package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementStageTransition("login", 1)
	m.IncrementStageTransition("policy", 2)
	m.IncrementMatchCreated("demo")
	m.IncrementMatchCreated("demo")
	m.IncrementRejectedAdvance("validation")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageTransitions.WithLabelValues("login")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CurrentStageRank))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MatchesCreated.WithLabelValues("demo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectedAdvances.WithLabelValues("validation")))
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
