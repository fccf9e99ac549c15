package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRPCCall(t *testing.T) {
	okBefore := testutil.ToFloat64(RPCCallsTotal.WithLabelValues("ronin", "ok"))
	errBefore := testutil.ToFloat64(RPCCallsTotal.WithLabelValues("ronin", "error"))

	ObserveRPCCall("ronin", time.Now(), nil)
	ObserveRPCCall("ronin", time.Now(), errors.New("boom"))
	ObserveRPCCall("ronin", time.Now(), nil)

	assert.Equal(t, okBefore+2, testutil.ToFloat64(RPCCallsTotal.WithLabelValues("ronin", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(RPCCallsTotal.WithLabelValues("ronin", "error")))
}

func TestObservePriceFetch(t *testing.T) {
	before := testutil.ToFloat64(PriceFetchTotal.WithLabelValues("unavailable"))
	ObservePriceFetch("unavailable")
	assert.Equal(t, before+1, testutil.ToFloat64(PriceFetchTotal.WithLabelValues("unavailable")))
}

func TestMustRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NotPanics(t, func() {
		MustRegisterMetrics(reg)
		MustRegisterMetrics(reg)
	})

	ObservePriceFetch("ok")
	n, err := testutil.GatherAndCount(reg, "supply_checker_price_fetch_total")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
}
