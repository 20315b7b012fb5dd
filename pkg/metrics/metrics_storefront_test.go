package metrics_test

import (
	"testing"

	"github.com/joaomacarrao/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCartOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	addBefore := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add"))
	clearBefore := testutil.ToFloat64(metrics.CartOps.WithLabelValues("clear"))

	metrics.CartOps.WithLabelValues("add").Inc()

	if got := testutil.ToFloat64(metrics.CartOps.WithLabelValues("add")); got != addBefore+1 {
		t.Fatalf("CartOps(add): got=%v want=%v", got, addBefore+1)
	}
	if got := testutil.ToFloat64(metrics.CartOps.WithLabelValues("clear")); got != clearBefore {
		t.Fatalf("CartOps(clear): got=%v want=%v", got, clearBefore)
	}
}

func TestCheckoutTransitions_ByTargetStep(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.CheckoutTransitions.WithLabelValues("error"))
	metrics.CheckoutTransitions.WithLabelValues("error").Inc()

	if got := testutil.ToFloat64(metrics.CheckoutTransitions.WithLabelValues("error")); got != before+1 {
		t.Fatalf("CheckoutTransitions(error): got=%v want=%v", got, before+1)
	}
}
