// Package observability provides OpenTelemetry tracing and metrics helpers.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("openstack-cpi"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "cpi.attach_disk")
//	defer span.End()
//	observability.SetSpanError(ctx, err)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("openstack-cpi"))
//	defer mp.Shutdown(ctx)
//	metrics, err := observability.NewMetrics(observability.Meter("openstack-cpi"))
package observability
