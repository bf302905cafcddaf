/*
Package observability exposes Prometheus metrics for the Arbor engine.

Metrics are fed through the engine's lifecycle hooks, so the traversal core
stays free of any metrics dependency. Wire them like this:

	reg := prometheus.NewRegistry()
	metrics := observability.New(reg)
	eng, err := arbor.New(path, arbor.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
