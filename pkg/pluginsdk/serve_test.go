// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ChatGrid Contributors

package pluginsdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestStopServing_FailsAllHealthServices(t *testing.T) {
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(healthServiceName, healthpb.HealthCheckResponse_SERVING)

	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	hooks := newHooksServer(reg, quietLogger(), time.Second)

	stopServing(healthSrv, hooks, grpc.NewServer(), 100*time.Millisecond)

	// A host probing either the overall entry or the named one must see the
	// plugin as gone, not just the named service.
	for _, service := range []string{"", healthServiceName} {
		resp, err := healthSrv.Check(t.Context(), &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus(),
			"service %q still serving after shutdown", service)
	}

	assert.True(t, hooks.draining.Load())
}
