package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type testHealthSuite struct {
	BaseGrpcSuite
}

func TestHealthSuite(t *testing.T) {
	suite.Run(t, &testHealthSuite{})
}

func (s *testHealthSuite) TestLobbyIsServing() {
	s.Run("Step 1: The lobby service reports SERVING", func() {
		s.WithHealth("Check lobby health", func(ctx context.Context, client healthpb.HealthClient) {
			resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: lobbyService})
			s.Require().NoError(err)
			s.Require().Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		})
	})

	s.Run("Step 2: An unknown service is not found", func() {
		s.WithHealth("Check unknown service", func(ctx context.Context, client healthpb.HealthClient) {
			_, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "wordmole.Unknown"})
			s.Require().Equal(codes.NotFound, status.Code(err))
		})
	})
}
