package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	lobbyService = "wordmole.Lobby"
	stepTimeout  = 10 * time.Second
)

// BaseGrpcSuite talks to a lobby server already running at LOBBY_ADDR.
type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.LobbyAddr == "" {
		s.T().Skip("LOBBY_ADDR is not set")
	}
}

// traceCalls logs the outcome of every call, with both messages as JSON when
// E2E_DEBUG_JSON is set.
func (s *BaseGrpcSuite) traceCalls(t *testing.T) grpc.UnaryClientInterceptor {
	dump := protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		t.Logf("%s -> %s (%v)", method, status.Code(err), time.Since(start))
		if !s.Config.DebugJSON {
			return err
		}
		t.Logf("  sent: %s", dump.Format(req.(proto.Message)))
		if err == nil {
			t.Logf("  got:  %s", dump.Format(reply.(proto.Message)))
		}
		return err
	}
}

func (s *BaseGrpcSuite) step(name string) {
	if s.Config.Colours {
		name = color.New(color.FgGreen, color.OpBold).Render(name)
	}
	s.T().Log("> " + name)
}

// WithHealth runs fn against the health service of the lobby server.
func (s *BaseGrpcSuite) WithHealth(name string, fn func(ctx context.Context, client healthpb.HealthClient)) {
	s.step(name)
	conn, err := grpc.NewClient(s.Config.LobbyAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.traceCalls(s.T())),
	)
	s.Require().NoError(err, "cannot reach the lobby at %s", s.Config.LobbyAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), stepTimeout)
	defer cancel()
	fn(ctx, healthpb.NewHealthClient(conn))
}
