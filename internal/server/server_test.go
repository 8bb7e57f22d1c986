package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/handler"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/mock"
	"github.com/saarzint/candle-recall/internal/service"
	"github.com/saarzint/candle-recall/internal/workers"
)

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

type blockingWorker struct {
	stopped chan struct{}
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	close(b.stopped)
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("9.9.9").AnyTimes()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: appInfo}, okPinger{}, cfg, logger.Nop())
	require.NoError(t, err)

	worker := &blockingWorker{stopped: make(chan struct{})}
	srv, err := NewServer(handlers, workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx, cancel)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + s.httpServer.Addr() + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "9.9.9"
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(s.gRPCServer.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	health, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())
	require.NoError(t, conn.Close())

	s.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker was not stopped")
	}
	http.DefaultClient.CloseIdleConnections()
}
