// Package grpc provides the standard gRPC health service backed by a datastore ping.
package grpc

import (
	"context"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/danilovkiri/dk_go_shortlinks/internal/api/grpc/interceptors"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
)

// ServiceName is the service reported alongside the overall "" entry.
const ServiceName = "shortlinks.Shortener"

const pingTimeout = 500 * time.Millisecond

// HealthServer reports NOT_SERVING whenever the datastore fails to answer a ping.
type HealthServer struct {
	*health.Server
	pinger storage.Pinger
}

// Check overrides the static status with the live datastore state.
func (h *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	resp, err := h.Server.Check(ctx, req)
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return resp, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.pinger.PingDB(pingCtx); err != nil {
		log.Println("Health check:", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return resp, nil
}

// Server bundles the gRPC server and its health service.
type Server struct {
	grpcServer *grpc.Server
	health     *HealthServer
}

// InitServer returns a Server object ready to be listening and serving.
func InitServer(pinger storage.Pinger) *Server {
	hs := &HealthServer{Server: health.NewServer(), pinger: pinger}
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	s := grpc.NewServer(grpc.UnaryInterceptor(interceptors.UnaryLoggingInterceptor()))
	healthpb.RegisterHealthServer(s, hs)
	return &Server{grpcServer: s, health: hs}
}

// Serve accepts connections on lis until GracefulStop is called.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop flips every service to NOT_SERVING and waits for pending RPCs.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
