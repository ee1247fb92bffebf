package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/crypto/acme/autocert"

	"github.com/danilovkiri/dk_go_shortlinks/internal/api/grpc"
	"github.com/danilovkiri/dk_go_shortlinks/internal/api/rest"
	"github.com/danilovkiri/dk_go_shortlinks/internal/config"
	"github.com/danilovkiri/dk_go_shortlinks/internal/metrics"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/inpsql"
	"github.com/danilovkiri/dk_go_shortlinks/internal/storage/insqlite"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func printBuildMetadata() {
	for _, field := range []struct{ name, value string }{
		{"Build version", buildVersion},
		{"Build date", buildDate},
		{"Build commit", buildCommit},
	} {
		if field.value == "" {
			field.value = "N/A"
		}
		fmt.Printf("%s: %s\n", field.name, field.value)
	}
}

// initStorage picks PostgreSQL when a DSN is set, otherwise the configured local store.
// SQL stores register themselves in wg and close once ctx is cancelled.
func initStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config) (storage.LinkStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		wg.Add(1)
		return inpsql.InitStorage(ctx, wg, cfg)
	case cfg.StorageKind == config.StorageMemory:
		return inmemory.InitStorage(), nil
	default:
		wg.Add(1)
		return insqlite.InitStorage(ctx, wg, cfg)
	}
}

func main() {
	// print out build parameters
	printBuildMetadata()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}
	// get configuration
	cfg := config.NewDefaultConfiguration()
	if err := cfg.Parse(); err != nil {
		log.Fatal(err)
	}
	storageInit, err := initStorage(ctx, wg, cfg)
	if err != nil {
		log.Fatal(err)
	}
	// initialize servers
	server, err := rest.InitServer(cfg, storageInit, metrics.NewCollector())
	if err != nil {
		log.Fatal(err)
	}
	var grpcServer *grpc.Server
	if cfg.GRPCAddress != "" {
		listen, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			log.Fatal(err)
		}
		grpcServer = grpc.InitServer(storageInit)
		go func() {
			log.Print("gRPC health server start attempted on ", cfg.GRPCAddress)
			if err := grpcServer.Serve(listen); err != nil {
				log.Println("gRPC server:", err)
			}
		}()
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	idle := make(chan struct{})
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		log.Print("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			log.Println("Server shutdown failed:", err)
		}
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
		// closes SQL stores
		cancel()
		close(idle)
	}()
	// start up the server
	log.Print("Server start attempted on ", server.Addr)
	if cfg.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.BaseDomain),
		}
		server.TLSConfig = manager.TLSConfig()
		err = server.ListenAndServeTLS("", "")
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-idle
	// wait for storage listeners to close connections before exiting
	wg.Wait()
	log.Print("Server shutdown succeeded")
}
