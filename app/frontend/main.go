package main

import(
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	_ "github.com/netbeen/flight-path-chronicle/analysis" // populate the reports registry
	"github.com/netbeen/flight-path-chronicle/log"
	"github.com/netbeen/flight-path-chronicle/ref"
	"github.com/netbeen/flight-path-chronicle/ui"
)

var(
	fSource         ref.Source
	fGrpcPort       int
	fLogLevel       string
	fLogDir         string
	fOrigins        string
	fReloadInterval time.Duration
)

func init() {
	fSource.AddFlags(flag.CommandLine)
	flag.IntVar(&fGrpcPort, "grpcport", 8081, "port for the gRPC health service (0 to disable)")
	flag.StringVar(&fLogLevel, "loglevel", "info", "debug, info, warn, error")
	flag.StringVar(&fLogDir, "logdir", "", "write rotated logs under this dir, instead of stderr")
	flag.StringVar(&fOrigins, "origins", "*", "comma-separated CORS origins")
	flag.DurationVar(&fReloadInterval, "reload", 0, "reload the lists this often (0 to never)")
	flag.Parse()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lg := log.New("frontend", fLogLevel, fLogDir)

	ctx,stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p,err := fSource.Provider()
	if err != nil {
		lg.Error("bad source", "err", err)
		os.Exit(1)
	}
	ds,err := ref.Load(ctx, p, p, lg)
	if err != nil {
		lg.Error("initial load", "source", p.String(), "err", err)
		os.Exit(1)
	}
	srv := ui.NewServer(ds, p, lg)
	srv.AllowedOrigins = strings.Split(fOrigins, ",")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	httpServer := &http.Server{
		Addr: fmt.Sprintf(":%s", port),
		Handler: srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	g,gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Infof("Listening on port %s [flight-path-chronicle/app/frontend]", port)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if fGrpcPort > 0 {
		g.Go(func() error {
			lis,err := net.Listen("tcp", fmt.Sprintf(":%d", fGrpcPort))
			if err != nil { return err }
			lg.Infof("gRPC health on port %d", fGrpcPort)
			return grpcServer.Serve(lis)
		})
	}

	if fReloadInterval > 0 {
		g.Go(func() error {
			reloadLoop(gctx, srv, hs, lg)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down")
		hs.Shutdown()
		grpcServer.GracefulStop()
		sctx,cancel := context.WithTimeout(context.Background(), 15 * time.Second)
		defer cancel()
		return httpServer.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("exit", "err", err)
		os.Exit(1)
	}
}

// reloadLoop keeps serving the old dataset when a reload fails, but flags the health
// service so that orchestration can notice.
func reloadLoop(ctx context.Context, srv *ui.Server, hs *health.Server, lg *log.Logger) {
	ticker := time.NewTicker(fReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rctx,cancel := context.WithTimeout(ctx, fReloadInterval)
			ds,err := srv.Reload(rctx)
			cancel()
			if err != nil {
				lg.Warn("reload failed", "err", err)
				hs.SetServingStatus("dataset", healthpb.HealthCheckResponse_NOT_SERVING)
				continue
			}
			hs.SetServingStatus("dataset", healthpb.HealthCheckResponse_SERVING)
			lg.Debug("reloaded", "dataset", ds.String())
		}
	}
}
