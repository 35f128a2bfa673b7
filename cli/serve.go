package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/speechkit/logger"
	"github.com/skillsenselab/speechkit/server"
)

// ServeCMD runs the transcription HTTP service.
type ServeCMD struct {
	UploadDir string `type:"path" help:"Directory for staging audio uploads (default: system temp)"`
}

func (s *ServeCMD) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	log := logger.Get("speechkit")
	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()

	handler := server.NewHandler(a.pipeline, a.diarizers, a.transcribers, s.UploadDir)
	handler.Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	log.Info("signal received, shutting down", map[string]interface{}{
		"signal": sig.String(),
	})

	return srv.Stop(ctx)
}
