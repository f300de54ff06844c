package profiling

import (
	"context"

	"github.com/grafana/pyroscope-go"
	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"go.uber.org/fx"
)

// profileTypes are the profiles worth keeping for a request/response API
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Service streams profiles to Pyroscope while the app runs
type Service struct {
	cfg      config.ProfilingConfig
	mode     string
	logger   *logger.Logger
	profiler *pyroscope.Profiler
}

func Module() fx.Option {
	return fx.Options(
		fx.Provide(NewService),
		fx.Invoke(RegisterHooks),
	)
}

func NewService(cfg *config.Configuration, logger *logger.Logger) *Service {
	return &Service{
		cfg:    cfg.Profiling,
		mode:   string(cfg.Deployment.Mode),
		logger: logger,
	}
}

func RegisterHooks(lc fx.Lifecycle, svc *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Start()
		},
		OnStop: func(ctx context.Context) error {
			return svc.Stop()
		},
	})
}

// Start is a no-op when profiling is disabled
func (s *Service) Start() error {
	if !s.cfg.Enabled {
		s.logger.Debug("profiling disabled")
		return nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   s.cfg.ApplicationName,
		ServerAddress:     s.cfg.ServerAddress,
		BasicAuthUser:     s.cfg.BasicAuthUser,
		BasicAuthPassword: s.cfg.BasicAuthPassword,
		ProfileTypes:      profileTypes,
		Tags:              map[string]string{"mode": s.mode},
		Logger:            s,
	})
	if err != nil {
		s.logger.Errorw("failed to start profiler", "error", err)
		return err
	}

	s.profiler = profiler
	s.logger.Infow("profiling started",
		"application_name", s.cfg.ApplicationName,
		"server_address", s.cfg.ServerAddress,
	)
	return nil
}

// Stop flushes the last profiles
func (s *Service) Stop() error {
	if s.profiler == nil {
		return nil
	}
	s.logger.Info("stopping profiler")
	err := s.profiler.Stop()
	s.profiler = nil
	return err
}

// pyroscope.Logger; its debug output is dropped

func (s *Service) Debugf(format string, args ...interface{}) {}

func (s *Service) Infof(format string, args ...interface{}) {
	s.logger.Infof("[pyroscope] "+format, args...)
}

func (s *Service) Errorf(format string, args ...interface{}) {
	s.logger.Errorf("[pyroscope] "+format, args...)
}
