// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

type DatasetCleanupConfig struct {
	CronSchedule string
	TTL          time.Duration
	Enabled      bool
}

// DatasetCleanupService remove periodicamente os datasets expirados.
// Como os uploads vivem só em memória, este é o único mecanismo que devolve
// a memória de sessões abandonadas.
type DatasetCleanupService struct {
	scheduler           *gocron.Scheduler
	datasetRepo         repository.DatasetRepository
	config              DatasetCleanupConfig
	cleanupRunning      bool
	cleanupMutex        sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastRunRemovedCount int
}

func NewDatasetCleanupService(
	datasetRepo repository.DatasetRepository,
	cfg *config.Config,
) *DatasetCleanupService {
	cleanupConfig := DatasetCleanupConfig{
		CronSchedule: cfg.DatasetCleanup.CronSchedule,
		TTL:          time.Duration(cfg.DatasetCleanup.TTLMinutes) * time.Minute,
		Enabled:      cfg.DatasetCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"ttl":           cleanupConfig.TTL,
	}).Info("Configuração do agendador de limpeza de datasets carregada")

	return &DatasetCleanupService{
		scheduler:   scheduler,
		datasetRepo: datasetRepo,
		config:      cleanupConfig,
	}
}

func (s *DatasetCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CleanupExpiredDatasets(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de datasets expirados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de datasets: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// CleanupExpiredDatasets remove os datasets cujo TTL venceu
func (s *DatasetCleanupService) CleanupExpiredDatasets() error {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	if s.cleanupRunning {
		logrus.Warn("Limpeza de datasets já está em execução")
		return nil
	}

	s.cleanupRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.cleanupRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	removed, err := s.datasetRepo.DeleteExpired(time.Now(), s.config.TTL)
	if err != nil {
		return err
	}

	s.lastRunRemovedCount = removed

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.datasetRepo.Count(),
	}).Info("Limpeza de datasets concluída")

	return nil
}

// TriggerManualRun dispara a limpeza fora do horário agendado
func (s *DatasetCleanupService) TriggerManualRun() {
	go func() {
		if err := s.CleanupExpiredDatasets(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de datasets")
		}
	}()
}

// Status devolve o estado da última execução para o endpoint de cron
func (s *DatasetCleanupService) Status() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"enabled":            s.config.Enabled,
		"cron_schedule":      s.config.CronSchedule,
		"running":            s.cleanupRunning,
		"last_started_at":    s.lastRunStartedAt,
		"last_finished_at":   s.lastRunCompletedAt,
		"last_removed":       s.lastRunRemovedCount,
		"datasets_in_memory": s.datasetRepo.Count(),
	}
}
