package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/voltgrid/voltgrid/internal/allocation"
	allocdomain "github.com/voltgrid/voltgrid/internal/allocation/domain"
	"github.com/voltgrid/voltgrid/internal/audit"
	"github.com/voltgrid/voltgrid/internal/clock"
	"github.com/voltgrid/voltgrid/internal/commission"
	commissiondomain "github.com/voltgrid/voltgrid/internal/commission/domain"
	"github.com/voltgrid/voltgrid/internal/config"
	"github.com/voltgrid/voltgrid/internal/consumer"
	"github.com/voltgrid/voltgrid/internal/generator"
	"github.com/voltgrid/voltgrid/internal/logger"
	"github.com/voltgrid/voltgrid/internal/metrics"
	"github.com/voltgrid/voltgrid/internal/migration"
	"github.com/voltgrid/voltgrid/internal/providers/storage"
	"github.com/voltgrid/voltgrid/internal/representative"
	"github.com/voltgrid/voltgrid/internal/setting"
	"github.com/voltgrid/voltgrid/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		metrics.Module,
		migration.Module,

		// External collaborators
		audit.Module,
		storage.Module,

		// Functional domains
		setting.Module,
		representative.Module,
		generator.Module,
		consumer.Module,
		allocation.Module,
		commission.Module,

		fx.Invoke(ready),
	)
	app.Run()
}

// ready forces construction of the engines; without a transport layer in this
// binary nothing else pulls them from the graph.
func ready(log *zap.Logger, _ allocdomain.Service, _ commissiondomain.Service) {
	log.Info("voltgrid engines ready")
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
