package app

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Blackdeer1524/SchemaCatalog/src"
	"github.com/Blackdeer1524/SchemaCatalog/src/assets"
	"github.com/Blackdeer1524/SchemaCatalog/src/catalog"
	"github.com/Blackdeer1524/SchemaCatalog/src/delivery"
	"github.com/Blackdeer1524/SchemaCatalog/src/pkg/utils"
)

const CloseTimeout = 15 * time.Second

type APIEntrypoint struct {
	Env envVars

	s   *delivery.Server
	log src.Logger
}

func (e *APIEntrypoint) Init(_ context.Context) error {
	e.Env = mustLoadEnv()

	var log src.Logger
	if e.Env.Environment == EnvDev {
		log = utils.Must(zap.NewDevelopment()).Sugar()
	} else {
		log = utils.Must(zap.NewProduction()).Sugar()
	}

	e.log = log

	var (
		c   *catalog.Catalog
		err error
	)

	if e.Env.SchemaPath != "" && e.Env.TripletPath != "" {
		c, err = catalog.LoadFS(afero.NewOsFs(), e.Env.SchemaPath, e.Env.TripletPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		log.Infof(
			"loaded catalog from %s and %s: %d schemas",
			e.Env.SchemaPath, e.Env.TripletPath, c.Len(),
		)
	} else {
		c = assets.DefaultCatalog()

		log.Infof("loaded embedded catalog: %d schemas", c.Len())
	}

	if report := catalog.Validate(c); !report.OK() {
		for _, v := range report {
			log.Error(v.String())
		}

		log.Errorf("catalog has %d consistency violations", len(report))
	}

	e.s = delivery.NewServer(e.Env.ServerHost, e.Env.ServerPort, c, log)

	return nil
}

func (e *APIEntrypoint) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return e.s.Run()
	})

	g.Go(func() error {
		<-ctx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), CloseTimeout)
		defer cancel()

		return e.s.Close(closeCtx)
	})

	return g.Wait()
}

func (e *APIEntrypoint) Close() (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), CloseTimeout)
	defer cancel()

	if e.s != nil {
		err = e.s.Close(ctx)
	}

	if e.log != nil {
		if err != nil {
			e.log.Error("failed to close server", zap.Error(err))
		}

		logErr := e.log.Sync()
		if logErr != nil && err != nil {
			err = fmt.Errorf("%w, %w", err, logErr)
		} else if logErr != nil {
			err = logErr
		}
	}

	return
}
