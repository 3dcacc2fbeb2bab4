package cmd

import (
	"context"

	"github.com/Rakhulsr/go-shoppinglist/app/configs"
	"github.com/Rakhulsr/go-shoppinglist/app/db/seeders"
	"github.com/Rakhulsr/go-shoppinglist/app/models/migrations"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// RunCli runs the requested command; with no command it serves the API.
func RunCli(ctx context.Context, log *logrus.Logger, args []string) error {
	serveCmd := func(ctx context.Context, c *cli.Command) error {
		return Serve(ctx, setup(log), log)
	}

	cmd := &cli.Command{
		Name:   "shoppinglist",
		Usage:  "Shopping list API",
		Action: serveCmd,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: serveCmd,
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					env := setup(log)
					db, err := configs.OpenConnection(env, log)
					if err != nil {
						return err
					}
					defer closeDB(db, log)

					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed a demo catalog and the Groceries list",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "products",
						Value: 10,
						Usage: "number of fake catalog products",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					env := setup(log)
					db, err := configs.OpenConnection(env, log)
					if err != nil {
						return err
					}
					defer closeDB(db, log)

					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db, log, int(c.Int("products"))); err != nil {
						return err
					}
					log.Info("seeding complete")
					return nil
				},
			},
		},
	}

	return cmd.Run(ctx, args)
}

// setup loads the environment and applies its logging settings.
func setup(log *logrus.Logger) configs.ENV {
	env := configs.LoadEnv(log)

	if env.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		log.WithField("level", env.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return env
}
