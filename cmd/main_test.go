package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/okian/laneboard/internal/adapters/http/api"
	"github.com/okian/laneboard/internal/adapters/http/site"
	"github.com/okian/laneboard/internal/adapters/http/swagger"
	app "github.com/okian/laneboard/internal/app"
	"github.com/okian/laneboard/internal/config"
	"github.com/okian/laneboard/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application pieces", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When configuration comes from the environment", func() {
			_ = os.Setenv("LANEBOARD_ADDR", ":8181")
			_ = os.Setenv("LANEBOARD_DB_PATH", ":memory:")
			defer func() {
				_ = os.Unsetenv("LANEBOARD_ADDR")
				_ = os.Unsetenv("LANEBOARD_DB_PATH")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8181")
				convey.So(cfg.DBPath, convey.ShouldEqual, ":memory:")
			})
		})

		convey.Convey("When the service starts on an in-memory store", func() {
			svc := app.New(app.WithDBPath(":memory:"))
			ctx := context.Background()
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			convey.Convey("Then all routes register on one mux", func() {
				mux := http.NewServeMux()
				apiServer := api.NewServer(svc, svc)
				apiServer.Register(ctx, mux)
				swagger.Register(ctx, mux)
				site.Register(ctx, mux)
				convey.So(mux, convey.ShouldNotBeNil)
			})

			convey.Convey("And the HTTP server shape matches the timeouts", func() {
				srv := &http.Server{
					Addr:              ":0",
					ReadTimeout:       readTimeout,
					WriteTimeout:      writeTimeout,
					IdleTimeout:       idleTimeout,
					ReadHeaderTimeout: readHeaderTimeout,
				}
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, 5*time.Second)
			})
		})
	})
}
