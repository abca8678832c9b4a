package config_test

import (
	"context"
	"testing"

	"github.com/kevinvalenciaa/QSAO-competition/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New(context.Background())

		Convey("Then the defaults reproduce the canonical run", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.SalaryFile, ShouldEqual, "QSAO CASECOMP NBASALARY.xlsx")
			So(cfg.StatsFile, ShouldEqual, "QSAO CASECOMP PLAYERDATA.xlsx")
			So(cfg.TeamCode, ShouldEqual, "MIA")
			So(cfg.SeasonColumn, ShouldEqual, "2024-25")
			So(cfg.OutputFile, ShouldEqual, "miami_heat_valuation.xlsx")
			So(cfg.TableFormat, ShouldEqual, "ascii")
		})
	})
}
