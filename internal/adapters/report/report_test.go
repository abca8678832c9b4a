package report_test

import (
	"bytes"
	"testing"

	"github.com/kevinvalenciaa/QSAO-competition/internal/adapters/report"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/contracts"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRecords() []model.RosterRecord {
	return []model.RosterRecord{
		{
			Rank: 1,
			Merged: model.MergedPlayer{
				Salary: model.SalaryRow{Name: "Jimmy Butler", Team: "MIA", Salary: model.Float(48798677)},
				Stats: &model.StatLine{
					Player: "Jimmy Butler", Team: "MIA", Pos: "SF",
					PTS: model.Float(20.6), AST: model.Float(5.0), TRB: model.Float(5.3),
					STL: model.Float(1.3), BLK: model.Float(0.3), TOV: model.Float(1.5),
					FGPct: model.Float(0.499), ThreePct: model.Float(0.412), FTPct: model.Float(0.857),
				},
			},
			Valuation: model.Valuation{
				Efficiency:      0.589,
				BaseScore:       model.Float(35.75),
				ValueScore:      model.Float(21.06),
				ValuePerMillion: model.Float(0.4316),
			},
			Archetype: "3&D Wing",
		},
		{
			Rank: 2,
			Merged: model.MergedPlayer{
				Salary: model.SalaryRow{Name: "Dru Smith", Team: "MIA"},
			},
			Archetype: "Versatile / Role Player",
		},
	}
}

func TestRenderer(t *testing.T) {
	Convey("Given a renderer in ASCII mode", t, func() {
		var buf bytes.Buffer
		r := report.NewRenderer(
			report.WithWriter(&buf),
			report.WithSeasonColumn("2024-25"),
		)
		records := sampleRecords()

		Convey("When the valuation table is rendered", func() {
			r.Valuation("MIA", records)
			out := buf.String()

			Convey("Then it carries the heading, players, and metrics", func() {
				So(out, ShouldContainSubstring, "MIA Player Valuation")
				So(out, ShouldContainSubstring, "Jimmy Butler")
				So(out, ShouldContainSubstring, "3&D Wing")
				So(out, ShouldContainSubstring, "0.4316")
			})

			Convey("And undefined metrics render as n/a, not a crash", func() {
				So(out, ShouldContainSubstring, "Dru Smith")
				So(out, ShouldContainSubstring, "n/a")
			})
		})

		Convey("When the archetype breakdown is rendered", func() {
			r.ArchetypeBreakdown(records)
			out := buf.String()

			Convey("Then each assigned label is counted", func() {
				So(out, ShouldContainSubstring, "Archetype Breakdown")
				So(out, ShouldContainSubstring, "3&D Wing")
				So(out, ShouldContainSubstring, "Versatile / Role Player")
			})
		})

		Convey("When memberships are rendered", func() {
			r.Memberships(records)
			out := buf.String()

			Convey("Then players are listed under their archetype", func() {
				So(out, ShouldContainSubstring, "3&D Wing (1 players):")
				So(out, ShouldContainSubstring, "   - Jimmy Butler")
			})
		})

		Convey("When descriptive stats are rendered", func() {
			r.DescriptiveStats(records)
			out := buf.String()

			Convey("Then totals and leaders appear", func() {
				So(out, ShouldContainSubstring, "Roster Overview")
				So(out, ShouldContainSubstring, "Total salary")
				So(out, ShouldContainSubstring, "$48798677")
				So(out, ShouldContainSubstring, "Points leader")
				So(out, ShouldContainSubstring, "Jimmy Butler (20.6)")
			})
		})

		Convey("When the contract table is rendered", func() {
			r.Contracts("Miami Heat", "2025", contracts.NextSeason())
			out := buf.String()

			Convey("Then the static records appear as supplied", func() {
				So(out, ShouldContainSubstring, "Miami Heat 2025 Contract Status Overview")
				So(out, ShouldContainSubstring, "Duncan Robinson")
				So(out, ShouldContainSubstring, "Player Option / $19.9M")
			})
		})
	})

	Convey("Given a renderer in Markdown mode", t, func() {
		var buf bytes.Buffer
		r := report.NewRenderer(
			report.WithWriter(&buf),
			report.WithMode(report.Markdown),
		)

		Convey("When a table is rendered", func() {
			r.ArchetypeBreakdown(sampleRecords())

			Convey("Then the output is pipe-delimited", func() {
				So(buf.String(), ShouldContainSubstring, "| Archetype")
			})
		})
	})
}

func TestParseMode(t *testing.T) {
	Convey("Given format strings", t, func() {
		Convey("Then markdown maps to Markdown and everything else to ASCII", func() {
			So(report.ParseMode("markdown"), ShouldEqual, report.Markdown)
			So(report.ParseMode("ascii"), ShouldEqual, report.ASCII)
			So(report.ParseMode(""), ShouldEqual, report.ASCII)
		})
	})
}
