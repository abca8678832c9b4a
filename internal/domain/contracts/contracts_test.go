package contracts_test

import (
	"testing"

	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/contracts"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNextSeason(t *testing.T) {
	Convey("Given the curated contract table", t, func() {
		statuses := contracts.NextSeason()

		Convey("Then every record is fully populated", func() {
			So(statuses, ShouldNotBeEmpty)
			for _, cs := range statuses {
				So(cs.Player, ShouldNotBeBlank)
				So(cs.Pos, ShouldBeIn, "PG", "SG", "SF", "PF", "C")
				So(cs.Status, ShouldNotBeBlank)
				So(cs.Likelihood, ShouldBeIn, contracts.ConfirmedFA, contracts.PotentialFA, contracts.LikelyFA)
				So(cs.Explanation, ShouldNotBeBlank)
			}
		})

		Convey("When a caller mutates the returned slice", func() {
			statuses[0].Player = "Someone Else"

			Convey("Then the table itself is unchanged", func() {
				So(contracts.NextSeason()[0].Player, ShouldEqual, "Duncan Robinson")
			})
		})
	})
}
