package archetype_test

import (
	"testing"

	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/archetype"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given stat lines matching a single rule", t, func() {
		Convey("Then a wing with shooting and steals is a 3&D Wing", func() {
			s := &model.StatLine{Pos: "SF", ThreePct: model.Float(0.39), STL: model.Float(1.1)}
			So(archetype.Classify(s), ShouldEqual, archetype.ThreeAndDWing)
		})

		Convey("Then a point guard with high assists is a Primary Ball Handler", func() {
			s := &model.StatLine{Pos: "PG", AST: model.Float(6)}
			So(archetype.Classify(s), ShouldEqual, archetype.PrimaryBallHandler)
		})

		Convey("Then a shooting big with blocks is a Stretch Big", func() {
			s := &model.StatLine{Pos: "PF", ThreePct: model.Float(0.35), BLK: model.Float(0.8)}
			So(archetype.Classify(s), ShouldEqual, archetype.StretchBig)
		})

		Convey("Then a center with blocks and rebounds is a Rim Protector", func() {
			s := &model.StatLine{Pos: "C", ThreePct: model.Float(0.10), BLK: model.Float(1.4), TRB: model.Float(9)}
			So(archetype.Classify(s), ShouldEqual, archetype.RimProtector)
		})

		Convey("Then a low-assist scorer at guard is a Scoring Guard", func() {
			s := &model.StatLine{Pos: "SG", PTS: model.Float(21), AST: model.Float(2), ThreePct: model.Float(0.3)}
			So(archetype.Classify(s), ShouldEqual, archetype.ScoringGuard)
		})

		Convey("Then a player matching nothing is a Versatile / Role Player", func() {
			s := &model.StatLine{Pos: "PF", PTS: model.Float(8), TRB: model.Float(4)}
			So(archetype.Classify(s), ShouldEqual, archetype.Versatile)
		})
	})

	Convey("Given stat lines satisfying multiple rules", t, func() {
		Convey("Then a center qualifying as both Stretch Big and Rim Protector is a Stretch Big", func() {
			// Rule order decides: stretch-big precedes rim-protector.
			s := &model.StatLine{
				Pos:      "C",
				ThreePct: model.Float(0.37),
				BLK:      model.Float(1.5),
				TRB:      model.Float(9),
			}
			So(archetype.Classify(s), ShouldEqual, archetype.StretchBig)
		})

		Convey("Then a 3&D-qualified shooting guard with scoring numbers is a 3&D Wing", func() {
			s := &model.StatLine{
				Pos:      "SG",
				ThreePct: model.Float(0.40),
				STL:      model.Float(1.0),
				PTS:      model.Float(22),
				AST:      model.Float(2),
			}
			So(archetype.Classify(s), ShouldEqual, archetype.ThreeAndDWing)
		})
	})

	Convey("Given boundary values", t, func() {
		Convey("Then comparisons are strict, so exact thresholds fail", func() {
			s := &model.StatLine{Pos: "PG", AST: model.Float(4)}
			So(archetype.Classify(s), ShouldEqual, archetype.Versatile)

			s = &model.StatLine{Pos: "C", BLK: model.Float(1.0), TRB: model.Float(7)}
			So(archetype.Classify(s), ShouldEqual, archetype.Versatile)
		})
	})

	Convey("Given missing statistics", t, func() {
		Convey("Then nil values fail every comparison instead of coercing to zero", func() {
			// AST < 4 must not match when AST is unknown.
			s := &model.StatLine{Pos: "SG", PTS: model.Float(25)}
			So(archetype.Classify(s), ShouldEqual, archetype.Versatile)
		})

		Convey("Then a nil stat line falls to the catch-all", func() {
			So(archetype.Classify(nil), ShouldEqual, archetype.Versatile)
		})
	})

	Convey("Given any classified player", t, func() {
		Convey("Then the label is always one of the six defined", func() {
			labels := archetype.Labels()
			So(labels, ShouldHaveLength, 6)
			So(labels[len(labels)-1], ShouldEqual, archetype.Versatile)

			inputs := []*model.StatLine{
				nil,
				{},
				{Pos: "C"},
				{Pos: "PG", AST: model.Float(10)},
				{Pos: "SF", ThreePct: model.Float(0.5), STL: model.Float(2)},
			}
			for _, in := range inputs {
				So(labels, ShouldContain, archetype.Classify(in))
			}
		})
	})
}
