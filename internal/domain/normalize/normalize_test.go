package normalize_test

import (
	"testing"

	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestName(t *testing.T) {
	Convey("Given names with diacritics", t, func() {
		Convey("Then accents are stripped to plain ASCII", func() {
			So(normalize.Name("Nikola Jović"), ShouldEqual, "Nikola Jovic")
			So(normalize.Name("Dāvis Bertāns"), ShouldEqual, "Davis Bertans")
			So(normalize.Name("Théo Maledon"), ShouldEqual, "Theo Maledon")
		})

		Convey("Then characters without an ASCII decomposition are omitted", func() {
			// U+0141 has no combining-mark decomposition.
			So(normalize.Name("Łukasz"), ShouldEqual, "ukasz")
		})
	})

	Convey("Given plain ASCII input", t, func() {
		Convey("Then it passes through unchanged", func() {
			So(normalize.Name("Jimmy Butler"), ShouldEqual, "Jimmy Butler")
			So(normalize.Name(""), ShouldEqual, "")
		})
	})

	Convey("Given any input", t, func() {
		inputs := []string{
			"", "Jimmy Butler", "Nikola Jović", "Łukasz", "Kevin Love",
			"Dāvis Bertāns", "ASCII only 123", "ść ź ż",
		}

		Convey("Then normalization is idempotent", func() {
			for _, in := range inputs {
				once := normalize.Name(in)
				So(normalize.Name(once), ShouldEqual, once)
			}
		})
	})
}
