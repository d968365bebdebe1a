package coeff_test

import (
	"testing"

	"github.com/ib823/cockpit/internal/domain/coeff"
	"github.com/ib823/cockpit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScopeBreadth(t *testing.T) {
	Convey("Given a set of scope items", t, func() {
		items := []model.ScopeItem{
			{L3Code: "J58", Coefficient: 0.06, DefaultTier: "A"},
			{L3Code: "J59", Coefficient: 0.05, DefaultTier: "B"},
			{L3Code: "1FS", Coefficient: 0.03, DefaultTier: "D"},
		}

		Convey("When computing scope breadth", func() {
			sb := coeff.ScopeBreadth(items, 5)

			Convey("Then excluded-tier items contribute nothing", func() {
				So(sb, ShouldAlmostEqual, 0.06+0.05+5*0.02, 1e-12)
			})
		})

		Convey("When no items are selected and there are no integrations", func() {
			So(coeff.ScopeBreadth(nil, 0), ShouldEqual, 0)
		})

		Convey("When integrations are negative", func() {
			Convey("Then the aggregate is clamped to zero", func() {
				So(coeff.ScopeBreadth(nil, -50), ShouldEqual, 0)
			})
		})

		Convey("When adding integrations", func() {
			Convey("Then scope breadth never decreases", func() {
				prev := coeff.ScopeBreadth(items, 0)
				for n := 1; n <= 20; n++ {
					next := coeff.ScopeBreadth(items, n)
					So(next, ShouldBeGreaterThanOrEqualTo, prev)
					prev = next
				}
			})
		})
	})
}

func TestProcessComplexity(t *testing.T) {
	Convey("Given the process complexity formula", t, func() {
		Convey("When custom forms are at or below the baseline and fit is full", func() {
			So(coeff.ProcessComplexity(10, 1.0), ShouldEqual, 0)
			So(coeff.ProcessComplexity(0, 1.0), ShouldEqual, 0)
			So(coeff.ProcessComplexity(-5, 1.0), ShouldEqual, 0)
		})

		Convey("When custom forms exceed the baseline", func() {
			So(coeff.ProcessComplexity(15, 1.0), ShouldAlmostEqual, 5*0.01, 1e-12)
		})

		Convey("When fit to standard drops below one", func() {
			So(coeff.ProcessComplexity(10, 0.6), ShouldAlmostEqual, 0.4*0.25, 1e-12)
		})

		Convey("When fit to standard exceeds one", func() {
			Convey("Then the fit gap clamps to zero", func() {
				So(coeff.ProcessComplexity(10, 1.5), ShouldEqual, 0)
			})
		})

		Convey("When adding custom forms above the baseline", func() {
			Convey("Then process complexity never decreases", func() {
				prev := coeff.ProcessComplexity(10, 0.8)
				for n := 11; n <= 30; n++ {
					next := coeff.ProcessComplexity(n, 0.8)
					So(next, ShouldBeGreaterThanOrEqualTo, prev)
					prev = next
				}
			})
		})
	})
}

func TestOrgScale(t *testing.T) {
	Convey("Given the organizational scale formula", t, func() {
		Convey("When the footprint is a single entity, country, and language", func() {
			So(coeff.OrgScale(1, 1, 1), ShouldEqual, 0)
		})

		Convey("When counts are zero or negative", func() {
			So(coeff.OrgScale(0, 0, 0), ShouldEqual, 0)
			So(coeff.OrgScale(-3, -1, -7), ShouldEqual, 0)
		})

		Convey("When the footprint grows", func() {
			So(coeff.OrgScale(3, 2, 4), ShouldAlmostEqual, 2*0.03+1*0.05+3*0.02, 1e-12)
		})

		Convey("When any count increases", func() {
			Convey("Then organizational scale never decreases", func() {
				base := coeff.OrgScale(2, 2, 2)
				So(coeff.OrgScale(3, 2, 2), ShouldBeGreaterThanOrEqualTo, base)
				So(coeff.OrgScale(2, 3, 2), ShouldBeGreaterThanOrEqualTo, base)
				So(coeff.OrgScale(2, 2, 3), ShouldBeGreaterThanOrEqualTo, base)
			})
		})
	})
}

func TestFromInputs(t *testing.T) {
	Convey("Given degenerate inputs", t, func() {
		in := &model.EstimatorInputs{
			Integrations:  -10,
			CustomForms:   -10,
			FitToStandard: 2.0,
			LegalEntities: -1,
			Countries:     0,
			Languages:     -5,
		}

		Convey("Then every coefficient is clamped to zero", func() {
			cs := coeff.FromInputs(in)
			So(cs.Sb, ShouldBeGreaterThanOrEqualTo, 0)
			So(cs.Pc, ShouldBeGreaterThanOrEqualTo, 0)
			So(cs.Os, ShouldBeGreaterThanOrEqualTo, 0)
		})
	})
}
