package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ib823/cockpit/internal/domain/catalog"
	"github.com/ib823/cockpit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given a seeded catalog", t, func() {
		ctx := context.Background()
		c := catalog.New(
			catalog.WithItems([]model.ScopeItem{
				{L3Code: "J58", Coefficient: 0.06, DefaultTier: "A"},
				{L3Code: "J59", Coefficient: 0.05, DefaultTier: "B"},
				{L3Code: "", Coefficient: 0.99, DefaultTier: "A"}, // skipped
			}),
			catalog.WithProfiles([]model.Profile{
				{Name: "baseline", BaseFT: 380, Basis: 60, SecurityAuth: 25},
			}),
		)

		Convey("Then counts reflect the seed, minus invalid entries", func() {
			So(c.ItemCount(), ShouldEqual, 2)
			So(c.ProfileCount(), ShouldEqual, 1)
		})

		Convey("When looking up a known item", func() {
			item, ok := c.Item(ctx, "J58")
			So(ok, ShouldBeTrue)
			So(item.Coefficient, ShouldEqual, 0.06)
		})

		Convey("When resolving a list of codes", func() {
			items, err := c.ResolveItems(ctx, []string{"J59", "J58"})

			Convey("Then order is preserved", func() {
				So(err, ShouldBeNil)
				So(len(items), ShouldEqual, 2)
				So(items[0].L3Code, ShouldEqual, "J59")
				So(items[1].L3Code, ShouldEqual, "J58")
			})
		})

		Convey("When resolving an unknown code", func() {
			_, err := c.ResolveItems(ctx, []string{"J58", "NOPE"})
			So(errors.Is(err, catalog.ErrUnknownItem), ShouldBeTrue)
		})

		Convey("When resolving a known profile", func() {
			p, err := c.ResolveProfile(ctx, "baseline")
			So(err, ShouldBeNil)
			So(p.BaseFT, ShouldEqual, 380)
		})

		Convey("When resolving an unknown profile", func() {
			_, err := c.ResolveProfile(ctx, "platinum")
			So(errors.Is(err, catalog.ErrUnknownProfile), ShouldBeTrue)
		})
	})

	Convey("Given an empty catalog", t, func() {
		c := catalog.New()

		Convey("Then lookups miss and resolution of nothing succeeds", func() {
			_, ok := c.Item(context.Background(), "J58")
			So(ok, ShouldBeFalse)

			items, err := c.ResolveItems(context.Background(), nil)
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})
	})
}
