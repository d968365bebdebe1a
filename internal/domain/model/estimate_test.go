package model_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/ib823/cockpit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScopeItemCounted(t *testing.T) {
	Convey("Given scope items across tiers", t, func() {
		Convey("Then only the excluded tier is not counted", func() {
			So(model.ScopeItem{L3Code: "J58", DefaultTier: "A"}.Counted(), ShouldBeTrue)
			So(model.ScopeItem{L3Code: "BD3", DefaultTier: "C"}.Counted(), ShouldBeTrue)
			So(model.ScopeItem{L3Code: "1FS", DefaultTier: model.ExcludedTier}.Counted(), ShouldBeFalse)
		})
	})
}

func TestWireSchema(t *testing.T) {
	Convey("Given an estimate result", t, func() {
		res := model.EstimatorResults{
			TotalMD:        189.0,
			DurationMonths: 5.9,
			PMOMD:          59.0,
			Phases: []model.PhaseBreakdown{
				{PhaseName: "Prepare", EffortMD: 18.9, DurationMonths: 0.59},
			},
			CapacityPerMonth: 32,
		}

		Convey("When marshalled", func() {
			raw, err := json.Marshal(res)
			So(err, ShouldBeNil)

			var decoded map[string]interface{}
			So(json.Unmarshal(raw, &decoded), ShouldBeNil)

			Convey("Then it uses the snake_case wire names clients depend on", func() {
				for _, key := range []string{
					"total_md",
					"duration_months",
					"pmo_md",
					"phases",
					"capacity_per_month",
					"coefficients",
					"intermediate_values",
				} {
					_, ok := decoded[key]
					So(ok, ShouldBeTrue)
				}
			})
		})
	})

	Convey("Given an inbound scenario payload", t, func() {
		payload := `{
			"selected_l3_items": [{"l3_code": "J58", "coefficient": 0.06, "default_tier": "A"}],
			"integrations": 3,
			"custom_forms": 12,
			"fit_to_standard": 0.9,
			"legal_entities": 2,
			"countries": 2,
			"languages": 1,
			"profile": {"name": "baseline", "base_ft": 380, "basis": 60, "security_auth": 25},
			"fte": 6,
			"utilization": 0.8,
			"overlap_factor": 0.9
		}`

		Convey("When decoded", func() {
			var in model.EstimatorInputs
			err := json.Unmarshal([]byte(payload), &in)

			Convey("Then every field lands where the engine expects it", func() {
				So(err, ShouldBeNil)
				So(len(in.SelectedL3Items), ShouldEqual, 1)
				So(in.SelectedL3Items[0].Coefficient, ShouldEqual, 0.06)
				So(in.Integrations, ShouldEqual, 3)
				So(in.CustomForms, ShouldEqual, 12)
				So(in.FitToStandard, ShouldEqual, 0.9)
				So(in.Profile.BaseFT, ShouldEqual, 380)
				So(in.FTE, ShouldEqual, 6)
				So(in.OverlapFactor, ShouldEqual, 0.9)
			})
		})
	})
}
