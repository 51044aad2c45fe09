package dedup_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/dedup"
)

func item(name string, fields map[string]any) map[string]any {
	m := map[string]any{"Name": name}
	for k, v := range fields {
		m[k] = v
	}
	return m
}

var _ = DescribeTable("ParseStrategy",
	func(in string, want dedup.Strategy) {
		Expect(dedup.ParseStrategy(in)).To(Equal(want))
	},
	Entry("provider_ids", "provider_ids", dedup.ByProviderIDs),
	Entry("name_year", "name_year", dedup.ByNameYear),
	Entry("none", "none", dedup.ByNone),
	Entry("case-insensitive", "Provider_IDs", dedup.ByProviderIDs),
	Entry("unknown falls back to none", "whatever", dedup.ByNone),
)

var _ = Describe("Merge", func() {
	Describe("provider_ids", func() {
		It("folds items sharing the highest-priority provider", func() {
			main := dedup.Source{Priority: 200, Items: []map[string]any{
				item("Dune", map[string]any{"Id": "a1", "ProviderIds": map[string]any{"Tmdb": "438631", "Imdb": "tt1160419"}}),
			}}
			backup := dedup.Source{Priority: 100, Items: []map[string]any{
				item("Dune (2021)", map[string]any{"Id": "b1", "ProviderIds": map[string]any{"Tmdb": "438631"}}),
			}}

			groups := dedup.Merge(dedup.ByProviderIDs, []dedup.Source{backup, main})
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Primary["Id"]).To(Equal("a1"), "highest-priority source wins")
			Expect(groups[0].Members).To(HaveLen(2))
		})

		It("does not fold across different providers of the priority list", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("X", map[string]any{"Id": "a", "ProviderIds": map[string]any{"Tmdb": "1"}}),
			}}
			b := dedup.Source{Priority: 100, Items: []map[string]any{
				item("X", map[string]any{"Id": "b", "ProviderIds": map[string]any{"Imdb": "tt1"}}),
			}}
			groups := dedup.Merge(dedup.ByProviderIDs, []dedup.Source{a, b})
			Expect(groups).To(HaveLen(2))
		})

		It("falls back to any provider when none of the priority list is present", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("X", map[string]any{"Id": "a", "ProviderIds": map[string]any{"AniList": "77"}}),
			}}
			b := dedup.Source{Priority: 100, Items: []map[string]any{
				item("X", map[string]any{"Id": "b", "ProviderIds": map[string]any{"anilist": "77"}}),
			}}
			groups := dedup.Merge(dedup.ByProviderIDs, []dedup.Source{a, b})
			Expect(groups).To(HaveLen(1))
		})

		It("never groups items without provider IDs", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("X", map[string]any{"Id": "a"}),
				item("X", map[string]any{"Id": "b", "ProviderIds": map[string]any{}}),
			}}
			groups := dedup.Merge(dedup.ByProviderIDs, []dedup.Source{a})
			Expect(groups).To(HaveLen(2))
		})
	})

	Describe("name_year", func() {
		It("folds by normalized name and year", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("The Thing!", map[string]any{"Id": "a", "ProductionYear": float64(1982)}),
			}}
			b := dedup.Source{Priority: 100, Items: []map[string]any{
				item("the thing", map[string]any{"Id": "b", "PremiereDate": "1982-06-25T00:00:00Z"}),
			}}
			groups := dedup.Merge(dedup.ByNameYear, []dedup.Source{a, b})
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Primary["Id"]).To(Equal("a"))
		})

		It("keeps same-name items of different years apart", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("The Thing", map[string]any{"Id": "a", "ProductionYear": float64(1982)}),
				item("The Thing", map[string]any{"Id": "b", "ProductionYear": float64(2011)}),
			}}
			groups := dedup.Merge(dedup.ByNameYear, []dedup.Source{a})
			Expect(groups).To(HaveLen(2))
		})

		It("treats the year as optional", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("Solaris", map[string]any{"Id": "a"}),
			}}
			b := dedup.Source{Priority: 100, Items: []map[string]any{
				item("Solaris", map[string]any{"Id": "b"}),
			}}
			groups := dedup.Merge(dedup.ByNameYear, []dedup.Source{a, b})
			Expect(groups).To(HaveLen(1))
		})
	})

	Describe("none", func() {
		It("keeps every item", func() {
			a := dedup.Source{Priority: 200, Items: []map[string]any{
				item("X", map[string]any{"Id": "a"}),
			}}
			b := dedup.Source{Priority: 100, Items: []map[string]any{
				item("X", map[string]any{"Id": "b"}),
			}}
			groups := dedup.Merge(dedup.ByNone, []dedup.Source{a, b})
			Expect(groups).To(HaveLen(2))
		})
	})

	It("orders groups by source priority, then source order", func() {
		low := dedup.Source{Priority: 100, Items: []map[string]any{
			item("B-only", map[string]any{"Id": "b1"}),
		}}
		high := dedup.Source{Priority: 200, Items: []map[string]any{
			item("A-first", map[string]any{"Id": "a1"}),
			item("A-second", map[string]any{"Id": "a2"}),
		}}
		groups := dedup.Merge(dedup.ByNone, []dedup.Source{low, high})
		primaries := dedup.Primaries(groups)
		Expect(primaries[0]["Id"]).To(Equal("a1"))
		Expect(primaries[1]["Id"]).To(Equal("a2"))
		Expect(primaries[2]["Id"]).To(Equal("b1"))
	})
})
