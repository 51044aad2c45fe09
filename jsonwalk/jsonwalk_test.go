package jsonwalk_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/jsonwalk"
)

type obj = map[string]any

// walk decodes input, runs Walk with fn, and returns the re-decoded result.
func walk(input string, fn jsonwalk.VisitFunc) any {
	v, err := jsonwalk.Decode([]byte(input))
	Expect(err).NotTo(HaveOccurred())
	out, err := jsonwalk.Walk(v, fn)
	Expect(err).NotTo(HaveOccurred())
	return out
}

var _ = Describe("Walk", func() {
	Describe("directives", func() {
		It("keeps fields unchanged", func() {
			out := walk(`{"Id":"abc","Name":"Dune"}`, func(*jsonwalk.Context, any) (jsonwalk.Directive, error) {
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal(obj{"Id": "abc", "Name": "Dune"}))
		})

		It("replaces values in place", func() {
			out := walk(`{"Id":"abc","Nested":{"Id":"def"}}`, func(ctx *jsonwalk.Context, v any) (jsonwalk.Directive, error) {
				if ctx.Key == "Id" {
					return jsonwalk.Replace("v-" + v.(string)), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal(obj{"Id": "v-abc", "Nested": obj{"Id": "v-def"}}))
		})

		It("does not recurse into replaced values", func() {
			visited := []string{}
			walk(`{"Outer":{"Inner":"x"}}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				visited = append(visited, ctx.Path)
				if ctx.Key == "Outer" {
					return jsonwalk.Replace(obj{"Inner": "y"}), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(visited).To(Equal([]string{"Outer"}))
		})

		It("renames keys, keeping values", func() {
			out := walk(`{"id":"abc"}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				if ctx.Key == "id" {
					return jsonwalk.Rename("Id"), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal(obj{"Id": "abc"}))
		})

		It("removes object fields", func() {
			out := walk(`{"Id":"abc","ApiKey":"secret"}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				if ctx.Key == "ApiKey" {
					return jsonwalk.Remove(), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal(obj{"Id": "abc"}))
		})

		It("removes array elements and compacts", func() {
			out := walk(`{"Items":["a","b","c"]}`, func(ctx *jsonwalk.Context, v any) (jsonwalk.Directive, error) {
				if ctx.InArray && v == "b" {
					return jsonwalk.Remove(), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal(obj{"Items": []any{"a", "c"}}))
		})

		It("removes elements from a root-level array", func() {
			out := walk(`[1,2,3]`, func(ctx *jsonwalk.Context, v any) (jsonwalk.Directive, error) {
				if v == float64(2) {
					return jsonwalk.Remove(), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal([]any{float64(1), float64(3)}))
		})

		It("adds sibling fields after iteration", func() {
			out := walk(`{"Id":"abc"}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				if ctx.Key == "Id" {
					return jsonwalk.AddSiblings(obj{"ServerId": "proxy"}), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(out).To(Equal(obj{"Id": "abc", "ServerId": "proxy"}))
		})

		It("does not visit fields added as siblings", func() {
			visited := []string{}
			walk(`{"Id":"abc"}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				visited = append(visited, ctx.Key)
				if ctx.Key == "Id" {
					return jsonwalk.AddSiblings(obj{"Extra": "x"}), nil
				}
				return jsonwalk.Keep(), nil
			})
			Expect(visited).To(Equal([]string{"Id"}))
		})
	})

	Describe("paths and context", func() {
		It("builds dotted paths through objects and arrays", func() {
			paths := []string{}
			walk(`{"a":{"b":[{"c":1}]}}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				paths = append(paths, ctx.Path)
				return jsonwalk.Keep(), nil
			})
			Expect(paths).To(Equal([]string{"a", "a.b", "a.b[0]", "a.b[0].c"}))
		})

		It("exposes array index and parent object", func() {
			walk(`{"Items":[{"Id":"x"}]}`, func(ctx *jsonwalk.Context, v any) (jsonwalk.Directive, error) {
				switch ctx.Path {
				case "Items[0]":
					Expect(ctx.InArray).To(BeTrue())
					Expect(ctx.Index).To(Equal(0))
					Expect(ctx.Key).To(BeEmpty())
					Expect(ctx.Parent).To(BeNil())
				case "Items[0].Id":
					Expect(ctx.InArray).To(BeFalse())
					Expect(ctx.Parent).To(HaveKeyWithValue("Id", "x"))
					Expect(ctx.ParentPath).To(Equal("Items[0]"))
				}
				return jsonwalk.Keep(), nil
			})
		})

		It("reports depth per nesting level", func() {
			depths := map[string]int{}
			walk(`{"a":{"b":{"c":1}}}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				depths[ctx.Path] = ctx.Depth
				return jsonwalk.Keep(), nil
			})
			Expect(depths).To(Equal(map[string]int{"a": 0, "a.b": 1, "a.b.c": 2}))
		})

		It("visits object keys in sorted order", func() {
			keys := []string{}
			walk(`{"zeta":1,"alpha":2,"mid":3}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				keys = append(keys, ctx.Key)
				return jsonwalk.Keep(), nil
			})
			Expect(keys).To(Equal([]string{"alpha", "mid", "zeta"}))
		})

		It("visits an object's scalar fields before its containers", func() {
			paths := []string{}
			walk(`{"Aaa":{"UserId":"nested"},"UserId":"root","Zzz":[1]}`, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				paths = append(paths, ctx.Path)
				return jsonwalk.Keep(), nil
			})
			Expect(paths).To(Equal([]string{"UserId", "Aaa", "Aaa.UserId", "Zzz", "Zzz[0]"}))
		})
	})

	Describe("errors", func() {
		It("aggregates visitor errors without stopping", func() {
			v, err := jsonwalk.Decode([]byte(`{"a":1,"b":2}`))
			Expect(err).NotTo(HaveOccurred())

			boom := errors.New("boom")
			count := 0
			_, err = jsonwalk.Walk(v, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				count++
				return jsonwalk.Keep(), boom
			})
			Expect(count).To(Equal(2))
			Expect(errors.Is(err, boom)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("a:"))
			Expect(err.Error()).To(ContainSubstring("b:"))
		})

		It("rejects renaming an array element", func() {
			v, _ := jsonwalk.Decode([]byte(`["x"]`))
			_, err := jsonwalk.Walk(v, func(ctx *jsonwalk.Context, _ any) (jsonwalk.Directive, error) {
				return jsonwalk.Rename("y"), nil
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("rename"))
		})

		It("fails fast on input nested beyond the depth cap", func() {
			deep := strings.Repeat(`{"a":`, jsonwalk.MaxDepth+2) + "1" + strings.Repeat("}", jsonwalk.MaxDepth+2)
			v, err := jsonwalk.Decode([]byte(deep))
			Expect(err).NotTo(HaveOccurred())

			_, err = jsonwalk.Walk(v, func(*jsonwalk.Context, any) (jsonwalk.Directive, error) {
				return jsonwalk.Keep(), nil
			})
			Expect(errors.Is(err, jsonwalk.ErrTooDeep)).To(BeTrue())
		})
	})

	Describe("analyzer mode", func() {
		It("accumulates hints without mutating the tree", func() {
			input := `{"UserId":"u1","MediaSourceId":"m1","Nested":{"UserId":"u2"}}`
			v, err := jsonwalk.Decode([]byte(input))
			Expect(err).NotTo(HaveOccurred())

			var userIDs []string
			out, err := jsonwalk.Walk(v, func(ctx *jsonwalk.Context, val any) (jsonwalk.Directive, error) {
				if ctx.Key == "UserId" {
					if s, ok := val.(string); ok {
						userIDs = append(userIDs, s)
					}
				}
				return jsonwalk.Keep(), nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(userIDs).To(Equal([]string{"u1", "u2"}))

			encoded, err := jsonwalk.Encode(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(encoded).To(MatchJSON(input))
		})
	})
})
