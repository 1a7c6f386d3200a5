package coloring_test

import (
	"testing"

	"github.com/katalvlaran/chromatic/coloring"
)

func BenchmarkStrategies(b *testing.B) {
	g := random(b, 500, 0.05, 1)
	for _, k := range coloring.Kinds() {
		s, _ := coloring.New(k)
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.Color(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
