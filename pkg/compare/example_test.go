package compare_test

import (
	"fmt"

	"github.com/go-drift/shouldupdate/pkg/compare"
)

type money struct {
	Cents int64
}

func (m money) Equal(other any) bool {
	o, ok := other.(money)
	return ok && m.Cents == o.Cents
}

func ExampleValues() {
	fmt.Println(compare.Values(money{Cents: 100}, money{Cents: 100}))
	fmt.Println(compare.Values(money{Cents: 100}, money{Cents: 250}))
	fmt.Println(compare.Values("a", "b"))
	// Output:
	// equal
	// unequal
	// inconclusive
}

func ExampleDeep() {
	a := map[string]any{
		"user": map[string]any{"name": "ada"},
		"tags": []any{"admin"},
	}
	b := map[string]any{
		"user": map[string]any{"name": "ada"},
		"tags": []any{"admin"},
	}
	fmt.Println(compare.Deep(a, b))
	// Output:
	// true
}
