package allocator_test

import (
	"fmt"

	"github.com/pavanmanishd/hstring/allocator"
	"github.com/pavanmanishd/hstring/arena"
)

func ExampleDefault() {
	a := arena.New(1024)
	d := allocator.NewDefault(a, allocator.NewHeap(0))

	small := d.Allocate(100)
	large := d.Allocate(1000)
	fmt.Println("small in arena:", a.Owns(small))
	fmt.Println("large in arena:", a.Owns(large))

	d.Free(large)
	d.Free(small)
	fmt.Println("arena in use:", a.SizeInUse())
	fmt.Printf("%+v\n", d.Stats())

	// Output:
	// small in arena: true
	// large in arena: false
	// arena in use: 0
	// {PrimaryHits:1 Fallbacks:1 Migrations:0 Failures:0}
}
