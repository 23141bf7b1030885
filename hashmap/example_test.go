package hashmap_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/hashmap"
)

// ExampleMap_Put shows that Put refuses to rebind a key.
func ExampleMap_Put() {
	m := hashmap.NewDefault[string, int](hashmap.WithHasher(hashmap.StringHasher))
	_ = m.Put("Library", 1)

	err := m.Put("Library", 2)
	fmt.Println(errors.Is(err, hashmap.ErrDuplicateKey))

	v, _ := m.Get("Library")
	fmt.Println(v)
	// Output:
	// true
	// 1
}

// ExampleNew_growth shows the bucket array doubling once the load factor is reached.
func ExampleNew_growth() {
	m, _ := hashmap.New[int, string](2)
	fmt.Println(m.Cap())
	_ = m.Put(1, "one")
	_ = m.Put(2, "two")
	fmt.Println(m.Cap(), m.Len())
	// Output:
	// 2
	// 4 2
}
