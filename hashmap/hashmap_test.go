package hashmap_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/errkind"
	"github.com/katalvlaran/campusnav/hashmap"
)

// constantHasher forces every key into one bucket so chain handling is exercised.
func constantHasher(int) uint64 { return 7 }

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -64} {
		m, err := hashmap.New[int, string](capacity)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, hashmap.ErrInvalidCapacity)
		assert.ErrorIs(t, err, errkind.ErrInvalidArgument)
	}
}

func TestNewDefault_Capacity(t *testing.T) {
	m := hashmap.NewDefault[string, int]()
	assert.Equal(t, hashmap.DefaultCapacity, m.Cap())
	assert.Zero(t, m.Len())
}

func TestPutAndGet(t *testing.T) {
	m := hashmap.NewDefault[int, string]()
	require.NoError(t, m.Put(100, "data1"))
	require.NoError(t, m.Put(200, "data2"))
	require.NoError(t, m.Put(322, "data3"))
	require.NoError(t, m.Put(443, "data4"))

	for k, want := range map[int]string{100: "data1", 200: "data2", 322: "data3", 443: "data4"} {
		got, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 4, m.Len())
}

func TestPut_DuplicateKeyLeavesValue(t *testing.T) {
	m := hashmap.NewDefault[string, int]()
	require.NoError(t, m.Put("key1", 100))

	err := m.Put("key1", 200)
	assert.ErrorIs(t, err, hashmap.ErrDuplicateKey)
	assert.ErrorIs(t, err, errkind.ErrDuplicateKey)

	got, err := m.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, 100, got)
	assert.Equal(t, 1, m.Len())
}

func TestPut_NullKey(t *testing.T) {
	m := hashmap.NewDefault[string, int]()
	err := m.Put("", 1)
	assert.ErrorIs(t, err, hashmap.ErrNullKey)
	assert.ErrorIs(t, err, errkind.ErrNullKey)
	assert.Zero(t, m.Len())

	p := hashmap.NewDefault[*int, int]()
	assert.ErrorIs(t, p.Put(nil, 1), hashmap.ErrNullKey)
}

func TestPut_ReuseAfterRemove(t *testing.T) {
	m := hashmap.NewDefault[string, int]()
	require.NoError(t, m.Put("a", 1))
	_, err := m.Remove("a")
	require.NoError(t, err)

	require.NoError(t, m.Put("a", 2))
	got, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestContainsKey(t *testing.T) {
	m := hashmap.NewDefault[int, string]()
	require.NoError(t, m.Put(100, "data1"))
	require.NoError(t, m.Put(200, "data2"))

	assert.True(t, m.ContainsKey(100))
	assert.False(t, m.ContainsKey(500))
	assert.False(t, m.ContainsKey(0))
}

func TestGet_NotFound(t *testing.T) {
	m := hashmap.NewDefault[int, string]()
	v, err := m.Get(1)
	assert.Empty(t, v)
	assert.ErrorIs(t, err, hashmap.ErrKeyNotFound)
	assert.ErrorIs(t, err, errkind.ErrNotFound)

	_, ok := m.Lookup(1)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	m := hashmap.NewDefault[int, string]()
	require.NoError(t, m.Put(100, "data1"))
	require.NoError(t, m.Put(322, "data3"))

	v, err := m.Remove(322)
	require.NoError(t, err)
	assert.Equal(t, "data3", v)
	assert.False(t, m.ContainsKey(322))
	assert.True(t, m.ContainsKey(100))
	assert.Equal(t, 1, m.Len())

	_, err = m.Remove(322)
	assert.ErrorIs(t, err, hashmap.ErrKeyNotFound)
}

func TestRemove_WithinChain(t *testing.T) {
	m, err := hashmap.New[int, int](16, hashmap.WithHasher(constantHasher))
	require.NoError(t, err)
	for k := 1; k <= 5; k++ {
		require.NoError(t, m.Put(k, k*10))
	}

	// Head, middle and tail of the single chain.
	for _, k := range []int{5, 3, 1} {
		v, err := m.Remove(k)
		require.NoError(t, err)
		assert.Equal(t, k*10, v)
	}
	assert.Equal(t, 2, m.Len())
	for _, k := range []int{2, 4} {
		v, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, k*10, v)
	}
}

func TestClear(t *testing.T) {
	m, err := hashmap.New[int, string](2)
	require.NoError(t, err)
	require.NoError(t, m.Put(1, "data1"))
	require.NoError(t, m.Put(2, "data2"))
	capBefore := m.Cap()

	m.Clear()

	assert.Zero(t, m.Len())
	assert.Equal(t, capBefore, m.Cap())
	assert.False(t, m.ContainsKey(1))
	require.NoError(t, m.Put(1, "again"))
}

func TestGrowth_CapacityTwoFourKeys(t *testing.T) {
	m, err := hashmap.New[int, string](2)
	require.NoError(t, err)

	want := map[int]string{1: "one", 2: "two", 3: "three", 4: "four"}
	for k := 1; k <= 4; k++ {
		require.NoError(t, m.Put(k, want[k]))
	}

	assert.GreaterOrEqual(t, m.Cap(), 4)
	assert.Equal(t, 4, m.Len())
	for k, v := range want {
		got, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestGrowth_Threshold(t *testing.T) {
	m, err := hashmap.New[int, int](10)
	require.NoError(t, err)

	// 7/10 stays below the load factor.
	for k := 1; k <= 7; k++ {
		require.NoError(t, m.Put(k, k))
	}
	assert.Equal(t, 10, m.Cap())

	// 8/10 reaches it.
	require.NoError(t, m.Put(8, 8))
	assert.Equal(t, 20, m.Cap())
}

func TestGrowth_DoesNotTriggerOnFailedPut(t *testing.T) {
	m, err := hashmap.New[int, int](4)
	require.NoError(t, err)
	require.NoError(t, m.Put(1, 1))
	require.NoError(t, m.Put(2, 2))
	require.NoError(t, m.Put(3, 3))
	assert.Equal(t, 4, m.Cap())

	assert.ErrorIs(t, m.Put(3, 30), hashmap.ErrDuplicateKey)
	assert.Equal(t, 4, m.Cap())
}

func TestUpsert(t *testing.T) {
	m := hashmap.NewDefault[string, float64]()

	old, replaced, err := m.Upsert("D", 5)
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Zero(t, old)

	old, replaced, err = m.Upsert("D", 3)
	require.NoError(t, err)
	assert.True(t, replaced)
	assert.Equal(t, 5.0, old)

	got, err := m.Get("D")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
	assert.Equal(t, 1, m.Len())

	// Put keeps refusing the key Upsert created.
	assert.ErrorIs(t, m.Put("D", 1), hashmap.ErrDuplicateKey)

	_, _, err = m.Upsert("", 1)
	assert.ErrorIs(t, err, hashmap.ErrNullKey)
}

func TestUpsert_Grows(t *testing.T) {
	m, err := hashmap.New[int, int](1)
	require.NoError(t, err)
	_, _, err = m.Upsert(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Cap())
}

func TestRangeAndKeys(t *testing.T) {
	m := hashmap.NewDefault[string, int](hashmap.WithHasher(hashmap.StringHasher))
	for i := 1; i <= 10; i++ {
		require.NoError(t, m.Put(fmt.Sprintf("k%d", i), i))
	}

	sum := 0
	m.Range(func(_ string, v int) bool {
		sum += v
		return true
	})
	assert.Equal(t, 55, sum)
	assert.Len(t, m.Keys(), 10)

	visited := 0
	m.Range(func(string, int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

// TestRandomOps_MatchesBuiltinMap drives Put/Upsert/Remove randomly and
// checks Len and every binding against a plain Go map.
func TestRandomOps_MatchesBuiltinMap(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	m, err := hashmap.New[int, int](3)
	require.NoError(t, err)
	ref := make(map[int]int)

	for i := 0; i < 5000; i++ {
		k := 1 + r.Intn(300)
		switch r.Intn(3) {
		case 0:
			err := m.Put(k, i)
			if _, ok := ref[k]; ok {
				require.ErrorIs(t, err, hashmap.ErrDuplicateKey)
			} else {
				require.NoError(t, err)
				ref[k] = i
			}
		case 1:
			_, _, err := m.Upsert(k, i)
			require.NoError(t, err)
			ref[k] = i
		default:
			v, err := m.Remove(k)
			if want, ok := ref[k]; ok {
				require.NoError(t, err)
				require.Equal(t, want, v)
				delete(ref, k)
			} else {
				require.ErrorIs(t, err, hashmap.ErrKeyNotFound)
			}
		}
		require.Equal(t, len(ref), m.Len())
	}

	for k, want := range ref {
		got, err := m.Get(k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStringHasher_Deterministic(t *testing.T) {
	assert.Equal(t, hashmap.StringHasher("Union South"), hashmap.StringHasher("Union South"))
	assert.NotEqual(t, hashmap.StringHasher("A"), hashmap.StringHasher("B"))
}
