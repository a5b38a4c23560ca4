package bridge

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type BridgeTestEnviron struct {
	suite.Suite
	path string
}

// listen for 'go test' command --> run test methods
func TestBridgeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.bridge")
	defer teardown()
	suite.Run(t, new(BridgeTestEnviron))
}

// run once, before test suite methods
func (env *BridgeTestEnviron) SetupSuite() {
	env.path = testfont.GoRegular(env.T())
}

// run after each test: no test may leave fonts behind
func (env *BridgeTestEnviron) TearDownTest() {
	env.Equal(0, Live(), "expected no live font handles")
}

// --- Tests -----------------------------------------------------------------

func (env *BridgeTestEnviron) TestCreateDestroy() {
	h := CreateFont(env.path, 0)
	env.Require().NotZero(h)
	env.Equal(1, Live())
	env.Greater(UnitsPerEm(h), 0)
	DestroyFont(h)
	env.Equal(0, Live())
}

func (env *BridgeTestEnviron) TestCreateFailures() {
	for _, path := range []string{
		"",
		filepath.Join(env.T().TempDir(), "missing.ttf"),
		testfont.Empty(env.T()),
		testfont.Garbage(env.T()),
		testfont.Truncated(env.T(), 64),
	} {
		env.Zero(CreateFont(path, 0), "expected no handle for %q", path)
	}
	env.Zero(CreateFont(env.path, 1), "expected no handle for face index 1")
	env.Equal(0, Live())
}

func (env *BridgeTestEnviron) TestZeroUnitsPerEm() {
	h := CreateFont(testfont.ZeroUpem(env.T()), 0)
	env.Require().NotZero(h)
	defer DestroyFont(h)
	env.Equal(hbshape.DefaultUnitsPerEm, UnitsPerEm(h))
}

func (env *BridgeTestEnviron) TestNullHandle() {
	env.Zero(UnitsPerEm(0))
	DestroyFont(0)
	out := make([]hbshape.Glyph, 8)
	env.Zero(Shape(0, []byte("Hello"), "", 0, 0, out, len(out)))
}

func (env *BridgeTestEnviron) TestStaleHandle() {
	h := CreateFont(env.path, 0)
	env.Require().NotZero(h)
	DestroyFont(h)
	DestroyFont(h)
	env.Zero(UnitsPerEm(h), "destroyed handle must not resolve")
	g := CreateFont(env.path, 0) // reuses the slot
	env.Require().NotZero(g)
	env.NotEqual(h, g, "reused slot must carry a new generation")
	env.Zero(UnitsPerEm(h), "stale handle must not reach the new font")
	env.Greater(UnitsPerEm(g), 0)
	DestroyFont(g)
}

func (env *BridgeTestEnviron) TestShapeContract() {
	h := CreateFont(env.path, 0)
	env.Require().NotZero(h)
	defer DestroyFont(h)
	out := make([]hbshape.Glyph, 16)
	latn := uint32(hbshape.MakeTag("Latn"))
	env.Zero(Shape(h, []byte("Hello"), "en", latn, 0, out, 0), "capacity 0")
	env.Zero(Shape(h, []byte("Hello"), "en", latn, 0, out, -3), "negative capacity")
	env.Zero(Shape(h, nil, "en", latn, 0, out, len(out)), "nil text")
	env.Zero(Shape(h, []byte("Hello"), "en", latn, 0, nil, 5), "nil output")
	n := Shape(h, []byte("Hello"), "en", latn, 0, out, len(out))
	env.Require().Equal(5, n)
	for i := 0; i < n; i++ {
		env.Equal(uint32(i), out[i].Cluster)
	}
	env.Equal(3, Shape(h, []byte("Hello"), "en", latn, 0, out, 3), "capacity limits count")
	env.Equal(5, Shape(h, []byte("Hello"), "en", latn, 0, out[:5], 100), "capacity is clamped to buffer")
	env.Equal(2, Shape(h, []byte("He\x00llo"), "en", latn, 0, out, len(out)), "text ends at NUL")
	n = Shape(h, []byte("Hello"), "en", latn, 1, out, len(out))
	env.Require().Equal(5, n)
	env.Equal(uint32(4), out[0].Cluster, "RTL output starts with last cluster")
}

func (env *BridgeTestEnviron) TestExports() {
	fns := Exports()
	h := fns.CreateFont(env.path, -1)
	env.Require().NotZero(h)
	out := make([]hbshape.Glyph, 4)
	env.Equal(4, fns.Shape(h, []byte("abcdefghij"), "", 0, 0, out, 4))
	env.Equal(UnitsPerEm(h), fns.UnitsPerEm(h))
	fns.DestroyFont(h)
}

func (env *BridgeTestEnviron) TestConcurrentShaping() {
	h := CreateFont(env.path, 0)
	env.Require().NotZero(h)
	defer DestroyFont(h)
	want := make([]hbshape.Glyph, 32)
	n := Shape(h, []byte("concurrent callers"), "en", 0, 0, want, len(want))
	env.Require().Greater(n, 0)
	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 20; k++ {
				out := make([]hbshape.Glyph, 32)
				m := Shape(h, []byte("concurrent callers"), "en", 0, 0, out, len(out))
				if m != n || out[m-1] != want[n-1] {
					errs <- m
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for m := range errs {
		env.Failf("concurrent shaping differs", "got %d glyphs, expected %d", m, n)
	}
}
