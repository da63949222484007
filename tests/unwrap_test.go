package tests

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/canndrew/unwrap/pkg/unwrap"
	"github.com/canndrew/unwrap/pkg/unwrap/banner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentUnwrapsAreIndependent hammers the happy paths from many
// goroutines at once; nothing is shared, so every call must come back with
// its own payload.
func TestConcurrentUnwrapsAreIndependent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i // per-iteration binding, as under the original go 1.25 directive
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				want := i*1000 + j
				if got := unwrap.Ok[int, string](want).Unwrap(); got != want {
					return fmt.Errorf("unwrap returned %d, expected %d", got, want)
				}
				if got := unwrap.Some(want).Unwrapf("worker %d", i); got != want {
					return fmt.Errorf("unwrapf returned %d, expected %d", got, want)
				}
				if got := unwrap.Err[int, int](want).UnwrapErr(); got != want {
					return fmt.Errorf("unwrap_err returned %d, expected %d", got, want)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestVerboseUnwrapMatchesCompose proves the method path emits exactly what
// the pure composer emits for the equivalent request.
func TestVerboseUnwrapMatchesCompose(t *testing.T) {
	site := banner.Site{Scope: "pipeline.Stage", File: "stage.go", Line: 9, Column: 2}
	msg := "stage exploded"

	var buf bytes.Buffer
	restore := banner.ReplaceDefault(banner.New(&buf, nil))
	defer restore()
	func() {
		defer func() { _ = recover() }()
		unwrap.Err[int, int](123).VerboseUnwrap(unwrap.Some(msg), site)
	}()

	want := banner.Compose(banner.Request{
		Op:      banner.OpUnwrap,
		Label:   "Result::Err",
		Site:    site,
		Message: &msg,
		Payload: unwrap.DebugString(123),
	})
	assert.Equal(t, want, buf.String())
}

// sampleSet is a stand-in for a third-party shape joining the unwrap
// contract with its own classification label.
type sampleSet struct {
	samples []float64
}

func (s sampleSet) VerboseUnwrap(message unwrap.Option[string], site banner.Site) float64 {
	if len(s.samples) > 0 {
		return s.samples[0]
	}
	req := banner.Request{
		Op:    banner.OpUnwrap,
		Label: "SampleSet::Empty",
		Site:  site,
	}
	if m, ok := message.Get(); ok {
		req.Message = &m
	}
	banner.Default().Abort(req)
	panic("unreachable")
}

// firstSample extracts through the interface, the way a generic helper
// would. Here captures its own caller, so the reported site is the
// extraction line inside this helper.
func firstSample(u unwrap.Unwrappable[float64]) float64 {
	return u.VerboseUnwrap(unwrap.None[string](), unwrap.Here())
}

func TestCustomShapeThroughInterface(t *testing.T) {
	assert.Equal(t, 4.5, firstSample(sampleSet{samples: []float64{4.5, 6.25}}))

	var buf bytes.Buffer
	restore := banner.ReplaceDefault(banner.New(&buf, nil))
	defer restore()
	var panicked any
	func() {
		defer func() { panicked = recover() }()
		firstSample(sampleSet{})
	}()

	require.NotNil(t, panicked)
	assert.Equal(t, "unwrap! called on SampleSet::Empty", panicked)
	text := buf.String()
	assert.Contains(t, text, "!   unwrap! called on SampleSet::Empty")
	assert.Contains(t, text, "unwrap_test.go:")
	assert.Contains(t, text, "in github.com/canndrew/unwrap/tests.firstSample")
}

// TestLongLabelGrowsBanner checks the box stretches for labels far beyond
// the base width instead of truncating them.
func TestLongLabelGrowsBanner(t *testing.T) {
	label := "Registry::" + strings.Repeat("VeryLongVariantName", 8)

	var buf bytes.Buffer
	restore := banner.ReplaceDefault(banner.New(&buf, nil))
	defer restore()
	func() {
		defer func() { _ = recover() }()
		banner.Default().Abort(banner.Request{
			Op:    banner.OpUnwrap,
			Label: label,
			Site:  banner.Site{Scope: "m.F", File: "f.go", Line: 1, Column: 1},
		})
	}()

	lines := strings.Split(buf.String(), "\n")
	require.Greater(t, len(lines), 4)
	header := "unwrap! called on " + label
	assert.Len(t, lines[1], len(header)+6)
	assert.Len(t, lines[3], len(header)+6)
	assert.True(t, strings.HasSuffix(lines[2], " !"), "content line kept its right padding")
}
