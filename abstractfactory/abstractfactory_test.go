package abstractfactory_test

import (
	"sync"
	"testing"

	"github.com/designlab/creational/abstractfactory" // package under test
	"github.com/stretchr/testify/assert"              // assertion library
	"github.com/stretchr/testify/require"
)

// TestSimpleFactory_FamilyMapping verifies the fixed simple family:
// curved → *Circle, straight → *Square, with strictly increasing IDs.
func TestSimpleFactory_FamilyMapping(t *testing.T) {
	seq := abstractfactory.NewSequence()
	factory := abstractfactory.NewSimpleFactory(abstractfactory.WithSequence(seq))

	curved := factory.NewCurved()
	straight := factory.NewStraight()
	again := factory.NewCurved()

	require.IsType(t, &abstractfactory.Circle{}, curved)
	require.IsType(t, &abstractfactory.Square{}, straight)
	require.IsType(t, &abstractfactory.Circle{}, again)

	assert.Equal(t, uint64(0), curved.ID())
	assert.Equal(t, uint64(1), straight.ID())
	assert.Equal(t, uint64(2), again.ID())

	assert.Equal(t, "circle 0: draw", curved.Draw())
	assert.Equal(t, "square 1: draw", straight.Draw())
	assert.Equal(t, "circle 2: draw", again.Draw())
}

// TestRobustFactory_FamilyMapping verifies the fixed robust family:
// curved → *Ellipse, straight → *Rectangle.
func TestRobustFactory_FamilyMapping(t *testing.T) {
	seq := abstractfactory.NewSequence()
	factory := abstractfactory.NewRobustFactory(abstractfactory.WithSequence(seq))

	curved := factory.NewCurved()
	straight := factory.NewStraight()

	require.IsType(t, &abstractfactory.Ellipse{}, curved)
	require.IsType(t, &abstractfactory.Rectangle{}, straight)

	assert.Equal(t, "ellipse 0: draw", curved.Draw())
	assert.Equal(t, "rectangle 1: draw", straight.Draw())
}

// TestSharedSequence_AcrossFactories verifies that two factories sharing one
// Sequence interleave unique, strictly increasing identifiers.
func TestSharedSequence_AcrossFactories(t *testing.T) {
	seq := abstractfactory.NewSequence()
	simple := abstractfactory.NewSimpleFactory(abstractfactory.WithSequence(seq))
	robust := abstractfactory.NewRobustFactory(abstractfactory.WithSequence(seq))

	shapes := []abstractfactory.Shape{
		simple.NewCurved(),
		robust.NewStraight(),
		simple.NewStraight(),
		robust.NewCurved(),
	}

	for i, s := range shapes {
		assert.Equal(t, uint64(i), s.ID(), "shape %d", i)
	}
}

// TestDefaultSequence_StrictlyIncreasing verifies the zero-config path.
// Absolute values depend on prior package use, so only ordering is asserted.
func TestDefaultSequence_StrictlyIncreasing(t *testing.T) {
	factory := abstractfactory.NewSimpleFactory()

	prev := factory.NewCurved().ID()
	for i := 0; i < 10; i++ {
		next := factory.NewStraight().ID()
		require.Greater(t, next, prev)
		prev = next
	}
}

// TestSequence_ConcurrentUniqueness hands out identifiers from many
// goroutines and verifies that none repeat.
func TestSequence_ConcurrentUniqueness(t *testing.T) {
	seq := abstractfactory.NewSequence()
	const goroutines, perG = 8, 250

	ids := make(chan uint64, goroutines*perG)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done() // signal completion
			for i := 0; i < perG; i++ {
				ids <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, goroutines*perG)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, goroutines*perG)
}
