package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/netclass/internal/classify"
	"github.com/HerbHall/netclass/internal/testutil"
	"github.com/HerbHall/netclass/pkg/models"
)

// testFilter is a minimal filter for testing.
type testFilter struct {
	name string
	err  error
}

func (f *testFilter) Name() string        { return f.name }
func (f *testFilter) Description() string { return "test filter " + f.name }
func (f *testFilter) Apply(facts *models.Facts) (any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return facts.Len(), nil
}

func TestRegister(t *testing.T) {
	reg := NewRegistry(testutil.Logger(t))

	f := &testFilter{name: "alpha"}
	require.NoError(t, reg.Register(f))

	// Duplicate registration should fail.
	assert.Error(t, reg.Register(f))
}

func TestRegisterEmptyName(t *testing.T) {
	reg := NewRegistry(nil)
	assert.Error(t, reg.Register(&testFilter{}))
}

func TestNamesInRegistrationOrder(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&testFilter{name: "b"}))
	require.NoError(t, reg.Register(&testFilter{name: "a"}))

	assert.Equal(t, []string{"b", "a"}, reg.Names())
	assert.Len(t, reg.All(), 2)

	got, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name())
}

func TestApplyUnknown(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := reg.Apply("missing", models.NewFacts())
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestApplyPassesErrorThrough(t *testing.T) {
	reg := NewRegistry(nil)
	want := errors.New("filter exploded")
	require.NoError(t, reg.Register(&testFilter{name: "bad", err: want}))

	_, err := reg.Apply("bad", models.NewFacts())
	assert.Equal(t, want, err)
}

func TestInterfacesFilter(t *testing.T) {
	reg := NewRegistry(testutil.Logger(t))
	require.NoError(t, reg.Register(NewInterfacesFilter(nil)))

	out, err := reg.Apply(InterfacesFilterName, testutil.NewFacts(
		testutil.NewInterface("eth0", testutil.WithIPv4("10.0.0.5", "10.0.0.0", "24")),
	))
	require.NoError(t, err)

	groups, ok := out.(*models.InterfaceGroups)
	require.True(t, ok, "Apply returned %T", out)
	assert.Equal(t, []models.InterfaceRecord{{Name: "eth0", Network: "10.0.0.0/24", IP: "10.0.0.5"}}, groups.Private)
}

func TestInterfacesFilter_DiscoveryError(t *testing.T) {
	f := NewInterfacesFilter(classify.New())
	_, err := f.Apply(models.NewFacts())
	assert.ErrorIs(t, err, classify.ErrDiscovery)
}
