package access_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldpath/access"
	"fieldpath/value"
)

func TestDeriveTable(t *testing.T) {
	tbl, err := access.Derive(&Config{})
	require.NoError(t, err)

	assert.Equal(t, "Config", tbl.TypeName())
	assert.Equal(t, []string{"motion", "limits", "version"}, tbl.FieldNames())

	motion, ok := tbl.Lookup("motion")
	require.True(t, ok)
	require.True(t, motion.IsNested())
	assert.Equal(t, value.KindNested, motion.Kind())
	assert.Equal(t, []string{"max_vertical_velocity", "max_rotation"}, motion.Nested().FieldNames())

	version, ok := tbl.Lookup("version")
	require.True(t, ok)
	assert.Equal(t, value.KindText, version.Kind())
}

func TestDeriveRequiresStructPointer(t *testing.T) {
	_, err := access.Derive(Config{})
	assert.ErrorContains(t, err, "pointer to struct")

	_, err = access.Derive(nil)
	assert.ErrorContains(t, err, "pointer to struct")

	n := int64(3)
	_, err = access.Derive(&n)
	assert.ErrorContains(t, err, "pointer to struct")
}

func TestDeriveFieldNaming(t *testing.T) {
	type record struct {
		Tagged    string `field:"tagged_name"`
		FromJSON  string `json:"from_json,omitempty"`
		Plain     string
		Skipped   string `field:"-"`
		JSONMinus string `json:"-"`
		hidden    string
	}

	tbl, err := access.Derive(&record{})
	require.NoError(t, err)

	assert.Equal(t, []string{"tagged_name", "from_json", "Plain"}, tbl.FieldNames())
}

func TestDeriveNamedLeafTypes(t *testing.T) {
	type velocity float64
	type mode string
	type record struct {
		Speed velocity `field:"speed"`
		Mode  mode     `field:"mode"`
	}

	rec := record{Speed: 12.5, Mode: "auto"}

	got, err := access.Get(&rec, "speed")
	require.NoError(t, err)
	assert.True(t, got.Equal(value.Double(12.5)))

	require.NoError(t, access.Set(&rec, "mode", value.Text("manual")))
	assert.Equal(t, mode("manual"), rec.Mode)
}

func TestDeriveUnsupportedLeafType(t *testing.T) {
	type withSlice struct {
		Items []int64 `field:"items"`
	}

	type withNarrowInt struct {
		Count int32 `field:"count"`
	}

	type withPointer struct {
		Sub *Motion `field:"sub"`
	}

	_, err := access.Derive(&withSlice{})
	assert.ErrorContains(t, err, "unsupported leaf type")

	_, err = access.Derive(&withNarrowInt{})
	assert.ErrorContains(t, err, "unsupported leaf type")

	_, err = access.Derive(&withPointer{})
	assert.ErrorContains(t, err, "unsupported leaf type")
}

func TestDeriveDuplicateNames(t *testing.T) {
	type record struct {
		A string `field:"name"`
		B string `field:"name"`
	}

	_, err := access.Derive(&record{})
	assert.ErrorContains(t, err, `duplicate field "name"`)
}

func TestDeriveCachesPerType(t *testing.T) {
	a := access.MustDerive(&Config{})
	b := access.MustDerive(&Config{})
	assert.Same(t, a, b, "one table per type for the process lifetime")

	// nested tables are shared the same way
	ma, _ := a.Lookup("motion")
	mb := access.MustDerive(&Motion{})
	assert.Same(t, ma.Nested(), mb)
}

func TestDeriveConcurrent(t *testing.T) {
	type fresh struct {
		X float64 `field:"x"`
	}

	const goroutines = 16

	tables := make([]*access.Table, goroutines)

	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			tables[i] = access.MustDerive(&fresh{})
		}()
	}

	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, tables[0], tables[i])
	}
}

func TestMustDerivePanics(t *testing.T) {
	assert.Panics(t, func() {
		access.MustDerive(Config{})
	})
}
