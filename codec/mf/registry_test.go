package mf

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ugparu/mfcore"
	"github.com/ugparu/mfcore/utils"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	id := VideoSubtype(22)
	require.NoError(t, r.Register("MFVideoFormat_RGB32", id))

	got, err := r.Lookup("MFVideoFormat_RGB32")
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = r.Lookup("MFVideoFormat_P010")
	var target utils.NotFoundError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "MFVideoFormat_P010", target.Descriptor)
}

func TestRegistryRejects(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register("a", VideoSubtype(1)))

	var target utils.InvalidArgumentError
	require.ErrorAs(t, r.Register("a", VideoSubtype(2)), &target)
	require.ErrorAs(t, r.Register("", VideoSubtype(2)), &target)
	require.ErrorAs(t, r.Register("b", uuid.Nil), &target)
	require.Panics(t, func() { r.MustRegister("a", VideoSubtype(3)) })

	got, err := r.Lookup("a")
	require.NoError(t, err)
	require.Equal(t, VideoSubtype(1), got)
	require.Equal(t, 1, r.Len())
}

func TestRegistryLoadYAML(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	doc := `
MFVideoFormat_NV12: 3231564e-0000-0010-8000-00aa00389b71
MFVideoFormat_ARGB32: 00000015-0000-0010-8000-00aa00389b71
`
	require.NoError(t, r.LoadYAML(strings.NewReader(doc)))
	require.Equal(t, []Descriptor{"MFVideoFormat_ARGB32", "MFVideoFormat_NV12"}, r.Descriptors())

	nv12, err := VideoSubtypeFromFourCC("NV12")
	require.NoError(t, err)
	got, err := r.Lookup("MFVideoFormat_NV12")
	require.NoError(t, err)
	require.Equal(t, nv12, got)

	require.NoError(t, r.LoadYAML(strings.NewReader("")))
	require.Equal(t, 2, r.Len())
}

func TestRegistryLoadYAMLAllOrNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "bad_guid", doc: "a: 00000015-0000-0010-8000-00aa00389b71\nb: not-a-guid\n"},
		{name: "duplicate", doc: "a: 00000015-0000-0010-8000-00aa00389b71\nexisting: 00000016-0000-0010-8000-00aa00389b71\n"},
		{name: "nil_guid", doc: "a: 00000000-0000-0000-0000-000000000000\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			r.MustRegister("existing", VideoSubtype(1))

			err := r.LoadYAML(strings.NewReader(tt.doc))
			var target utils.InvalidArgumentError
			require.ErrorAs(t, err, &target)
			require.Equal(t, []Descriptor{"existing"}, r.Descriptors())
		})
	}

	r := NewRegistry()
	require.Error(t, r.LoadYAML(strings.NewReader("- not\n- a mapping\n")))
}

func TestRegistryMarshalJSON(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.MustRegister("b", VideoSubtype(22))
	r.MustRegister("a", VideoSubtype(21))

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"a": "00000015-0000-0010-8000-00aa00389b71",
		"b": "00000016-0000-0010-8000-00aa00389b71"
	}`, string(data))
}

func TestRegisterPixelFormats(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, RegisterPixelFormats(r))
	require.Equal(t, len(mfcore.PixelFormats()), r.Len())

	for _, pf := range mfcore.PixelFormats() {
		want, err := SubtypeFor(pf)
		require.NoError(t, err)
		got, err := r.Lookup(Descriptor(pf.String()))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	var target utils.InvalidArgumentError
	require.ErrorAs(t, RegisterPixelFormats(r), &target)
}

func TestRegistryConcurrentLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, RegisterPixelFormats(r))

	formats := mfcore.PixelFormats()
	errs := make([]error, 16)

	var wg sync.WaitGroup
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = r.Lookup(Descriptor(formats[i%len(formats)].String()))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	desc := Descriptor("mf_test.DefaultRegistry")
	id := VideoSubtype(0x7F7F7F7F)
	require.NoError(t, Register(desc, id))

	got, err := IdentifierFor(desc)
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = IdentifierFor("mf_test.Missing")
	var target utils.NotFoundError
	require.ErrorAs(t, err, &target)
}
