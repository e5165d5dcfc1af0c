package filestorage

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	err error
}

func (s stubStore) Put(context.Context, string, []byte, string) error { return s.err }

func (stubStore) PublicURL(key string) string { return "mem://" + key }

func TestInstrumentRecordsUploads(t *testing.T) {
	reg := prometheus.NewRegistry()
	observer, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	ok := Instrument(stubStore{}, observer)
	require.NoError(t, ok.Put(context.Background(), "a", []byte("12345"), "text/plain"))
	assert.Equal(t, "mem://a", ok.PublicURL("a"))

	failing := Instrument(stubStore{err: errors.New("boom")}, observer)
	require.Error(t, failing.Put(context.Background(), "b", []byte("1"), "text/plain"))

	assert.Equal(t, float64(5), testutil.ToFloat64(observer.uploadBytes))
	assert.Equal(t, float64(1), testutil.ToFloat64(observer.uploadErrors))
}

func TestNewPrometheusObserverReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)
	second, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	second.RecordUpload(0, 7, nil)
	assert.Equal(t, float64(7), testutil.ToFloat64(first.uploadBytes))
}

func TestInstrumentWithoutObserver(t *testing.T) {
	store := Instrument(stubStore{}, nil)
	assert.NoError(t, store.Put(context.Background(), "a", nil, "text/plain"))
}
