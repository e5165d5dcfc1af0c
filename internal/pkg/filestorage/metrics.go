package filestorage

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer captures telemetry for object store operations.
type Observer interface {
	RecordUpload(duration time.Duration, sizeBytes uint64, err error)
}

// PrometheusObserver exports object store metrics to Prometheus.
type PrometheusObserver struct {
	uploadDuration *prometheus.HistogramVec
	uploadErrors   prometheus.Counter
	uploadBytes    prometheus.Counter
}

// NewPrometheusObserver registers the upload metrics.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "coursehub"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	observer := &PrometheusObserver{
		uploadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "object_store",
			Name:      "upload_duration_seconds",
			Help:      "Latency of object uploads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		uploadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "object_store",
			Name:      "upload_errors_total",
			Help:      "Count of failed object uploads.",
		}),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "object_store",
			Name:      "uploaded_bytes_total",
			Help:      "Cumulative payload size successfully uploaded.",
		}),
	}

	collectors := []prometheus.Collector{observer.uploadDuration, observer.uploadErrors, observer.uploadBytes}
	for i, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, fmt.Errorf("register object store metric: %w", err)
			}
			switch i {
			case 0:
				observer.uploadDuration = are.ExistingCollector.(*prometheus.HistogramVec)
			case 1:
				observer.uploadErrors = are.ExistingCollector.(prometheus.Counter)
			case 2:
				observer.uploadBytes = are.ExistingCollector.(prometheus.Counter)
			}
		}
	}
	return observer, nil
}

// RecordUpload tracks upload duration, size, and failures.
func (o *PrometheusObserver) RecordUpload(duration time.Duration, sizeBytes uint64, err error) {
	if o == nil {
		return
	}
	if err != nil {
		o.uploadDuration.WithLabelValues("error").Observe(duration.Seconds())
		o.uploadErrors.Inc()
		return
	}
	o.uploadDuration.WithLabelValues("ok").Observe(duration.Seconds())
	o.uploadBytes.Add(float64(sizeBytes))
}

type nopObserver struct{}

func (nopObserver) RecordUpload(time.Duration, uint64, error) {}

// instrumentedStore reports every Put to an Observer
type instrumentedStore struct {
	ObjectStore
	observer Observer
	now      func() time.Time
}

// Instrument wraps store so uploads are reported to observer. A nil observer disables reporting.
func Instrument(store ObjectStore, observer Observer) ObjectStore {
	if observer == nil {
		observer = nopObserver{}
	}
	return &instrumentedStore{ObjectStore: store, observer: observer, now: time.Now}
}

func (s *instrumentedStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	start := s.now()
	err := s.ObjectStore.Put(ctx, key, data, contentType)
	s.observer.RecordUpload(s.now().Sub(start), uint64(len(data)), err)
	return err
}
