package explorer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultDenied  = "denied"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fileportal_uploads_total",
		Help: "Number of upload workflows by result",
	}, []string{"result"})

	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fileportal_upload_bytes_total",
		Help: "Bytes written to the file store by uploads",
	})

	deletesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fileportal_deletes_total",
		Help: "Number of delete workflows by result",
	}, []string{"result"})
)
