package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	SF2Renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_sf2_renders_total",
		Help: "SF2 render attempts by outcome.",
	}, []string{"outcome"})

	SF2RenderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "attendance_sf2_render_seconds",
		Help:    "Time spent filling and serializing an SF2 workbook.",
		Buckets: prometheus.DefBuckets,
	})

	ExportJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_export_jobs_total",
		Help: "Async SF2 export jobs by final status.",
	}, []string{"status"})

	ReportCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_report_cache_total",
		Help: "Report cache lookups by result.",
	}, []string{"result"})
)
