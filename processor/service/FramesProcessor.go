package service

import (
	"time"

	"github.com/go-errors/errors"
	"github.com/iqoption/yabs-frames/common/data/base"
	"github.com/iqoption/yabs-frames/common/format"
	"github.com/iqoption/yabs-frames/common/frames"
	"github.com/iqoption/yabs-frames/common/langs"
	"github.com/iqoption/yabs-frames/common/task"
	"github.com/iqoption/yabs-frames/common/utils"
	"github.com/iqoption/yabs-frames/processor/cfg"
	"github.com/iqoption/yabs-frames/processor/pipeline"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type FramesProcessor struct {
	storage base.Storage
	options langs.Options
	workers int
	pline   []pipeline.Stage
	metrics *Metrics
}

func (f *FramesProcessor) initFramesProcessor(c cfg.Config, storage base.Storage, m *Metrics) {
	f.storage = storage
	f.metrics = m
	f.options = langs.Options{PreContextOrder: c.PreContextOrder()}

	f.workers = c.Workers()
	if f.workers < 1 {
		f.workers = 1
	}

	f.pline = []pipeline.Stage{
		&pipeline.GroupFrames{},
		pipeline.NewRx(c.SignatureBlackList()),
		&pipeline.SignatureAndSource{},
	}

	log.WithFields(log.Fields{
		"workers":           f.workers,
		"pre_context_order": f.options.PreContextOrder,
	}).Debug("Frames processor initialized")
}

func (f *FramesProcessor) handleFrames(t *task.Frames) (*format.Report, error) {
	start := time.Now()
	defer func() {
		f.metrics.duration.Observe(time.Since(start).Seconds())
	}()

	info, err := format.InfoFromJson(t.Info)
	if err != nil {
		info = &format.Info{}
	}

	adapters := f.decode(t)
	canonical, fingerprints := f.canonicalize(adapters)

	report := &format.Report{
		Id:           t.ReportId,
		UserId:       info.GetUserId(),
		BuildVersion: info.Version,
		Platform:     info.Platform,
		DateAdded:    t.Time,
		Frames:       canonical,
		Fingerprints: fingerprints,
		Rejected:     len(t.Frames) - len(adapters),
	}

	pipeline.Run(f.pline, report)

	err = f.storeFrames(report)
	if err != nil {
		f.metrics.reports.WithLabelValues("error").Inc()
		return nil, err
	}

	report.Id, err = f.storage.AddReport(report)
	if err != nil {
		f.metrics.reports.WithLabelValues("error").Inc()
		return nil, errors.WrapPrefix(err, "can't store report", 0)
	}

	f.metrics.reports.WithLabelValues("ok").Inc()
	log.WithFields(log.Fields{
		"id":        report.Id,
		"frames":    len(report.Frames),
		"rejected":  report.Rejected,
		"signature": report.Signature,
	}).Debug("Processed report")

	return report, nil
}

// decode drops frames it can't read, the rest of the report is still useful
func (f *FramesProcessor) decode(t *task.Frames) []frames.Adapter {
	adapters, errs := langs.DecodeAll(t.Frames, f.options)

	accepted := make([]frames.Adapter, 0, len(adapters))
	for i, a := range adapters {
		if errs[i] != nil {
			f.metrics.rejected.Inc()
			log.WithFields(log.Fields{
				"report": t.ReportId,
				"frame":  utils.Shorten(string(t.Frames[i]), 256),
				"error":  errs[i],
			}).Warning("Can't decode frame")
			continue
		}
		accepted = append(accepted, a)
	}

	return accepted
}

func (f *FramesProcessor) canonicalize(adapters []frames.Adapter) ([]frames.Frame, []string) {
	canonical := make([]frames.Frame, len(adapters))
	fingerprints := make([]string, len(adapters))

	var g errgroup.Group
	g.SetLimit(f.workers)
	for i, a := range adapters {
		i, a := i, a
		g.Go(func() error {
			canonical[i] = a.ToCanonicalFrame()
			fingerprints[i] = a.FrameId()
			return nil
		})
	}
	_ = g.Wait()

	for i := range canonical {
		f.metrics.frames.WithLabelValues(canonical[i].Lang).Inc()
	}

	return canonical, fingerprints
}

func (f *FramesProcessor) storeFrames(report *format.Report) error {
	seen := make(map[string]struct{}, len(report.Fingerprints))

	for i, fingerprint := range report.Fingerprints {
		if _, ok := seen[fingerprint]; ok {
			continue
		}
		seen[fingerprint] = struct{}{}

		exist, err := f.storage.IsExist(fingerprint)
		if err != nil {
			return errors.WrapPrefix(err, "can't check frame", 0)
		}

		if exist {
			f.metrics.known.Inc()
			continue
		}

		err = f.storage.AddFrame(&format.FrameDoc{
			Frame:       report.Frames[i],
			Fingerprint: fingerprint,
			DateAdded:   report.DateAdded,
		})
		if err != nil {
			return errors.WrapPrefix(err, "can't store frame", 0)
		}
		f.metrics.stored.Inc()
	}

	return nil
}
