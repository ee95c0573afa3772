package base

import (
	"context"
	"encoding/json"

	"github.com/iqoption/yabs-frames/common/format"
	"github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"gopkg.in/olivere/elastic.v5"
)

const (
	FramesIndex  = "frames"
	FrameType    = "frame"
	ReportsIndex = "reports"
	ReportType   = "report"
)

// Storage is what the processor needs from the repository
type Storage interface {
	IsExist(fingerprint string) (bool, error)
	AddFrame(doc *format.FrameDoc) error
	AddReport(report *format.Report) (string, error)
}

type Repository struct {
	db    *elastic.Client
	cache Cashe
}

func (r *Repository) putInCache(fingerprint, date string) {
	err := r.cache.Set(fingerprint, date)
	if err != nil {
		log.WithError(err).Warning("Can't put frame fingerprint in cache")
	}
}

func (r *Repository) getFromCache(fingerprint string) string {
	v, err := r.cache.Get(fingerprint)
	if err != nil {
		return ""
	}

	return v
}

// AddFrame is idempotent, the document id is the fingerprint
func (r *Repository) AddFrame(doc *format.FrameDoc) error {
	_, err := r.db.
		Index().
		Index(FramesIndex).
		Type(FrameType).
		Id(doc.Fingerprint).
		BodyJson(doc).
		Do(context.Background())

	if err == nil {
		r.putInCache(doc.Fingerprint, doc.DateAdded)
	}

	return err
}

// IsExist trusts a cached fingerprint until the entry expires
func (r *Repository) IsExist(fingerprint string) (bool, error) {
	if r.getFromCache(fingerprint) != "" {
		return true, nil
	}

	doc, err := r.GetFrame(fingerprint)
	if elastic.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return doc != nil, nil
}

func (r *Repository) GetFrame(fingerprint string) (*format.FrameDoc, error) {
	get, err := r.db.Get().
		Index(FramesIndex).
		Type(FrameType).
		Id(fingerprint).
		Do(context.Background())
	if err != nil {
		return nil, err
	}

	var doc format.FrameDoc
	err = json.Unmarshal(*get.Source, &doc)
	if err != nil {
		log.WithError(err).Error("Can't deserialize frame")
		return nil, err
	}

	r.putInCache(fingerprint, doc.DateAdded)
	return &doc, nil
}

func (r *Repository) AddReport(report *format.Report) (string, error) {
	id := report.Id
	if id == "" {
		id = uuid.NewV4().String()
	}

	_, err := r.db.
		Index().
		Index(ReportsIndex).
		Type(ReportType).
		Id(id).
		BodyJson(report).
		Do(context.Background())

	if err != nil {
		log.WithFields(log.Fields{
			"id":    id,
			"error": err,
		}).Error("Can't insert report")
	}

	return id, err
}

func NewRepository(connectionUrl string, c Cashe, options ...elastic.ClientOptionFunc) (*Repository, error) {
	options = append([]elastic.ClientOptionFunc{elastic.SetURL(connectionUrl)}, options...)
	b, err := elastic.NewClient(options...)
	if err != nil {
		return nil, err
	}

	return &Repository{
		db:    b,
		cache: c,
	}, nil
}
