package devices

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist/pkg/common"
)

// Lister walks a device set and produces records.
type Lister struct {
	enumerator Enumerator
	filter     Filter
	log        *logrus.Entry
}

type Option func(*Lister)

// WithFilter overrides DefaultFilter.
func WithFilter(f Filter) Option {
	return func(l *Lister) {
		l.filter = f
	}
}

func WithLogger(entry *logrus.Entry) Option {
	return func(l *Lister) {
		l.log = entry
	}
}

func NewLister(e Enumerator, opts ...Option) *Lister {
	l := &Lister{
		enumerator: e,
		filter:     DefaultFilter,
		log:        logrus.WithField("component", "devices"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Each acquires a fresh device set and calls fn for every entry whose
// instance ID can be read, in enumeration order. The set is released before
// Each returns.
//
// If the set cannot be acquired Each returns an *AcquireError without
// calling fn. Property failures never abort the pass. An error returned by
// fn stops the walk and is returned as is.
func (l *Lister) Each(fn func(Record) error) error {
	set, err := l.enumerator.Open(l.filter)
	if err != nil {
		return &AcquireError{Err: err}
	}
	defer func() {
		if err := set.Close(); err != nil {
			l.log.WithError(err).Warn("failed to release device set")
		}
	}()

	errs := common.ErrorCollector{}
	for i := 0; ; i++ {
		entry, err := set.Next(i)
		if err != nil {
			if !errors.Is(err, ErrEndOfSet) {
				l.log.WithError(err).Warnf("enumeration stopped at index %d", i)
			}
			break
		}

		record, ok := l.read(i, entry, &errs)
		if !ok {
			continue
		}
		if err := fn(record); err != nil {
			l.logFailedLookups(&errs)
			return err
		}
	}

	l.logFailedLookups(&errs)
	return nil
}

func (l *Lister) logFailedLookups(errs *common.ErrorCollector) {
	if errs.HasErrors() {
		l.log.Debugf("%d property lookups failed: %s", errs.Len(), errs.String())
	}
}

func (l *Lister) read(index int, entry Entry, errs *common.ErrorCollector) (Record, bool) {
	record := Record{Index: index}

	id, err := entry.InstanceID()
	if err != nil {
		perr := &PropertyError{Index: index, Property: InstanceID, Err: err}
		l.log.Warn(perr.Error())
		errs.Add(perr)
		return record, false
	}
	record.InstanceID = id

	for _, p := range recordProperties {
		value, err := entry.Property(p)
		if err != nil {
			if !errors.Is(err, ErrPropertyNotPresent) {
				errs.Add(&PropertyError{Index: index, Property: p, Err: err})
			}
			continue
		}
		record.set(p, value)
	}

	return record, true
}

// Collect returns every record of one pass. On acquisition failure it
// returns an empty slice together with the *AcquireError.
func (l *Lister) Collect() ([]Record, error) {
	records := make([]Record, 0)
	err := l.Each(func(r Record) error {
		records = append(records, r)
		return nil
	})
	return records, err
}

// List is Collect without the error: an unavailable device set yields no
// records.
func (l *Lister) List() []Record {
	records, err := l.Collect()
	if err != nil {
		l.log.WithError(err).Debug("listing produced no records")
	}
	return records
}
