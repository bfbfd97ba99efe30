package cadencelog

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/vsync-go/vsync/internal/monotime"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

const recordSeparator = 0x1e

func writeRecordSeparator(w io.Writer) error {
	_, err := w.Write([]byte{recordSeparator})
	return err
}

type writer struct {
	w io.WriteCloser

	referenceTime monotime.Time

	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

func newWriter(w io.WriteCloser, referenceTime monotime.Time) *writer {
	return &writer{
		w:             w,
		referenceTime: referenceTime,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
	}
}

func (w *writer) RecordEvent(eventTime monotime.Time, details eventDetails) {
	w.events <- event{
		RelativeTime: eventTime.Sub(w.referenceTime),
		eventDetails: details,
	}
}

func (w *writer) Run() {
	defer close(w.runStopped)
	buf := &bytes.Buffer{}
	if err := writeRecordSeparator(buf); err != nil {
		panic(fmt.Sprintf("cadencelog encoding into a bytes.Buffer failed: %s", err))
	}
	if err := gojay.NewEncoder(buf).EncodeObject(topLevel{
		trace: trace{CommonFields: commonFields{ReferenceTime: w.referenceTime.ToTime()}},
	}); err != nil {
		panic(fmt.Sprintf("cadencelog encoding into a bytes.Buffer failed: %s", err))
	}
	if _, err := w.w.Write(buf.Bytes()); err != nil {
		w.encodeErr = err
	}
	for ev := range w.events {
		if w.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if err := writeRecordSeparator(w.w); err != nil {
			w.encodeErr = err
			continue
		}
		if err := gojay.NewEncoder(w.w).EncodeArray(ev); err != nil {
			w.encodeErr = err
		}
	}
}

func (w *writer) Close() {
	if err := w.close(); err != nil {
		log.Printf("exporting cadence log failed: %s\n", err)
	}
}

func (w *writer) close() error {
	close(w.events)
	<-w.runStopped
	if w.encodeErr != nil {
		return w.encodeErr
	}
	return w.w.Close()
}
