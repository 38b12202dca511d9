package tape

import (
	"container/list"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the name of the tape file inside the recorder directory.
const FileName = "tape.json"

// Recorder appends events to a tape file in the background.
type Recorder struct {
	dir      string
	dataFile *os.File
	writer   *json.Encoder

	errorsOut  chan error
	errorQueue list.List

	eventsIn chan Event
	flushCh  chan struct{}
	quitCh   chan struct{}
	wg       sync.WaitGroup

	mu     sync.Mutex // guards closed, held while sending to eventsIn
	closed bool
}

// NewRecorder starts a recorder writing to dir. The directory and file are
// created when the first event arrives.
func NewRecorder(dir string) *Recorder {
	r := &Recorder{
		dir:       dir,
		errorsOut: make(chan error),
		eventsIn:  make(chan Event, 256),
		flushCh:   make(chan struct{}, 1),
		quitCh:    make(chan struct{}),
	}
	r.wg.Add(1)
	go r.mainLoop()
	return r
}

// Path returns the tape file location.
func (r *Recorder) Path() string {
	return filepath.Join(r.dir, FileName)
}

// Close writes out all recorded events and closes the file.
// Events recorded after Close are dropped.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.quitCh)
	r.wg.Wait()
}

// Errors returns the channel on which write failures are delivered.
func (r *Recorder) Errors() <-chan error {
	return r.errorsOut
}

// Record adds an event to the tape. It is a no-op after Close.
func (r *Recorder) Record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.eventsIn <- ev
}

// Persist tells the recorder to flush the tape to disk.
func (r *Recorder) Persist() {
	select {
	case r.flushCh <- struct{}{}:
	default:
	}
}

func (r *Recorder) mainLoop() {
	defer r.wg.Done()

	for {
		sendCh, sendErr := r.queuedError()
		select {
		case sendCh <- sendErr:
			r.errorQueue.Remove(r.errorQueue.Front())

		case ev := <-r.eventsIn:
			r.write(ev)

		case <-r.flushCh:
			if r.dataFile != nil {
				err := r.dataFile.Sync()
				log.Printf("tape flushed (err: %v)", err)
				if err != nil {
					r.errorQueue.PushBack(err)
				}
			}

		case <-r.quitCh:
			r.drain()
			if r.dataFile != nil {
				err := r.dataFile.Close()
				log.Printf("tape closed (err: %v)", err)
			}
			return
		}
	}
}

// drain writes events that were queued before Close.
func (r *Recorder) drain() {
	for {
		select {
		case ev := <-r.eventsIn:
			r.write(ev)
		default:
			return
		}
	}
}

func (r *Recorder) queuedError() (chan error, error) {
	first := r.errorQueue.Front()
	if first == nil {
		return nil, nil
	}
	return r.errorsOut, first.Value.(error)
}

func (r *Recorder) write(ev Event) {
	err := r.initFile()
	if err == nil {
		err = writeEvent(r.writer, ev)
	}
	if err != nil {
		r.errorQueue.PushBack(err)
	}
}

func (r *Recorder) initFile() error {
	if r.dataFile != nil {
		return nil // already open
	}

	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return err
	}
	filename := r.Path()
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.Printf("tape opened: %s", filename)
	r.dataFile = f
	r.writer = json.NewEncoder(f)
	return nil
}
