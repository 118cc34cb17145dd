package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"console-quiz/internal/domain"
)

var errAnswerTimeout = errors.New("answer deadline elapsed")

type lineResult struct {
	line string
	err  error
}

// inputWorker owns the reader and performs one blocking line read per request.
// Each request gets its own one-shot reply channel (buffered, size 1), so a read
// whose requester gave up completes into a channel nobody receives from.
type inputWorker struct {
	requests chan chan<- lineResult
	done     chan struct{}
	stopOnce sync.Once
}

func startInputWorker(r io.Reader) *inputWorker {
	w := &inputWorker{
		requests: make(chan chan<- lineResult),
		done:     make(chan struct{}),
	}
	go w.loop(bufio.NewReader(r))
	return w
}

func (w *inputWorker) loop(br *bufio.Reader) {
	for {
		select {
		case <-w.done:
			return
		case reply := <-w.requests:
			reply <- readLine(br)
		}
	}
}

func readLine(br *bufio.Reader) lineResult {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return lineResult{err: err}
	}
	return lineResult{line: strings.TrimRight(line, "\r\n")}
}

// request hands a new read to the worker. It gives up when expired fires, ctx is
// canceled or the worker is stopped; a nil expired channel never fires.
func (w *inputWorker) request(ctx context.Context, expired <-chan time.Time) (<-chan lineResult, error) {
	select {
	case <-w.done:
		return nil, domain.ErrInputClosed
	default:
	}

	reply := make(chan lineResult, 1)
	select {
	case w.requests <- reply:
		return reply, nil
	case <-expired:
		return nil, errAnswerTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-w.done:
		return nil, domain.ErrInputClosed
	}
}

// stop tears the worker down. A read already in progress is left to finish on its own.
func (w *inputWorker) stop() {
	w.stopOnce.Do(func() { close(w.done) })
}
