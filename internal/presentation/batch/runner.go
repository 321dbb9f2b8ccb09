// Package batch scores newline-delimited JSON evaluation requests from a
// stream and writes one JSON result per input line, in input order.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/application/dto"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/application/usecase"
)

// maxLineBytes bounds a single request line.
const maxLineBytes = 1 << 20

// Evaluator is the use case the runner drives.
type Evaluator interface {
	Execute(ctx context.Context, req dto.EvaluateRiskRequest) (dto.EvaluationResponse, error)
}

// Stats summarises a run.
type Stats struct {
	Processed int64
	Succeeded int64
	Failed    int64
}

// Runner reads requests, evaluates them on a bounded worker pool and writes
// results in the order the requests were read.
type Runner struct {
	evaluator Evaluator
	logger    *slog.Logger
	workers   int
}

// NewRunner creates a runner. workers below 1 means one.
func NewRunner(evaluator Evaluator, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		evaluator: evaluator,
		workers:   workers,
		logger:    logger,
	}
}

// Run processes in until EOF or until ctx is cancelled. A request that fails
// produces an error record on out and does not stop the run; read, write and
// context errors do.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var processed, succeeded, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	// Each slot carries one line's encoded result; the writer drains slots in
	// read order.
	pending := make(chan chan []byte, r.workers)
	writeErr := make(chan error, 1)
	go func() {
		var werr error
		for slot := range pending {
			line := <-slot
			if werr != nil {
				continue
			}
			if _, err := out.Write(line); err != nil {
				werr = fmt.Errorf("write result: %w", err)
			}
		}
		writeErr <- werr
	}()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var loopErr error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := gctx.Err(); err != nil {
			loopErr = err
			break
		}

		line := lineNo
		payload := bytes.Clone(raw)
		slot := make(chan []byte, 1)
		pending <- slot

		g.Go(func() error {
			processed.Add(1)
			encoded, ok := r.evaluate(gctx, line, payload)
			if ok {
				succeeded.Add(1)
			} else {
				failed.Add(1)
			}
			slot <- encoded
			return nil
		})
	}
	if loopErr == nil {
		if err := scanner.Err(); err != nil {
			loopErr = fmt.Errorf("read requests: %w", err)
		}
	}

	_ = g.Wait()
	close(pending)
	werr := <-writeErr

	stats := Stats{
		Processed: processed.Load(),
		Succeeded: succeeded.Load(),
		Failed:    failed.Load(),
	}

	switch {
	case loopErr != nil:
		return stats, loopErr
	case werr != nil:
		return stats, werr
	case ctx.Err() != nil:
		return stats, ctx.Err()
	}
	return stats, nil
}

// evaluate decodes and scores one line, returning the encoded output line and
// whether the evaluation succeeded.
func (r *Runner) evaluate(ctx context.Context, line int, payload []byte) ([]byte, bool) {
	var req dto.EvaluateRiskRequest
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	if err == nil {
		err = expectEOF(dec)
	}
	if err != nil {
		return r.encode(dto.ErrorResponse{
			Line:   line,
			Reason: usecase.ReasonInvalidRequest,
			Error:  fmt.Sprintf("decode request: %v", err),
		}), false
	}

	resp, err := r.evaluator.Execute(ctx, req)
	if err != nil {
		var evaluationID string
		var pub *usecase.PublishError
		if errors.As(err, &pub) {
			evaluationID = pub.EvaluationID.String()
		}
		r.logger.DebugContext(ctx, "request failed",
			slog.Int("line", line),
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()),
		)
		return r.encode(dto.ErrorResponse{
			RequestID:    req.RequestID,
			EvaluationID: evaluationID,
			Category:     req.Category,
			Line:         line,
			Reason:       usecase.ErrorReason(err),
			Error:        err.Error(),
		}), false
	}
	return r.encode(resp), true
}

// expectEOF rejects anything after the first JSON value on a line.
func expectEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("trailing data after request: %w", err)
	default:
		return errors.New("trailing data after request")
	}
}

func (r *Runner) encode(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// Unreachable: responses carry only finite floats.
		b, _ = json.Marshal(dto.ErrorResponse{Reason: usecase.ReasonInternal, Error: err.Error()})
	}
	return append(b, '\n')
}
