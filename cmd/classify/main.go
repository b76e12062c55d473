// Command classify validates and classifies problem reports offline. It reads
// a JSON array of raw submissions and prints, for each one, either the report
// that would be published or its validation errors.
//
// Usage:
//
//	go run ./cmd/classify -in submissions.json
//	cat submissions.json | go run ./cmd/classify -strict
//
// Report IDs are content hashes and ReceivedAt comes from -at, so the output
// is reproducible.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/couchcryptid/problem-report-intake/internal/domain"
	"github.com/jonboulle/clockwork"
)

var errRejected = errors.New("one or more submissions were rejected")

type result struct {
	Index  int            `json:"index"`
	Report *domain.Report `json:"report,omitempty"`
	Errors []fieldResult  `json:"errors,omitempty"`
}

type fieldResult struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	in := fs.String("in", "-", "input file with a JSON array of submissions, - for stdin")
	at := fs.String("at", "2025-01-01T00:00:00Z", "RFC3339 timestamp stamped as received_at")
	strict := fs.Bool("strict", false, "exit non-zero if any submission is rejected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	receivedAt, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		return fmt.Errorf("invalid -at: %w", err)
	}
	domain.SetClock(clockwork.NewFakeClockAt(receivedAt))
	defer domain.SetClock(nil)

	src := stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	var submissions []domain.RawSubmission
	if err := json.NewDecoder(src).Decode(&submissions); err != nil {
		return fmt.Errorf("decode submissions: %w", err)
	}

	results, rejected := classify(submissions)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	log.Printf("classified %d submissions, %d rejected", len(submissions), rejected)
	if *strict && rejected > 0 {
		return errRejected
	}
	return nil
}

func classify(submissions []domain.RawSubmission) ([]result, int) {
	results := make([]result, len(submissions))
	rejected := 0

	for i, in := range submissions {
		results[i].Index = i

		sub, err := domain.Build(in)
		if err != nil {
			rejected++
			verr, ok := domain.AsValidationError(err)
			if !ok {
				results[i].Errors = []fieldResult{{Kind: "unknown", Message: err.Error()}}
				continue
			}
			for _, fe := range verr.Errors {
				results[i].Errors = append(results[i].Errors, fieldResult{
					Field:   fe.Field,
					Kind:    domain.KindName(fe.Kind),
					Message: fe.Error(),
				})
			}
			continue
		}

		report := domain.NewReport(sub)
		results[i].Report = &report
	}
	return results, rejected
}
