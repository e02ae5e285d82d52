package primitives

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open range [Start, End) of word indexes.
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of words in the range.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// JobRange divides total words in jobs equal parts and returns the part of the
// given job (counting from 1).
//
// The remainder is distributed one word each to the first jobs, so that the
// ranges of jobs 1..jobs exactly tile [0, total).
func JobRange(total, job, jobs uint64) (Range, error) {
	if job == 0 || jobs == 0 || job > jobs {
		return Range{}, fmt.Errorf("%w: job %d/%d", ErrRange, job, jobs)
	}
	q := total / jobs
	r := total % jobs

	start := q*(job-1) + min(job-1, r)
	length := q
	if job <= r {
		length++
	}
	return Range{Start: start, End: start + length}, nil
}

// ClampRange returns the range of words to generate out of total words given an
// optional first word and an optional last word (inclusive), both counting from 0.
//
// Without bounds, an empty space gives an empty range.
func ClampRange(total uint64, begin, last *uint64) (Range, error) {
	if begin == nil && last == nil && total == 0 {
		return Range{}, nil
	}
	r := Range{End: total}
	if begin != nil {
		r.Start = *begin
	}
	if last != nil {
		if *last == ^uint64(0) {
			return Range{}, fmt.Errorf("%w: last word %d", ErrRange, *last)
		}
		r.End = *last + 1
	}
	if r.End <= r.Start || r.End > total {
		return Range{}, fmt.Errorf("%w: %v out of %d words", ErrRange, r, total)
	}
	return r, nil
}

// ParseJob parses a "J/N" job specification.
func ParseJob(s string) (job, jobs uint64, err error) {
	js, ns, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: job %q, want J/N", ErrRange, s)
	}
	if job, err = strconv.ParseUint(js, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: job %q: %v", ErrRange, s, err)
	}
	if jobs, err = strconv.ParseUint(ns, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: job %q: %v", ErrRange, s, err)
	}
	return job, jobs, nil
}
