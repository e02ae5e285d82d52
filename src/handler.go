package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"crosswarped.com/maskgen"
	"crosswarped.com/maskgen/internal/reader"
	"crosswarped.com/maskgen/pkg/primitives"
)

type GenerateWordsRequest struct {
	Masks      []string `json:"masks"`
	Bruteforce string   `json:"bruteforce"`
	Charsets   []string `json:"charsets"`
	Unicode    bool     `json:"unicode"`
	NFC        bool     `json:"nfc"`
	Scope      string   `json:"scope"`
	Job        string   `json:"job"`
	Begin      *uint64  `json:"begin"`
	End        *uint64  `json:"end"`
	MaxWords   int      `json:"maxWords"`
}

type GenerateWordsResponse struct {
	Success   bool     `json:"success"`
	RequestID string   `json:"requestId"`
	Total     uint64   `json:"total"`
	Start     uint64   `json:"start"`
	End       uint64   `json:"end"`
	Words     []string `json:"words"`
	Truncated bool     `json:"truncated"`
	Error     string   `json:"error,omitempty"`
}

type server struct {
	maxWords int
	// layers is nil when no charset store is configured.
	layers layerSource
}

func (req GenerateWordsRequest) mode() primitives.SymbolMode {
	if req.Unicode {
		return primitives.ModeUnicode
	}
	return primitives.ModeBytes
}

// charsetTable returns the builtin charsets, then the stored layers of the
// request scope, then the request charsets. Definitions are never read from
// files.
func (s *server) charsetTable(ctx context.Context, id string, req GenerateWordsRequest, d reader.Decoder) (*primitives.Table, error) {
	t := primitives.NewDefaultTable(req.mode())

	var defs []string
	if req.Scope != "" {
		if s.layers == nil {
			return nil, fmt.Errorf("scope %q requested but no charset store is configured", req.Scope)
		}
		layers, err := s.layers.Layers(ctx, req.Scope)
		if err != nil {
			return nil, fmt.Errorf("load charsets: %w", err)
		}
		fmt.Printf("[%s] Loaded %d charset layers for scope %q\n", id, len(layers), req.Scope)
		for _, l := range layers {
			defs = append(defs, l.Name+":"+l.Definition)
		}
	}
	defs = append(defs, req.Charsets...)

	for _, def := range defs {
		name, literal, err := reader.SplitCharsetArg(d, def)
		if err != nil {
			return nil, err
		}
		symbols, err := d.DecodeString(literal)
		if err != nil {
			return nil, fmt.Errorf("charset %q: %w", def, err)
		}
		if err := reader.AddCharset(t, name, symbols); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (s *server) generator(req GenerateWordsRequest, d reader.Decoder, t *primitives.Table) (maskgen.Generator, error) {
	if (len(req.Masks) == 0) == (req.Bruteforce == "") {
		return nil, errors.New("exactly one of masks or bruteforce must be set")
	}
	if req.Bruteforce != "" {
		spec, err := reader.ParseBruteforce(strings.NewReader(req.Bruteforce), d, t)
		if err != nil {
			return nil, fmt.Errorf("bruteforce: %w", err)
		}
		return maskgen.NewBruteforceGenerator(spec)
	}

	var ml primitives.MaskList
	for i, mask := range req.Masks {
		symbols, err := d.DecodeString(mask)
		if err != nil {
			return nil, fmt.Errorf("masks[%d]: %w", i, err)
		}
		m, err := reader.ParseMaskLine(symbols, t)
		if err != nil {
			return nil, fmt.Errorf("masks[%d]: %w", i, err)
		}
		if err := ml.Push(m); err != nil {
			return nil, fmt.Errorf("masks[%d]: %w", i, err)
		}
	}
	return maskgen.NewMaskListGenerator(&ml), nil
}

func wordRange(req GenerateWordsRequest, total uint64) (primitives.Range, error) {
	if req.Job != "" {
		if req.Begin != nil || req.End != nil {
			return primitives.Range{}, errors.New("job cannot be used with begin or end")
		}
		j, n, err := primitives.ParseJob(req.Job)
		if err != nil {
			return primitives.Range{}, err
		}
		return primitives.JobRange(total, j, n)
	}
	return primitives.ClampRange(total, req.Begin, req.End)
}

func (s *server) execute(ctx context.Context, id string, req GenerateWordsRequest) (GenerateWordsResponse, error) {
	resp := GenerateWordsResponse{RequestID: id}
	if req.MaxWords < 0 {
		return resp, fmt.Errorf("maxWords must not be negative")
	}
	limit := s.maxWords
	if req.MaxWords > 0 {
		limit = min(limit, req.MaxWords)
	}

	d := reader.Decoder{Mode: req.mode(), NFC: req.NFC}
	t, err := s.charsetTable(ctx, id, req, d)
	if err != nil {
		return resp, err
	}
	gen, err := s.generator(req, d, t)
	if err != nil {
		return resp, err
	}
	total, _, err := maskgen.Total(gen)
	if err != nil {
		return resp, err
	}
	resp.Total = total
	r, err := wordRange(req, total)
	if err != nil {
		return resp, err
	}
	resp.Start, resp.End = r.Start, r.End

	timeout := wordTimeout(ctx)
	fmt.Printf("[%s] Setting timeout to %v\n", id, timeout)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp.Words, resp.Truncated = maskgen.Collect(maskgen.Words(ctx, gen, r), req.mode(), limit)
	fmt.Printf("[%s] Generated %d of %d words\n", id, len(resp.Words), r.Len())
	return resp, ctx.Err()
}

const (
	defaultTimeout = 1 * time.Minute
	timeoutMargin  = 5 * time.Second
	minTimeout     = 1 * time.Second
)

// wordTimeout leaves a margin before the request deadline to write the
// response, but never less than minTimeout.
func wordTimeout(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return defaultTimeout
	}
	return max(time.Until(deadline)-timeoutMargin, minTimeout)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *server) generateWords(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := uuid.NewString()
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(GenerateWordsResponse{
			RequestID: id,
			Error:     fmt.Sprintf("Method %s not allowed", r.Method),
		})
		return
	}

	var req GenerateWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("[%s] Error parsing JSON body: %v\n", id, err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(GenerateWordsResponse{
			RequestID: id,
			Error:     fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	response, err := s.execute(r.Context(), id, req)
	response.Success = err == nil
	if err != nil {
		fmt.Printf("[%s] Error: %v\n", id, err)
		response.Error = err.Error()
		w.WriteHeader(http.StatusBadRequest)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("[%s] Error marshaling response: %v\n", id, err)
	}
}
