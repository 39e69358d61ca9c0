package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wbrc/keyparts/kcv"
)

// number of check value digits shown next to a key or part
const kcvDigits = 6

// group splits s into space separated groups of n characters.
func group(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i += n {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+n, len(s))])
	}

	return b.String()
}

type partView struct {
	Value      string `json:"value"`
	CheckValue string `json:"check_value,omitempty"`
}

type result struct {
	Mode      string     `json:"mode,omitempty"`
	Algorithm string     `json:"kcv,omitempty"`
	Inputs    []partView `json:"inputs,omitempty"`
	Key       *partView  `json:"key,omitempty"`
	Outputs   []partView `json:"outputs,omitempty"`
}

// view computes the check value of a hex key or part if alg is set.
func view(s string, alg kcv.Algorithm) (partView, error) {
	v := partView{Value: s}
	if alg == "" {
		return v, nil
	}

	cv, err := kcv.ComputeHex(s, alg)
	if err != nil {
		return v, err
	}
	v.CheckValue = cv

	return v, nil
}

func views(parts []string, alg kcv.Algorithm) ([]partView, error) {
	vs := make([]partView, len(parts))
	for i, p := range parts {
		v, err := view(p, alg)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i+1, err)
		}
		vs[i] = v
	}

	return vs, nil
}

func (a *app) printResult(r *result) error {
	if a.json {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	// a split lists its inputs only when they had to be merged first, and
	// the key is its input; a merge lists every input and outputs the key
	split := r.Mode != ""
	if !split || len(r.Inputs) > 1 {
		for i, in := range r.Inputs {
			a.printLine(fmt.Sprintf("Input %d", i+1), in, "CCV")
		}
	}
	if r.Key != nil {
		label := "Output"
		if split {
			label = "Input"
		}
		a.printLine(label, *r.Key, "KCV")
	}
	for i, out := range r.Outputs {
		a.printLine(fmt.Sprintf("Output %d", i+1), out, "CCV")
	}

	return nil
}

// printLine prints "label: 0123 4567 (KCV AB CD EF)". The check value of a
// component is labelled CCV, that of a whole key KCV.
func (a *app) printLine(label string, v partView, cvLabel string) {
	n := a.v.GetInt(keyGroup)
	line := fmt.Sprintf("%s: %s", label, group(v.Value, n))
	if v.CheckValue != "" {
		cv := v.CheckValue[:min(kcvDigits, len(v.CheckValue))]
		line += fmt.Sprintf(" (%s %s)", cvLabel, group(cv, 2))
	}

	fmt.Fprintln(a.stdout, line)
}

// parseAlgorithm returns the configured check value algorithm, or "" for
// none.
func (a *app) parseAlgorithm() (kcv.Algorithm, error) {
	s := a.v.GetString(keyKCV)
	if s == "" {
		return "", nil
	}

	return kcv.ParseAlgorithm(s)
}

func upper(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.ToUpper(p)
	}
	return out
}
