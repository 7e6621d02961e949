// SPDX-License-Identifier: MIT
// Package: netquiz/codec
//
// taskset.go - grouped task-set documents.

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/study"
	"github.com/katalvlaran/netquiz/task"
)

type wireRecord struct {
	ID           string          `json:"id"`
	Technique    string          `json:"technique"`
	Parameters   json.RawMessage `json:"parameters"`
	Size         int             `json:"size"`
	Density      float64         `json:"density"`
	Type         string          `json:"type"`
	Data         string          `json:"data"`
	Task         string          `json:"task"`
	AnswerOption string          `json:"answer_option"`
	Solution     []wireNode      `json:"solution"`
	TextSolution string          `json:"text_solution"`
}

type wireGroup struct {
	Training []wireRecord `json:"training"`
	Survey   []wireRecord `json:"survey"`
}

type wireTechnique map[string]wireGroup

// EncodeTaskSet writes the whole task set grouped by technique and kind.
func EncodeTaskSet(w io.Writer, set study.TaskSet, opts ...Option) error {
	doc := make(map[string]wireTechnique, len(set))
	for tech, byKind := range set {
		wt, err := toWireTechnique(byKind)
		if err != nil {
			return err
		}
		doc[string(tech)] = wt
	}
	return encode(w, doc, newConfig(opts))
}

// EncodeTechnique writes the kind-grouped records of one technique.
func EncodeTechnique(w io.Writer, set study.TaskSet, tech study.Technique, opts ...Option) error {
	byKind, ok := set[tech]
	if !ok {
		return fmt.Errorf("codec: technique %q not in task set", tech)
	}
	wt, err := toWireTechnique(byKind)
	if err != nil {
		return err
	}
	return encode(w, wt, newConfig(opts))
}

// DecodeTaskSet reads a task-set document.
func DecodeTaskSet(r io.Reader) (study.TaskSet, error) {
	var doc map[string]wireTechnique
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode task set: %w", &core.MalformedInputError{Reason: err.Error()})
	}
	set := make(study.TaskSet, len(doc))
	for techName, wt := range doc {
		tech, err := study.ParseTechnique(techName)
		if err != nil {
			return nil, fmt.Errorf("codec: decode task set: %w", err)
		}
		byKind := make(map[task.Kind]*study.Group, len(wt))
		for kindName, wg := range wt {
			kind, err := task.ParseKind(kindName)
			if err != nil {
				return nil, fmt.Errorf("codec: decode task set: %w", err)
			}
			g := &study.Group{}
			if g.Training, err = fromWireRecords(wg.Training); err != nil {
				return nil, err
			}
			if g.Survey, err = fromWireRecords(wg.Survey); err != nil {
				return nil, err
			}
			byKind[kind] = g
		}
		set[tech] = byKind
	}
	return set, nil
}

func toWireTechnique(byKind map[task.Kind]*study.Group) (wireTechnique, error) {
	wt := make(wireTechnique, len(byKind))
	for kind, g := range byKind {
		var wg wireGroup
		var err error
		if wg.Training, err = toWireRecords(g.Training); err != nil {
			return nil, err
		}
		if wg.Survey, err = toWireRecords(g.Survey); err != nil {
			return nil, err
		}
		wt[string(kind)] = wg
	}
	return wt, nil
}

func toWireRecords(recs []study.TaskRecord) ([]wireRecord, error) {
	out := make([]wireRecord, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		params, err := json.Marshal(rec.Parameters)
		if err != nil {
			return nil, fmt.Errorf("codec: record %s parameters: %w", rec.ID, err)
		}
		solution := make([]wireNode, len(rec.Solution))
		for j := range rec.Solution {
			solution[j] = toWireNode(&rec.Solution[j])
		}
		out = append(out, wireRecord{
			ID:           rec.ID.String(),
			Technique:    string(rec.Technique),
			Parameters:   params,
			Size:         rec.Size,
			Density:      rec.Density,
			Type:         string(rec.Type),
			Data:         rec.Data,
			Task:         rec.Task,
			AnswerOption: string(rec.AnswerOption),
			Solution:     solution,
			TextSolution: rec.TextSolution,
		})
	}
	return out, nil
}

func fromWireRecords(recs []wireRecord) ([]study.TaskRecord, error) {
	out := make([]study.TaskRecord, 0, len(recs))
	for _, w := range recs {
		tech, err := study.ParseTechnique(w.Technique)
		if err != nil {
			return nil, fmt.Errorf("codec: record %s: %w", w.ID, err)
		}
		kind, err := task.ParseKind(w.Type)
		if err != nil {
			return nil, fmt.Errorf("codec: record %s: %w", w.ID, err)
		}
		id, err := uuid.Parse(w.ID)
		if err != nil {
			return nil, fmt.Errorf("codec: record id %q: %w", w.ID, err)
		}
		params, err := study.DecodeParameters(tech, w.Parameters)
		if err != nil {
			return nil, fmt.Errorf("codec: record %s: %w", w.ID, err)
		}
		solution := make([]core.Node, len(w.Solution))
		for i, n := range w.Solution {
			if solution[i], err = n.toCore(); err != nil {
				return nil, fmt.Errorf("codec: record %s: %w", w.ID, err)
			}
			if solution[i].Attributes == nil {
				solution[i].Attributes = map[string]float64{}
			}
		}
		out = append(out, study.TaskRecord{
			ID:           id,
			Technique:    tech,
			Parameters:   params,
			Size:         w.Size,
			Density:      w.Density,
			Type:         kind,
			Data:         w.Data,
			Task:         w.Task,
			AnswerOption: task.AnswerType(w.AnswerOption),
			Solution:     solution,
			TextSolution: w.TextSolution,
		})
	}
	return out, nil
}
