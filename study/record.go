package study

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/netquiz/core"
	"github.com/katalvlaran/netquiz/task"
)

// recordNamespace scopes the name-based record ids.
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/netquiz/study"))

// TaskRecord is one rendered task: a task on a data graph shown with one
// technique.
type TaskRecord struct {
	ID           uuid.UUID
	Technique    Technique
	Parameters   Parameters
	Size         int
	Density      float64
	Type         task.Kind
	Data         string // data graph filename
	Task         string // description
	AnswerOption task.AnswerType
	Solution     []core.Node
	TextSolution string
}

// RecordID derives the stable id of the record for (seed, technique, data).
func RecordID(seed int64, technique Technique, data string) uuid.UUID {
	return uuid.NewSHA1(recordNamespace, []byte(string(technique)+"|"+data+"|"+formatSeed(seed)))
}

// Group holds the training and survey records of one task kind.
type Group struct {
	Training []TaskRecord
	Survey   []TaskRecord
}

// TaskSet groups records by technique and task kind.
type TaskSet map[Technique]map[task.Kind]*Group

// group returns the group for (technique, kind), creating it on demand.
func (s TaskSet) group(technique Technique, kind task.Kind) *Group {
	byKind, ok := s[technique]
	if !ok {
		byKind = make(map[task.Kind]*Group)
		s[technique] = byKind
	}
	g, ok := byKind[kind]
	if !ok {
		g = &Group{}
		byKind[kind] = g
	}
	return g
}

// Len returns the total number of records.
func (s TaskSet) Len() int {
	n := 0
	for _, byKind := range s {
		for _, g := range byKind {
			n += len(g.Training) + len(g.Survey)
		}
	}
	return n
}
