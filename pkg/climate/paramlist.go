package climate

import (
	"fmt"
	"time"

	"multinoise/pkg/climateerr"
	"multinoise/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Entry pairs a catalogue box with the biome it resolves to.
type Entry struct {
	Point ParamPoint
	Biome int32
}

// ParameterList is a bulk-loaded spatial tree over 7-D parameter boxes,
// answering nearest-box queries under squared distance.
type ParameterList struct {
	root    *node
	id      uuid.UUID
	metrics *metrics.Metrics
}

// NewParameterList builds a tree from entries. At least one entry is
// required; logger defaults to logrus.StandardLogger() when nil. m may be
// nil, in which case build and search metrics are simply not recorded.
func NewParameterList(entries []Entry, logger *logrus.Logger, m *metrics.Metrics) (*ParameterList, error) {
	start := time.Now()
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(entries) == 0 {
		err := fmt.Errorf("parameter list: %w", climateerr.ErrEmptyTree)
		m.RecordTreeBuild(0, time.Since(start), err)
		return nil, err
	}

	id := uuid.New()
	nodes := make([]*node, len(entries))
	for i, e := range entries {
		nodes[i] = newLeaf(e.Point, e.Biome)
	}

	logger.WithFields(logrus.Fields{
		"parameter_list_id": id,
		"entry_count":       len(entries),
	}).Debug("building parameter list")

	root := build(nodes)
	m.RecordTreeBuild(len(entries), time.Since(start), nil)

	return &ParameterList{root: root, id: id, metrics: m}, nil
}

// ID returns the construction-time correlation id for this tree's log
// entries.
func (pl *ParameterList) ID() uuid.UUID {
	return pl.id
}

// Find returns the biome of the nearest parameter box to target, breaking
// ties by tree order.
func (pl *ParameterList) Find(target TargetPoint) int32 {
	n := pl.root.search(target.space())
	if n.biome == nil {
		panic("climate: search returned a non-leaf node")
	}
	pl.metrics.RecordTreeSearch()
	return *n.biome
}
