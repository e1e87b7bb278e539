package cli

import (
	"github.com/vburojevic/stacksift/internal/analyze"
	"github.com/vburojevic/stacksift/internal/output"
)

// ClusterCmd groups errors by similarity without trend aggregation.
type ClusterCmd struct {
	analysisFlags
}

// Run executes the cluster command
func (c *ClusterCmd) Run(globals *Globals) error {
	records, err := c.parseRecords(globals)
	if err != nil {
		return err
	}

	engine, err := analyze.NewEngine(
		analyze.WithThreshold(c.Threshold),
		analyze.WithFrameLimit(c.FrameLimit),
		analyze.WithClusterWorkers(c.Workers),
	)
	if err != nil {
		return outputErrorCommon(globals, codeBadThreshold, err.Error())
	}

	clusters := engine.Cluster(records)

	w, closeOutput, err := c.openOutput(globals)
	if err != nil {
		return err
	}
	defer closeOutput()

	switch globals.Format {
	case "json":
		return output.NewIndentedJSONWriter(w).WriteClusters(clusters, globals.Clock.Now())
	case "ndjson":
		return output.NewJSONWriter(w).WriteClusters(clusters, globals.Clock.Now())
	default:
		styled := c.Output == "" && output.ShouldStyle(w)
		return output.NewTextRenderer(w, styled).RenderClusters(clusters)
	}
}
