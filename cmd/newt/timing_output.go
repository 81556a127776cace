package main

import (
	"fmt"
	"io"
	"time"

	"newt/internal/buildpipeline"
)

var timingStages = []struct {
	stage buildpipeline.Stage
	verb  string
}{
	{buildpipeline.StageLoad, "loaded"},
	{buildpipeline.StageLex, "lexed"},
	{buildpipeline.StageParse, "parsed"},
	{buildpipeline.StageBuild, "checked"},
	{buildpipeline.StageEmit, "emitted"},
	{buildpipeline.StageWrite, "wrote"},
}

func printStageTimings(out io.Writer, timings buildpipeline.Timings) error {
	if out == nil {
		return nil
	}
	for _, ts := range timingStages {
		if !timings.Has(ts.stage) {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s %.1f ms\n", ts.verb, toMillis(timings.Duration(ts.stage))); err != nil {
			return err
		}
	}
	return nil
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
