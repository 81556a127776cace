package buildpipeline

import (
	"time"

	"newt/internal/driver"
)

// phaseObserver переводит события фаз драйвера в события прогресса
type phaseObserver struct {
	sink   ProgressSink
	final  Stage // успешный конец этой стадии = файл готов
	record func(Stage, time.Duration)
}

// Observe adapts sink to a driver observer for runs that end with stage
// final, e.g. StageLex for tokenize.
func Observe(sink ProgressSink, final Stage) driver.PhaseObserver {
	p := &phaseObserver{sink: sink, final: final}
	return p.OnPhase
}

func (p *phaseObserver) OnPhase(ev driver.PhaseEvent) {
	stage := stageOf(ev.Name)
	switch ev.Status {
	case driver.PhaseStart:
		emitStage(p.sink, ev.Path, stage, StatusWorking, nil, 0)
	case driver.PhaseEnd:
		if p.record != nil {
			p.record(stage, ev.Elapsed)
		}
		switch {
		case ev.Err != nil:
			emitStage(p.sink, ev.Path, stage, StatusError, ev.Err, ev.Elapsed)
		case stage == p.final:
			emitStage(p.sink, ev.Path, stage, StatusDone, nil, ev.Elapsed)
		}
	}
}

func stageOf(phase string) Stage {
	switch phase {
	case driver.PhaseLoad:
		return StageLoad
	case driver.PhaseLex:
		return StageLex
	case driver.PhaseParse:
		return StageParse
	case driver.PhaseEmit:
		return StageEmit
	default:
		return StageBuild
	}
}
