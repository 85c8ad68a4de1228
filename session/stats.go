package session

import (
	"time"

	"github.com/kamstrup/intmap"
)

// Stats provides statistics about commands executed by a session.
type Stats struct {
	TotalExecutions int64
	Commands        []CommandStats
}

// CommandStats provides execution statistics for a single command kind.
type CommandStats struct {
	Command        Command
	ExecutionCount int64
	// Applied counts executions that changed the game. Blocked counts the rest:
	// moves into walls or locked cells, and ticks that locked the piece.
	Applied       int64
	Blocked       int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type commandStatsInternal struct {
	executionCount int64
	applied        int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type statsRecorder struct {
	byCommand *intmap.Map[Command, *commandStatsInternal]
}

func newStatsRecorder() *statsRecorder {
	r := &statsRecorder{
		byCommand: intmap.New[Command, *commandStatsInternal](int(numCommands)),
	}
	for _, c := range Commands() {
		r.byCommand.Put(c, &commandStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		})
	}
	return r
}

func (r *statsRecorder) record(cmd Command, applied bool, duration time.Duration) {
	stats, ok := r.byCommand.Get(cmd)
	if !ok {
		return
	}

	stats.executionCount++
	if applied {
		stats.applied++
	}
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

func (r *statsRecorder) snapshot() *Stats {
	out := &Stats{
		Commands: make([]CommandStats, 0, r.byCommand.Len()),
	}

	for _, cmd := range Commands() {
		internal, _ := r.byCommand.Get(cmd)

		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		out.Commands = append(out.Commands, CommandStats{
			Command:        cmd,
			ExecutionCount: internal.executionCount,
			Applied:        internal.applied,
			Blocked:        internal.executionCount - internal.applied,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		})
		out.TotalExecutions += internal.executionCount
	}

	return out
}

// For returns the statistics for cmd.
func (s *Stats) For(cmd Command) CommandStats {
	for _, c := range s.Commands {
		if c.Command == cmd {
			return c
		}
	}
	return CommandStats{Command: cmd}
}
