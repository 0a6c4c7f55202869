// Package mcts implements the UCT search engine: selection, expansion,
// simulation and backpropagation over a searchtree.Tree, biased during
// rollouts by an evaluator.Evaluator when the game is Risk.
package mcts

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/corvidlabs/riskmcts/internal/evaluator"
	"github.com/corvidlabs/riskmcts/internal/parameters"
)

// Config holds the Engine's tunable parameters, normally parsed from a
// config string such as "mcts,c=1.6,max_time=900ms,depth_cap=60".
type Config struct {
	// C is the UCT exploration constant.
	C float64
	// MaxTime records the max_time setting. Run and Agent.SelectAction take
	// their deadline/budget as an argument and do not read it.
	MaxTime time.Duration
	// DepthCap bounds rollout length in plies (counting chance resolutions).
	DepthCap int
	// SafetyBuffer is subtracted from the deadline passed to Run to
	// guarantee a timely return.
	SafetyBuffer time.Duration
	// RolloutCap bounds how many legal actions the rollout policy evaluates
	// per step before falling back to a shuffled subset.
	RolloutCap int
	// Preset selects the evaluator's weighting scheme.
	Preset evaluator.WeightsPreset
}

// DefaultConfig matches the values named throughout the spec: c = sqrt(2),
// a 900ms budget, depth cap 50, a 100ms safety buffer and a rollout
// candidate cap of 20.
func DefaultConfig() Config {
	return Config{
		C:            math.Sqrt2,
		MaxTime:      900 * time.Millisecond,
		DepthCap:     50,
		SafetyBuffer: 100 * time.Millisecond,
		RolloutCap:   20,
		Preset:       evaluator.WeightsCanonical,
	}
}

// ConfigFromParams overrides DefaultConfig with any of c, max_time,
// depth_cap, safety_buffer and rollout_cap present in params, consuming
// them. It mirrors the teacher engine's NewFromParams config-string
// pattern. Leftover unrecognized parameters are the caller's concern: this
// function only pops the keys it understands.
func ConfigFromParams(params parameters.Params) (Config, error) {
	cfg := DefaultConfig()
	var err error

	cfg.C, err = parameters.PopParamOr(params, "c", cfg.C)
	if err != nil {
		return cfg, err
	}
	if cfg.C < 0 {
		return cfg, errors.Errorf("negative c value (%f given) not possible", cfg.C)
	}
	cfg.MaxTime, err = parameters.PopParamOr(params, "max_time", cfg.MaxTime)
	if err != nil {
		return cfg, err
	}
	cfg.DepthCap, err = parameters.PopParamOr(params, "depth_cap", cfg.DepthCap)
	if err != nil {
		return cfg, err
	}
	cfg.SafetyBuffer, err = parameters.PopParamOr(params, "safety_buffer", cfg.SafetyBuffer)
	if err != nil {
		return cfg, err
	}
	cfg.RolloutCap, err = parameters.PopParamOr(params, "rollout_cap", cfg.RolloutCap)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
