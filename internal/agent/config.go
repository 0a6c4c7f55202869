// Package agent wraps internal/mcts.Engine into the Player-facing lifecycle
// the rest of a match runner expects: construction from a config string,
// tree reuse across turns, and a final move pick.
package agent

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/corvidlabs/riskmcts/internal/evaluator"
	"github.com/corvidlabs/riskmcts/internal/generics"
	"github.com/corvidlabs/riskmcts/internal/mcts"
	"github.com/corvidlabs/riskmcts/internal/parameters"
)

// DefaultConfig is used when New is called with an empty config string,
// mirroring the teacher's players.DefaultPlayerConfig.
const DefaultConfig = "mcts"

// New builds an Agent from a comma-separated configuration string such as
// "mcts,c=1.6,max_time=900ms,depth_cap=60,weights=material_only,seed=7". The
// leading "mcts" selects the (only) searcher this module implements; its
// absence is an error rather than a silent default, since a config string
// with only tuning parameters and no searcher name is very likely a typo.
//
// Every parameter consumed is popped from the parsed map; whatever remains
// afterward is reported as an error rather than silently ignored.
func New(config string) (*Agent, error) {
	if config == "" {
		config = DefaultConfig
	}
	params := parameters.NewFromConfigString(config)

	useMCTS, err := parameters.PopParamOr(params, "mcts", false)
	if err != nil {
		return nil, err
	}
	if !useMCTS {
		return nil, errors.Errorf("no searcher selected in configuration %q (expected \"mcts\")", config)
	}

	weightsName, err := parameters.PopParamOr(params, "weights", "canonical")
	if err != nil {
		return nil, err
	}
	preset, err := parsePreset(weightsName)
	if err != nil {
		return nil, err
	}

	cfg, err := mcts.ConfigFromParams(params)
	if err != nil {
		return nil, err
	}
	cfg.Preset = preset

	seed, err := parameters.PopParamOr(params, "seed", int(time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		return nil, errors.Errorf("unknown agent parameters \"%s\" passed in %q",
			strings.Join(generics.KeysSlice(params), "\", \""), config)
	}

	return &Agent{
		cfg:  cfg,
		eval: evaluator.WithPreset(preset),
		rng:  rand.New(rand.NewSource(int64(seed))),
	}, nil
}

func parsePreset(name string) (evaluator.WeightsPreset, error) {
	switch name {
	case "canonical", "":
		return evaluator.WeightsCanonical, nil
	case "balanced_v1":
		return evaluator.WeightsBalancedV1, nil
	case "material_only":
		return evaluator.WeightsMaterialOnly, nil
	default:
		return 0, errors.Errorf("unknown weights preset %q", name)
	}
}
