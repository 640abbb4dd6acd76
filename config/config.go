// Package config holds the option structs for the train and eval entry
// points, with defaults matching the documented training recipe.
package config

import "github.com/pkg/errors"

// Train configures a self-play training run.
type Train struct {
	Episodes     int     `mapstructure:"episodes"`
	Epsilon      float64 `mapstructure:"epsilon"`
	EpsilonDecay float64 `mapstructure:"epsilon_decay"`
	MinEpsilon   float64 `mapstructure:"minimum_epsilon"`
	ReportEvery  int     `mapstructure:"report_every"`

	// Seed drives the whole run's randomness. 0 means derive a base seed
	// from the clock.
	Seed uint64 `mapstructure:"seed"`
}

// DefaultTrain returns the standard training recipe.
func DefaultTrain() *Train {
	return &Train{
		Episodes:     50000,
		Epsilon:      0.2,
		EpsilonDecay: 0.999,
		MinEpsilon:   0.01,
		ReportEvery:  5000,
	}
}

// Validate checks the training options.
func (c *Train) Validate() error {
	if c.Episodes <= 0 {
		return errors.New("episodes must be positive")
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return errors.New("epsilon must be in [0, 1]")
	}
	if c.EpsilonDecay <= 0 || c.EpsilonDecay > 1 {
		return errors.New("epsilon_decay must be in (0, 1]")
	}
	if c.MinEpsilon < 0 {
		return errors.New("minimum_epsilon must be non-negative")
	}
	if c.ReportEvery < 0 {
		return errors.New("report_every must be non-negative")
	}
	return nil
}

// Eval configures a train-then-evaluate run against a random opponent.
type Eval struct {
	Episodes int    `mapstructure:"episodes"`
	Games    int    `mapstructure:"games"`
	Seed     uint64 `mapstructure:"seed"`

	// Out is the directory for CSV result records; empty disables writing.
	Out string `mapstructure:"out"`
}

// DefaultEval returns the standard evaluation setup.
func DefaultEval() *Eval {
	return &Eval{
		Episodes: 50000,
		Games:    100,
		Seed:     42,
	}
}

// Validate checks the evaluation options.
func (c *Eval) Validate() error {
	if c.Episodes <= 0 {
		return errors.New("episodes must be positive")
	}
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	return nil
}
