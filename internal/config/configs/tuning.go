package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds business constants that were hard-coded in earlier versions
// of the product. They have no documented rationale, so they are kept as
// adjustable defaults and can be overridden with a YAML file.
type Tuning struct {
	Confidence struct {
		HighMinSignals   int `yaml:"high_min_signals"`
		MediumMinSignals int `yaml:"medium_min_signals"`
	} `yaml:"confidence"`

	Guard struct {
		MinFollowups int `yaml:"min_followups"`
		SnoozeDays   int `yaml:"snooze_days"`
	} `yaml:"guard"`

	Sequence struct {
		LabeledFollowups int `yaml:"labeled_followups"`
		StepDelayDays    int `yaml:"step_delay_days"`
		StepCount        int `yaml:"step_count"`
	} `yaml:"sequence"`

	// AggregatorDomains are directory or marketplace hosts that do not count
	// as a lead's own website.
	AggregatorDomains []string `yaml:"aggregator_domains"`

	// Timezone is the IANA zone calendar dates are derived in.
	Timezone string `yaml:"timezone"`
}

// DefaultTuning returns the values observed in production.
func DefaultTuning() Tuning {
	var t Tuning
	t.Confidence.HighMinSignals = 3
	t.Confidence.MediumMinSignals = 1
	t.Guard.MinFollowups = 5
	t.Guard.SnoozeDays = 3
	t.Sequence.LabeledFollowups = 3
	t.Sequence.StepDelayDays = 3
	t.Sequence.StepCount = 5
	t.AggregatorDomains = []string{
		"facebook.com",
		"instagram.com",
		"linkedin.com",
		"twitter.com",
		"x.com",
		"yelp.com",
		"google.com",
		"goo.gl",
		"clutch.co",
		"upwork.com",
		"fiverr.com",
		"yellowpages.com",
		"bbb.org",
		"angi.com",
		"thumbtack.com",
		"houzz.com",
		"designrush.com",
		"sortlist.com",
		"linktr.ee",
	}
	t.Timezone = "UTC"
	return t
}

// LoadTuning reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, err
	}
	if err = yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return t, t.Validate()
}

// Validate rejects values that would break scoring, scheduling or the guard.
func (t Tuning) Validate() error {
	var errs []error
	if t.Confidence.MediumMinSignals < 1 {
		errs = append(errs, errors.New("confidence.medium_min_signals must be >= 1"))
	}
	if t.Confidence.HighMinSignals <= t.Confidence.MediumMinSignals {
		errs = append(errs, errors.New("confidence.high_min_signals must exceed medium_min_signals"))
	}
	if t.Guard.MinFollowups < 0 {
		errs = append(errs, errors.New("guard.min_followups must be >= 0"))
	}
	if t.Guard.SnoozeDays <= 0 {
		errs = append(errs, errors.New("guard.snooze_days must be > 0"))
	}
	if t.Sequence.LabeledFollowups < 0 {
		errs = append(errs, errors.New("sequence.labeled_followups must be >= 0"))
	}
	if t.Sequence.StepDelayDays <= 0 {
		errs = append(errs, errors.New("sequence.step_delay_days must be > 0"))
	}
	if t.Sequence.StepCount <= 0 {
		errs = append(errs, errors.New("sequence.step_count must be > 0"))
	}
	if _, err := time.LoadLocation(t.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	return errors.Join(errs...)
}

// Location resolves Timezone, falling back to UTC.
func (t Tuning) Location() *time.Location {
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
