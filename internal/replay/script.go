// Package replay applies scripted sequences of board operations, such as a
// recorded match day, to a registry.
package replay

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Op string

const (
	OpStart   Op = "start"
	OpFinish  Op = "finish"
	OpUpdate  Op = "update"
	OpScore   Op = "score"
	OpSummary Op = "summary"
	OpFlush   Op = "flush"
)

// Script is the YAML document:
//
//	name: world cup
//	steps:
//	  - {op: start, home: Mexico, away: Canada}
//	  - {op: update, home: Mexico, away: Canada, homeScore: 0, awayScore: 5}
//	  - {op: summary}
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Op        Op     `yaml:"op"`
	Home      string `yaml:"home,omitempty"`
	Away      string `yaml:"away,omitempty"`
	HomeScore int    `yaml:"homeScore,omitempty"`
	AwayScore int    `yaml:"awayScore,omitempty"`
}

func (s Step) needsTeams() bool {
	switch s.Op {
	case OpStart, OpFinish, OpUpdate, OpScore:
		return true
	}
	return false
}

func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and checks a script. Team names are only checked for
// presence; normalization is left to the registry.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		st.Op = Op(strings.ToLower(strings.TrimSpace(string(st.Op))))

		switch st.Op {
		case OpStart, OpFinish, OpUpdate, OpScore, OpSummary, OpFlush:
		case "":
			return Script{}, fmt.Errorf("step %d: missing op", i+1)
		default:
			return Script{}, fmt.Errorf("step %d: unknown op %q", i+1, st.Op)
		}
		if st.needsTeams() && (st.Home == "" || st.Away == "") {
			return Script{}, fmt.Errorf("step %d (%s): home and away are required", i+1, st.Op)
		}
	}
	return s, nil
}
