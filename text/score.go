package text

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Score is a component referencing a scoreboard value by holder name and
// objective.
type Score struct {
	children  []Component
	style     Style
	name      string
	objective string
}

func (s *Score) Kind() Kind            { return KindScore }
func (s *Score) Children() []Component { return slices.Clone(s.children) }
func (s *Score) Style() Style          { return s.style }
func (s *Score) Name() string          { return s.name }
func (s *Score) Objective() string     { return s.objective }

func (s *Score) WithName(name string) *Score {
	if s.name == name {
		return s
	}
	return &Score{children: s.children, style: s.style, name: name, objective: s.objective}
}

func (s *Score) WithObjective(objective string) *Score {
	if s.objective == objective {
		return s
	}
	return &Score{children: s.children, style: s.style, name: s.name, objective: objective}
}

func (s *Score) WithChildren(children ...Component) Component {
	return &Score{children: normalize(children, false), style: s.style, name: s.name, objective: s.objective}
}

func (s *Score) Append(children ...Component) Component {
	added := normalize(children, false)
	if len(added) == 0 {
		return s
	}
	return &Score{children: append(slices.Clone(s.children), added...), style: s.style, name: s.name, objective: s.objective}
}

func (s *Score) WithStyle(style Style) Component {
	return &Score{children: s.children, style: style, name: s.name, objective: s.objective}
}

func (s *Score) Equal(other Component) bool {
	o, ok := other.(*Score)
	if !ok {
		return false
	}
	if s == o {
		return true
	}
	return s.name == o.name &&
		s.objective == o.objective &&
		s.style.Equal(o.style) &&
		componentsEqual(s.children, o.children)
}

func (s *Score) ToBuilder() Builder {
	return &ScoreBuilder{
		baseBuilder: baseBuilder{children: slices.Clone(s.children), style: s.style},
		name:        s.name,
		objective:   s.objective,
	}
}

func (s *Score) component() {}

// ScoreBuilder builds Score components; name and objective are required.
type ScoreBuilder struct {
	baseBuilder
	name      string
	objective string
}

func NewScoreBuilder() *ScoreBuilder { return &ScoreBuilder{} }

func (b *ScoreBuilder) Name(name string) *ScoreBuilder {
	b.name = name
	return b
}

func (b *ScoreBuilder) Objective(objective string) *ScoreBuilder {
	b.objective = objective
	return b
}

func (b *ScoreBuilder) Children(children ...Component) *ScoreBuilder {
	b.setChildren(children)
	return b
}

func (b *ScoreBuilder) Append(children ...Component) *ScoreBuilder {
	b.appendChildren(children)
	return b
}

func (b *ScoreBuilder) Style(s Style) *ScoreBuilder {
	b.style = s
	return b
}

func (b *ScoreBuilder) Build() (Component, error) {
	var err error
	if b.name == "" {
		err = multierr.Append(err, errNameNotSet)
	}
	if b.objective == "" {
		err = multierr.Append(err, errObjectiveNotSet)
	}
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	return &Score{
		children:  normalize(b.children, false),
		style:     b.style,
		name:      b.name,
		objective: b.objective,
	}, nil
}
