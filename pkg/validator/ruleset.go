package validator

// Meta holds presentational settings passed through to the field. The engine never interprets them.
type Meta struct {
	MaxLength      int
	Placeholder    string
	Autocapitalize bool
	Autocorrect    bool
}

// Outcome pairs a rule with its verdict for one value.
type Outcome struct {
	Index   int
	Rule    Rule
	Verdict Verdict
}

// Hint is the user-facing message of a rule, as handed to the presentation layer.
type Hint struct {
	Index   int
	Message string
	Kind    Kind
	Help    bool
	Visible bool
}

// RuleSet is an ordered collection of rules evaluated together.
// Order is the display order and the order messages accumulate in.
type RuleSet struct {
	Rules []Rule
	Meta  Meta
}

// Definition is the declarative form of a RuleSet.
type Definition struct {
	MaxLength      int       `yaml:"maxlength,omitempty"`
	Placeholder    string    `yaml:"placeholder,omitempty"`
	Autocapitalize bool      `yaml:"autocapitalize,omitempty"`
	Autocorrect    bool      `yaml:"autocorrect,omitempty"`
	Rules          []RuleDef `yaml:"rules"`
}

// NewRuleSet compiles a definition. Predicate names must already be resolved.
func NewRuleSet(def Definition) (*RuleSet, error) {
	rules := make([]Rule, 0, len(def.Rules))
	for i, rd := range def.Rules {
		r, err := NewRule(rd)
		if err != nil {
			return nil, &RuleError{Index: i, Err: err}
		}
		rules = append(rules, r)
	}
	return &RuleSet{
		Rules: rules,
		Meta: Meta{
			MaxLength:      def.MaxLength,
			Placeholder:    def.Placeholder,
			Autocapitalize: def.Autocapitalize,
			Autocorrect:    def.Autocorrect,
		},
	}, nil
}

// Evaluate returns one outcome per rule, in rule order.
func (rs *RuleSet) Evaluate(value string) []Outcome {
	outcomes := make([]Outcome, len(rs.Rules))
	for i, r := range rs.Rules {
		outcomes[i] = Outcome{Index: i, Rule: r, Verdict: r.Evaluate(value)}
	}
	return outcomes
}

// IsValid reports whether no rule fails. NotApplicable counts as satisfied.
func (rs *RuleSet) IsValid(value string) bool {
	for _, r := range rs.Rules {
		if r.Evaluate(value) == Fail {
			return false
		}
	}
	return true
}

// Hints returns one hidden hint per rule, in rule order.
func (rs *RuleSet) Hints() []Hint {
	hints := make([]Hint, len(rs.Rules))
	for i, r := range rs.Rules {
		hints[i] = Hint{Index: i, Message: r.Message, Kind: r.Kind, Help: r.Help}
	}
	return hints
}

// HintList is the hint panel of one field. Panel and hints start hidden.
type HintList struct {
	ID      string
	Visible bool
	Hints   []Hint
}

// RenderHints builds the hint panel for the field with the given id.
func (rs *RuleSet) RenderHints(fieldID string) HintList {
	return HintList{ID: HintsID(fieldID), Hints: rs.Hints()}
}

// HintsID is the id of the element holding a field's hints, referenced by aria-describedby.
func HintsID(fieldID string) string {
	return fieldID + "Validations"
}

// Clone returns a copy whose rule list can be changed without touching rs.
func (rs *RuleSet) Clone() *RuleSet {
	rules := make([]Rule, len(rs.Rules))
	copy(rules, rs.Rules)
	return &RuleSet{Rules: rules, Meta: rs.Meta}
}

// WithRules returns a copy with the whole rule list replaced.
func (rs *RuleSet) WithRules(rules ...Rule) *RuleSet {
	out := &RuleSet{Rules: make([]Rule, len(rules)), Meta: rs.Meta}
	copy(out.Rules, rules)
	return out
}

// Append returns a copy with rules added at the end.
func (rs *RuleSet) Append(rules ...Rule) *RuleSet {
	out := rs.Clone()
	out.Rules = append(out.Rules, rules...)
	return out
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.Rules)
}
