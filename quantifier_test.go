package quantify

import "testing"

func TestQuantifier_Name(t *testing.T) {
	tests := []struct {
		q    Quantifier
		want string
	}{
		{All(), "forAll"},
		{Every(), "forEvery"},
		{AtLeast(2), "forAtLeast(2)"},
		{AtMost(3), "forAtMost(3)"},
		{Exactly(1), "forExactly(1)"},
		{No(), "forNo"},
		{Between(2, 4), "forBetween(2, 4)"},
		{Quantifier{}, "forAll"}, // zero value
	}
	for _, tt := range tests {
		if got := tt.q.Name(); got != tt.want {
			t.Fatalf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestQuantifier_Validate(t *testing.T) {
	valid := []Quantifier{
		All(), Every(), No(),
		AtLeast(1), AtMost(1), Exactly(1),
		Between(0, 1), Between(2, 4),
	}
	for _, q := range valid {
		if err := q.validate(); err != nil {
			t.Fatalf("%s: unexpected config error: %v", q.Name(), err)
		}
	}

	invalid := []Quantifier{
		AtLeast(0), AtLeast(-1),
		AtMost(0),
		Exactly(0),
		Between(2, 2), Between(3, 2), Between(-1, 0),
	}
	for _, q := range invalid {
		err := q.validate()
		if err == nil {
			t.Fatalf("%s: expected a config error", q.Name())
		}
		if _, ok := err.(*ConfigError); !ok {
			t.Fatalf("%s: expected *ConfigError, got %T", q.Name(), err)
		}
	}
}

func TestQuantifier_Passes(t *testing.T) {
	tests := []struct {
		q         Quantifier
		satisfied int
		total     int
		want      bool
	}{
		{All(), 3, 3, true},
		{All(), 2, 3, false},
		{All(), 0, 0, true},
		{Every(), 3, 3, true},
		{Every(), 2, 3, false},
		{AtLeast(2), 2, 3, true},
		{AtLeast(2), 1, 3, false},
		{AtMost(2), 2, 3, true},
		{AtMost(2), 3, 3, false},
		{Exactly(2), 2, 3, true},
		{Exactly(2), 1, 3, false},
		{Exactly(2), 3, 3, false},
		{No(), 0, 3, true},
		{No(), 1, 3, false},
		{Between(1, 2), 1, 3, true},
		{Between(1, 2), 2, 3, true},
		{Between(1, 2), 0, 3, false},
		{Between(1, 2), 3, 3, false},
		{Between(0, 1), 0, 0, true},
	}
	for _, tt := range tests {
		if got := tt.q.passes(tt.satisfied, tt.total); got != tt.want {
			t.Fatalf("%s.passes(%d, %d) = %v, want %v", tt.q.Name(), tt.satisfied, tt.total, got, tt.want)
		}
	}
}
