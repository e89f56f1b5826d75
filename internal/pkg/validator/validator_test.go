package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15", "10:30", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "user_id", Message: "required"},
		{Field: "date", Message: "invalid"},
	}
	got := errs.Error()
	want := "user_id: required; date: invalid"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "user_id", Message: "required"},
		{Field: "date", Message: "invalid"},
	}
	got := errs.ToMap()
	want := map[string]string{"user_id": "required", "date": "invalid"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

type structSample struct {
	UserID string  `json:"user_id" validate:"required"`
	Date   string  `json:"date" validate:"required,date"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=full half"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=5"`
}

func TestStruct(t *testing.T) {
	long := "too long note"
	cases := []struct {
		name   string
		input  structSample
		fields []string
	}{
		{"valid", structSample{UserID: "u1", Date: "2024-05-01", Kind: "full"}, nil},
		{"missing user and date", structSample{}, []string{"user_id", "date"}},
		{"bad date", structSample{UserID: "u1", Date: "05/01/2024"}, []string{"date"}},
		{"bad kind", structSample{UserID: "u1", Date: "2024-05-01", Kind: "quarter"}, []string{"kind"}},
		{"long note", structSample{UserID: "u1", Date: "2024-05-01", Note: &long}, []string{"note"}},
	}
	for _, c := range cases {
		err := Struct(c.input)
		if len(c.fields) == 0 {
			if err != nil {
				t.Errorf("%s: Struct() = %v, want nil", c.name, err)
			}
			continue
		}
		errs, ok := err.(ValidationErrors)
		if !ok {
			t.Errorf("%s: Struct() error type = %T, want ValidationErrors", c.name, err)
			continue
		}
		got := errs.ToMap()
		for _, f := range c.fields {
			if _, found := got[f]; !found {
				t.Errorf("%s: missing error for field %q in %v", c.name, f, got)
			}
		}
	}
}

func TestNewStructValidator_RegistersDateTag(t *testing.T) {
	v := newStructValidator()

	if err := v.Var("2024-05-01", "date"); err != nil {
		t.Errorf("Var(valid date) = %v, want nil", err)
	}
	if err := v.Var("2024-5-1", "date"); err == nil {
		t.Errorf("Var(invalid date) = nil, want error")
	}
}
