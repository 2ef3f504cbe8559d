package registration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validInput() Input {
	return Input{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "pw1",
		ConfirmPassword: "pw1",
	}
}

func TestValidate_ValidInput(t *testing.T) {
	errs := Validate(validInput())
	require.True(t, errs.Valid())
	require.Empty(t, errs)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		want   FieldErrors
	}{
		{
			name:   "empty name",
			mutate: func(in *Input) { in.Name = "" },
			want:   FieldErrors{FieldName: "Name is required"},
		},
		{
			name:   "empty email",
			mutate: func(in *Input) { in.Email = "" },
			want:   FieldErrors{FieldEmail: "Invalid email"},
		},
		{
			name:   "malformed email",
			mutate: func(in *Input) { in.Email = "not-an-email" },
			want:   FieldErrors{FieldEmail: "Invalid email"},
		},
		{
			name:   "single letter tld",
			mutate: func(in *Input) { in.Email = "a@b.c" },
			want:   FieldErrors{FieldEmail: "Invalid email"},
		},
		{
			name:   "numeric tld",
			mutate: func(in *Input) { in.Email = "ada@example.123" },
			want:   FieldErrors{FieldEmail: "Invalid email"},
		},
		{
			name:   "no domain dot",
			mutate: func(in *Input) { in.Email = "ada@localhost" },
			want:   FieldErrors{FieldEmail: "Invalid email"},
		},
		{
			name:   "two letter tld",
			mutate: func(in *Input) { in.Email = "a@b.io" },
			want:   FieldErrors{},
		},
		{
			name:   "empty password",
			mutate: func(in *Input) { in.Password = ""; in.ConfirmPassword = "" },
			want: FieldErrors{
				FieldPassword:        "Password is required",
				FieldConfirmPassword: "Confirm password is required",
			},
		},
		{
			name:   "empty confirmation",
			mutate: func(in *Input) { in.ConfirmPassword = "" },
			want:   FieldErrors{FieldConfirmPassword: "Confirm password is required"},
		},
		{
			name:   "mismatch",
			mutate: func(in *Input) { in.ConfirmPassword = "pw2" },
			want:   FieldErrors{FieldConfirmPassword: "Passwords do not match"},
		},
		{
			name: "everything empty",
			mutate: func(in *Input) {
				*in = Input{}
			},
			want: FieldErrors{
				FieldName:            "Name is required",
				FieldEmail:           "Invalid email",
				FieldPassword:        "Password is required",
				FieldConfirmPassword: "Confirm password is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			require.Equal(t, tt.want, Validate(in))
		})
	}
}

func TestValidate_MismatchNeverFlagsPassword(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = "something else"
	errs := Validate(in)
	require.Empty(t, errs.Get(FieldPassword))
	require.Equal(t, "Passwords do not match", errs.Get(FieldConfirmPassword))
}

func TestValidateSignIn(t *testing.T) {
	require.True(t, ValidateSignIn(SignInInput{Email: "ada@example.com", Password: "x"}).Valid())

	errs := ValidateSignIn(SignInInput{Email: "nope"})
	require.Equal(t, FieldErrors{
		FieldEmail:    "Invalid email",
		FieldPassword: "Password is required",
	}, errs)
}

func emailGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z][a-z0-9]{0,11}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z]{2,10}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "dev", "io"}).Draw(t, "tld")
		return local + "@" + domain + "." + tld
	})
}

func TestValidate_Property_MatchingPasswordsAreValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.StringMatching(`[A-Za-z0-9!@#]{1,32}`).Draw(t, "password")
		in := Input{
			Name:            rapid.StringMatching(`[A-Za-z ]{1,24}`).Draw(t, "name"),
			Email:           emailGen().Draw(t, "email"),
			Password:        pw,
			ConfirmPassword: pw,
		}
		if errs := Validate(in); !errs.Valid() {
			t.Fatalf("expected valid input %+v, got %v", in, errs)
		}
	})
}

func TestValidate_Property_MismatchYieldsExactlyOneError(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.StringMatching(`[a-z0-9]{1,16}`).Draw(t, "password")
		confirm := rapid.StringMatching(`[a-z0-9]{1,16}`).
			Filter(func(s string) bool { return s != pw }).
			Draw(t, "confirm")
		in := Input{
			Name:            "Ada",
			Email:           emailGen().Draw(t, "email"),
			Password:        pw,
			ConfirmPassword: confirm,
		}
		errs := Validate(in)
		if len(errs) != 1 || errs.Get(FieldConfirmPassword) != "Passwords do not match" {
			t.Fatalf("expected single mismatch error, got %v", errs)
		}
	})
}

func TestValidate_Property_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := Input{
			Name:            rapid.String().Draw(t, "name"),
			Email:           rapid.String().Draw(t, "email"),
			Password:        rapid.String().Draw(t, "password"),
			ConfirmPassword: rapid.String().Draw(t, "confirm"),
		}
		first, second := Validate(in), Validate(in)
		if len(first) != len(second) {
			t.Fatalf("validate not deterministic: %v vs %v", first, second)
		}
		for k, v := range first {
			if second[k] != v {
				t.Fatalf("validate not deterministic for %s: %q vs %q", k, v, second[k])
			}
		}
	})
}
