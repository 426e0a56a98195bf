package identity

import "testing"

func TestPrimaryEmail(t *testing.T) {
	cases := []struct {
		name   string
		emails []string
		want   string
	}{
		{"none", nil, ""},
		{"one", []string{"a@example.com"}, "a@example.com"},
		{"first wins", []string{"a@example.com", "b@example.com"}, "a@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Profile{Emails: tc.emails}
			if got := p.PrimaryEmail(); got != tc.want {
				t.Errorf("PrimaryEmail() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFallbackUsername(t *testing.T) {
	cases := []struct {
		name   string
		emails []string
		want   string
	}{
		{"local part", []string{"jane.doe@example.com"}, "jane.doe"},
		{"no at sign", []string{"janedoe"}, "janedoe"},
		{"no email", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Profile{Emails: tc.emails}
			if got := p.FallbackUsername(); got != tc.want {
				t.Errorf("FallbackUsername() = %q, want %q", got, tc.want)
			}
		})
	}
}
